package repository

import (
	"dashboard/entity"
	"dashboard/pkg/datatable"

	"gorm.io/gorm"
)

type CurrencyRepository struct {
	DB *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository {
	return &CurrencyRepository{DB: db}
}

var currencyColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"createdAt": "created_at",
}

// List returns one data-table page plus the total/filtered counts.
func (r *CurrencyRepository) List(p datatable.Params) ([]entity.Currency, int64, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Currency{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	q := r.DB.Model(&entity.Currency{})
	if p.Search != "" {
		q = q.Where("title LIKE ?", "%"+p.Search+"%")
	}

	filtered := total
	if p.Search != "" {
		if err := q.Session(&gorm.Session{}).Count(&filtered).Error; err != nil {
			return nil, 0, 0, err
		}
	}

	var out []entity.Currency
	err := q.Order(p.OrderClause(currencyColumns, "created_at DESC")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&out).Error
	return out, total, filtered, err
}

func (r *CurrencyRepository) Get(id uint) (*entity.Currency, error) {
	var cur entity.Currency
	if err := r.DB.First(&cur, id).Error; err != nil {
		return nil, err
	}
	return &cur, nil
}

func (r *CurrencyRepository) Create(cur *entity.Currency) error {
	return r.DB.Create(cur).Error
}

func (r *CurrencyRepository) Update(cur *entity.Currency) error {
	return r.DB.Save(cur).Error
}

func (r *CurrencyRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Currency{}, id).Error
}
