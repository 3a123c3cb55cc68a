package repository

import (
	"dashboard/entity"
	"dashboard/pkg/datatable"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItemRepository struct {
	DB *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{DB: db}
}

func (r *OrderItemRepository) Create(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// CascadeStatus moves all of the order's items currently in one of the from
// states to the target state. Called from inside the order transition
// transaction.
func (r *OrderItemRepository) CascadeStatus(tx *gorm.DB, orderID uint, from []entity.OrderItemStatus, to entity.OrderItemStatus) error {
	return tx.Model(&entity.OrderItem{}).
		Where("order_id = ? AND status IN ?", orderID, from).
		Update("status", to).Error
}

// OrderItemLine is an order item joined to its menu name in one locale.
type OrderItemLine struct {
	ID       uint
	Name     string
	Price    decimal.Decimal
	Amount   int
	Subtotal decimal.Decimal
	Status   entity.OrderItemStatus
	Comment  string
}

var orderItemColumns = map[string]string{
	"id":     "oi.id",
	"name":   "it.name",
	"price":  "oi.price",
	"amount": "oi.amount",
	"status": "oi.status",
}

const orderItemDefaultSort = "oi.status DESC, oi.updated_at ASC"

// InvoiceLines returns every non-cancelled line of the order with names in
// the given locale, in serving order. Items without a translation for the
// locale do not appear, same as the dashboard's invoice view always behaved.
func (r *OrderItemRepository) InvoiceLines(orderID uint, locale string) ([]OrderItemLine, error) {
	var lines []OrderItemLine
	err := r.lineQuery(orderID, locale).
		Order(orderItemDefaultSort).
		Scan(&lines).Error
	return lines, err
}

// List returns one data-table page of the order's non-cancelled lines.
func (r *OrderItemRepository) List(orderID uint, locale string, p datatable.Params) ([]OrderItemLine, int64, int64, error) {
	var total int64
	if err := r.lineQuery(orderID, locale).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	q := r.lineQuery(orderID, locale)
	filtered := total
	if p.Search != "" {
		q = q.Where("it.name LIKE ?", "%"+p.Search+"%")
		if err := r.lineQuery(orderID, locale).
			Where("it.name LIKE ?", "%"+p.Search+"%").
			Count(&filtered).Error; err != nil {
			return nil, 0, 0, err
		}
	}

	var lines []OrderItemLine
	err := q.Order(p.OrderClause(orderItemColumns, orderItemDefaultSort)).
		Limit(p.Limit()).Offset(p.Offset()).
		Scan(&lines).Error
	return lines, total, filtered, err
}

func (r *OrderItemRepository) lineQuery(orderID uint, locale string) *gorm.DB {
	return r.DB.Table("order_items AS oi").
		Select("oi.id, it.name, oi.price, oi.amount, oi.price * oi.amount AS subtotal, oi.status, oi.comment").
		Joins("JOIN item_translations it ON it.item_id = oi.item_id AND it.locale = ?", locale).
		Where("oi.order_id = ?", orderID).
		Where("oi.status <> ?", entity.ItemCancelled).
		Where("oi.deleted_at IS NULL")
}
