package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"dashboard/entity"
	"dashboard/pkg/datatable"
	"dashboard/repository"

	"gorm.io/gorm"
)

const currencyTitleMax = 20

type CurrencyService struct {
	Repo *repository.CurrencyRepository
}

func NewCurrencyService(repo *repository.CurrencyRepository) *CurrencyService {
	return &CurrencyService{Repo: repo}
}

type CurrencyIn struct {
	Title string `json:"title" form:"title"`
}

// ValidateCurrency trims the title, then returns per-field i18n message keys;
// empty map means valid.
func ValidateCurrency(in *CurrencyIn) map[string]string {
	in.Title = strings.TrimSpace(in.Title)
	fields := map[string]string{}
	if in.Title == "" {
		fields["title"] = "titleRequired"
	} else if utf8.RuneCountInString(in.Title) > currencyTitleMax {
		fields["title"] = "titleTooLong"
	}
	return fields
}

func (s *CurrencyService) List(p datatable.Params) (*datatable.Response, error) {
	rows, total, filtered, err := s.Repo.List(p)
	if err != nil {
		return nil, err
	}
	return datatable.NewResponse(p, total, filtered, rows), nil
}

func (s *CurrencyService) Get(id uint) (*entity.Currency, error) {
	cur, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return cur, err
}

func (s *CurrencyService) Create(in *CurrencyIn) (*entity.Currency, error) {
	cur := &entity.Currency{Title: in.Title}
	if err := s.Repo.Create(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *CurrencyService) Update(id uint, in *CurrencyIn) error {
	cur, err := s.Get(id)
	if err != nil {
		return err
	}
	cur.Title = in.Title
	return s.Repo.Update(cur)
}

func (s *CurrencyService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
