package services

import (
	"errors"

	"dashboard/entity"
	"dashboard/pkg/datatable"
	"dashboard/pkg/i18n"
	"dashboard/pkg/price"
	"dashboard/repository"

	"gorm.io/gorm"
)

type OrderItemService struct {
	DB       *gorm.DB
	Repo     *repository.OrderItemRepository
	Items    *repository.ItemRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderItemService(
	db *gorm.DB,
	repo *repository.OrderItemRepository,
	items *repository.ItemRepository,
	restRepo *repository.RestaurantRepository,
) *OrderItemService {
	return &OrderItemService{DB: db, Repo: repo, Items: items, RestRepo: restRepo}
}

type AddItemIn struct {
	ItemID   uint   `json:"item_id" form:"item_id" binding:"required,min=1"`
	Quantity int    `json:"quantity" form:"quantity" binding:"omitempty,min=1"`
	Comment  string `json:"comment" form:"comment"`
}

// AddItem snapshots the menu item's current price onto a new Pending line.
// The snapshot is the whole point: later menu price changes must not touch
// orders already taken.
func (s *OrderItemService) AddItem(order *entity.Order, in *AddItemIn) (*entity.OrderItem, error) {
	item, err := s.Items.Get(in.ItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	amount := in.Quantity
	if amount == 0 {
		amount = 1
	}

	oi := &entity.OrderItem{
		OrderID: order.ID,
		ItemID:  item.ID,
		Price:   item.Price,
		Amount:  amount,
		Comment: in.Comment,
		Status:  entity.ItemPending,
	}
	if err := s.Repo.Create(s.DB, oi); err != nil {
		return nil, ErrConflict
	}
	return oi, nil
}

// OrderItemRowOut is a data-table row for the order's item listing.
type OrderItemRowOut struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Amount   int    `json:"amount"`
	Subtotal string `json:"subtotal"`
	Status   string `json:"status"`
	Comment  string `json:"comment"`
}

func (s *OrderItemService) List(order *entity.Order, p datatable.Params, locale string) (*datatable.Response, error) {
	rest, err := s.RestRepo.Get(order.RestaurantID)
	if err != nil {
		return nil, err
	}

	lines, total, filtered, err := s.Repo.List(order.ID, locale, p)
	if err != nil {
		return nil, err
	}

	rows := make([]OrderItemRowOut, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, OrderItemRowOut{
			ID:       l.ID,
			Name:     l.Name,
			Price:    price.Format(l.Price, rest.Currency.Title, locale),
			Amount:   l.Amount,
			Subtotal: price.Format(l.Subtotal, rest.Currency.Title, locale),
			Status:   i18n.T(locale, l.Status.LabelKey()),
			Comment:  l.Comment,
		})
	}
	return datatable.NewResponse(p, total, filtered, rows), nil
}
