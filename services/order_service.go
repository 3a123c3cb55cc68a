package services

import (
	"errors"
	"time"

	"dashboard/entity"
	"dashboard/pkg/datatable"
	"dashboard/pkg/i18n"
	"dashboard/pkg/price"
	"dashboard/repository"

	"gorm.io/gorm"
)

// TransitionNotifier is told about committed status changes; the websocket
// hub implements it.
type TransitionNotifier interface {
	OrderStatusChanged(restaurantID, orderID uint, status entity.OrderStatus)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	ItemRepo *repository.OrderItemRepository
	RestRepo *repository.RestaurantRepository
	Notifier TransitionNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	itemRepo *repository.OrderItemRepository,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, ItemRepo: itemRepo, RestRepo: restRepo}
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

// ----- Listings -----

// OrderListRow is a presentation row for the data tables: money formatted in
// the restaurant's currency, status already localized. RowClass mirrors the
// board's color coding.
type OrderListRow struct {
	ID          uint               `json:"id"`
	TableNumber int                `json:"tableNumber"`
	CreatedAt   time.Time          `json:"createdAt"`
	Status      string             `json:"status"`
	StatusCode  entity.OrderStatus `json:"statusCode"`
	Total       string             `json:"total"`
	RowClass    string             `json:"rowClass,omitempty"`
}

func (s *OrderService) ListActive(rest *entity.Restaurant, p datatable.Params, locale string) (*datatable.Response, error) {
	rows, total, filtered, err := s.Repo.ListActive(rest.ID, p)
	if err != nil {
		return nil, err
	}
	return datatable.NewResponse(p, total, filtered, presentRows(rows, rest, locale)), nil
}

func (s *OrderService) ListClosed(rest *entity.Restaurant, p datatable.Params, locale string) (*datatable.Response, error) {
	rows, total, filtered, err := s.Repo.ListClosed(rest.ID, p)
	if err != nil {
		return nil, err
	}
	return datatable.NewResponse(p, total, filtered, presentRows(rows, rest, locale)), nil
}

func presentRows(rows []repository.OrderRow, rest *entity.Restaurant, locale string) []OrderListRow {
	out := make([]OrderListRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderListRow{
			ID:          r.ID,
			TableNumber: r.TableNumber,
			CreatedAt:   r.CreatedAt,
			Status:      i18n.T(locale, r.Status.LabelKey()),
			StatusCode:  r.Status,
			Total:       price.Format(r.Total.Decimal, rest.Currency.Title, locale),
			RowClass:    rowClass(r.Status),
		})
	}
	return out
}

func rowClass(s entity.OrderStatus) string {
	switch s {
	case entity.OrderPending:
		return "warning"
	case entity.OrderPreparing:
		return "success"
	case entity.OrderServed:
		return "info"
	}
	return ""
}

// ----- Invoice -----

type InvoiceLineOut struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Amount   int    `json:"amount"`
	Subtotal string `json:"subtotal"`
	Status   string `json:"status"`
	Comment  string `json:"comment"`
}

type InvoiceOut struct {
	OrderID     uint             `json:"orderId"`
	TableNumber int              `json:"tableNumber"`
	Comment     string           `json:"comment"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	Total       string           `json:"total"`
	Items       []InvoiceLineOut `json:"items"`
}

// Invoice builds the printable document for any non-cancelled order. The
// order is returned alongside so the caller can authorize against it.
func (s *OrderService) Invoice(orderID uint, locale string) (*InvoiceOut, *entity.Order, error) {
	o, total, err := s.Repo.GetWithTotal(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	rest, err := s.RestRepo.Get(o.RestaurantID)
	if err != nil {
		return nil, nil, err
	}

	lines, err := s.ItemRepo.InvoiceLines(o.ID, locale)
	if err != nil {
		return nil, nil, err
	}

	out := &InvoiceOut{
		OrderID:     o.ID,
		TableNumber: o.TableNumber,
		Comment:     o.Comment,
		Status:      i18n.T(locale, o.Status.LabelKey()),
		CreatedAt:   o.CreatedAt,
		Total:       price.Format(total, rest.Currency.Title, locale),
		Items:       make([]InvoiceLineOut, 0, len(lines)),
	}
	for _, l := range lines {
		out.Items = append(out.Items, InvoiceLineOut{
			Name:     l.Name,
			Price:    price.Format(l.Price, rest.Currency.Title, locale),
			Amount:   l.Amount,
			Subtotal: price.Format(l.Subtotal, rest.Currency.Title, locale),
			Status:   i18n.T(locale, l.Status.LabelKey()),
			Comment:  l.Comment,
		})
	}
	return out, o, nil
}

// ----- Polling -----

type LatestUpdateOut struct {
	Time                int64  `json:"time"`
	OrderUpdatesExist   bool   `json:"orderUpdatesExist"`
	PendingOrdersAmount *int64 `json:"pendingOrdersAmount"`
	NewPendingOrder     bool   `json:"newPendingOrder"`
	NewPreparingOrder   bool   `json:"newPreparingOrder"`
}

// LatestUpdate is the dashboard's refresh signal: did anything change after
// the client's last-seen timestamp, and is any of it waiting on the kitchen.
// Pure read.
func (s *OrderService) LatestUpdate(restID uint, since time.Time) (*LatestUpdateOut, error) {
	out := &LatestUpdateOut{Time: time.Now().Unix()}

	exists, err := s.Repo.ExistsUpdatedAfter(restID, since)
	if err != nil {
		return nil, err
	}
	out.OrderUpdatesExist = exists
	if !exists {
		return out, nil
	}

	if out.NewPendingOrder, err = s.Repo.ExistsUpdatedAfterInStatus(restID, since, entity.OrderPending); err != nil {
		return nil, err
	}
	if out.NewPreparingOrder, err = s.Repo.ExistsUpdatedAfterInStatus(restID, since, entity.OrderPreparing); err != nil {
		return nil, err
	}
	pending, err := s.Repo.CountPending(restID)
	if err != nil {
		return nil, err
	}
	out.PendingOrdersAmount = &pending
	return out, nil
}
