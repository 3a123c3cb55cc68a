package repository

import (
	"time"

	"dashboard/entity"
	"dashboard/pkg/datatable"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// OrderRow is one listing row: order fields plus the aggregated total over
// its non-cancelled items. Total is null for closed orders with every item
// cancelled.
type OrderRow struct {
	ID          uint
	TableNumber int
	Comment     string
	Status      entity.OrderStatus
	CreatedAt   time.Time
	Total       decimal.NullDecimal
}

var orderColumns = map[string]string{
	"id":          "o.id",
	"tableNumber": "o.table_number",
	"status":      "o.status",
	"createdAt":   "o.created_at",
	"total":       "total",
}

const orderListDefaultSort = "o.status DESC, o.updated_at DESC"

// ListActive returns the live-board page: orders in Pending/Preparing/Served
// with totals summed over non-cancelled items.
func (r *OrderRepository) ListActive(restID uint, p datatable.Params) ([]OrderRow, int64, int64, error) {
	return r.list(restID, entity.ActiveOrderStatuses, false, p)
}

// ListClosed returns the history page: Cancelled and Paid orders. The item
// join is a left join so an order whose items were all cancelled still shows.
func (r *OrderRepository) ListClosed(restID uint, p datatable.Params) ([]OrderRow, int64, int64, error) {
	return r.list(restID, entity.ClosedOrderStatuses, true, p)
}

func (r *OrderRepository) list(restID uint, statuses []entity.OrderStatus, leftJoin bool, p datatable.Params) ([]OrderRow, int64, int64, error) {
	count := func(q *gorm.DB) (int64, error) {
		var n int64
		err := q.Count(&n).Error
		return n, err
	}

	base := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ?", restID).
		Where("status IN ?", statuses)
	if !leftJoin {
		// the data query inner-joins the items, so an order left with only
		// cancelled items never shows up; count the same way
		base = base.Where(
			"EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.status <> ? AND oi.deleted_at IS NULL)",
			entity.ItemCancelled)
	}
	total, err := count(base.Session(&gorm.Session{}))
	if err != nil {
		return nil, 0, 0, err
	}

	filtered := total
	if p.Search != "" {
		filtered, err = count(base.Session(&gorm.Session{}).
			Where("CAST(table_number AS TEXT) LIKE ?", "%"+p.Search+"%"))
		if err != nil {
			return nil, 0, 0, err
		}
	}

	join := "JOIN order_items oi ON oi.order_id = o.id AND oi.status <> ? AND oi.deleted_at IS NULL"
	if leftJoin {
		join = "LEFT JOIN order_items oi ON oi.order_id = o.id AND oi.status <> ? AND oi.deleted_at IS NULL"
	}
	q := r.DB.Table("orders AS o").
		Select("o.id, o.table_number, o.comment, o.status, o.created_at, SUM(oi.price * oi.amount) AS total").
		Joins(join, entity.ItemCancelled).
		Where("o.restaurant_id = ?", restID).
		Where("o.status IN ?", statuses).
		Where("o.deleted_at IS NULL").
		Group("o.id")
	if p.Search != "" {
		q = q.Where("CAST(o.table_number AS TEXT) LIKE ?", "%"+p.Search+"%")
	}

	var rows []OrderRow
	err = q.Order(p.OrderClause(orderColumns, orderListDefaultSort)).
		Limit(p.Limit()).Offset(p.Offset()).
		Scan(&rows).Error
	return rows, total, filtered, err
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetWithTotal loads an invoiceable order (anything but Cancelled) together
// with its non-cancelled total.
func (r *OrderRepository) GetWithTotal(orderID uint) (*entity.Order, decimal.Decimal, error) {
	var o entity.Order
	err := r.DB.
		Where("id = ?", orderID).
		Where("status IN ?", []entity.OrderStatus{
			entity.OrderPending, entity.OrderPreparing, entity.OrderServed, entity.OrderPaid,
		}).
		First(&o).Error
	if err != nil {
		return nil, decimal.Decimal{}, err
	}

	var total decimal.NullDecimal
	err = r.DB.Model(&entity.OrderItem{}).
		Select("SUM(price * amount)").
		Where("order_id = ? AND status <> ?", orderID, entity.ItemCancelled).
		Scan(&total).Error
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	return &o, total.Decimal, nil
}

// UpdateStatusGuard moves the order to the target status only when its current
// status is one of the allowed source states. Returns rows affected; zero
// means the precondition did not hold.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from []entity.OrderStatus, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ExistsUpdatedAfter reports whether any of the restaurant's orders changed
// after the given instant.
func (r *OrderRepository) ExistsUpdatedAfter(restID uint, after time.Time) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND updated_at > ?", restID, after).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *OrderRepository) ExistsUpdatedAfterInStatus(restID uint, after time.Time, status entity.OrderStatus) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND updated_at > ? AND status = ?", restID, after, status).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *OrderRepository) CountPending(restID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND status = ?", restID, entity.OrderPending).
		Count(&cnt).Error
	return cnt, err
}
