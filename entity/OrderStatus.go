package entity

// OrderStatus and OrderItemStatus are separate types on purpose: the legacy
// schema reused the same numbers for both tables and the cascade code relied
// on that coincidence. Here the conversion happens explicitly in the order
// transition service. Numeric values keep the legacy ordering so that
// ORDER BY status DESC still lists Pending before Preparing before Served.
type OrderStatus int16

const (
	OrderCancelled OrderStatus = 0
	OrderPaid      OrderStatus = 1
	OrderServed    OrderStatus = 3
	OrderPreparing OrderStatus = 4
	OrderPending   OrderStatus = 5
)

// ActiveOrderStatuses are the states shown on the live board.
var ActiveOrderStatuses = []OrderStatus{OrderPending, OrderPreparing, OrderServed}

// ClosedOrderStatuses are the terminal states shown on the history board.
var ClosedOrderStatuses = []OrderStatus{OrderCancelled, OrderPaid}

func (s OrderStatus) Final() bool {
	return s == OrderCancelled || s == OrderPaid
}

// LabelKey is the i18n message key for the status label.
func (s OrderStatus) LabelKey() string {
	switch s {
	case OrderCancelled:
		return "statusCancelled"
	case OrderPaid:
		return "statusPaid"
	case OrderServed:
		return "statusServed"
	case OrderPreparing:
		return "statusPreparing"
	case OrderPending:
		return "statusPending"
	}
	return "statusUnknown"
}

func (s OrderStatus) String() string {
	switch s {
	case OrderCancelled:
		return "Cancelled"
	case OrderPaid:
		return "Paid"
	case OrderServed:
		return "Served"
	case OrderPreparing:
		return "Preparing"
	case OrderPending:
		return "Pending"
	}
	return "Unknown"
}
