package entity

// OrderItemStatus has no Paid value: paying an order leaves its items Served.
type OrderItemStatus int16

const (
	ItemCancelled OrderItemStatus = 0
	ItemServed    OrderItemStatus = 3
	ItemPreparing OrderItemStatus = 4
	ItemPending   OrderItemStatus = 5
)

func (s OrderItemStatus) LabelKey() string {
	switch s {
	case ItemCancelled:
		return "statusCancelled"
	case ItemServed:
		return "statusServed"
	case ItemPreparing:
		return "statusPreparing"
	case ItemPending:
		return "statusPending"
	}
	return "statusUnknown"
}

func (s OrderItemStatus) String() string {
	switch s {
	case ItemCancelled:
		return "Cancelled"
	case ItemServed:
		return "Served"
	case ItemPreparing:
		return "Preparing"
	case ItemPending:
		return "Pending"
	}
	return "Unknown"
}
