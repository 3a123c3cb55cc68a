// services/order_transitions.go
//
// Every transition checks the current state and answers ErrConflict when it
// does not hold; the transition and its item cascade commit in one
// transaction.
package services

import (
	"dashboard/entity"

	"gorm.io/gorm"
)

// Prepare: kitchen accepted the order.
func (s *OrderService) Prepare(o *entity.Order) error {
	return s.transition(o,
		[]entity.OrderStatus{entity.OrderPending}, entity.OrderPreparing,
		[]entity.OrderItemStatus{entity.ItemPending}, entity.ItemPreparing)
}

// Serve: food is on the table. Reachable straight from Pending as well, for
// counters that skip the preparing step.
func (s *OrderService) Serve(o *entity.Order) error {
	return s.transition(o,
		[]entity.OrderStatus{entity.OrderPending, entity.OrderPreparing}, entity.OrderServed,
		[]entity.OrderItemStatus{entity.ItemPending, entity.ItemPreparing}, entity.ItemServed)
}

// Pay: the tab is settled. Items have no Paid state of their own; anything
// still in flight is marked Served.
func (s *OrderService) Pay(o *entity.Order) error {
	return s.transition(o,
		[]entity.OrderStatus{entity.OrderServed}, entity.OrderPaid,
		[]entity.OrderItemStatus{entity.ItemPending, entity.ItemPreparing}, entity.ItemServed)
}

// Cancel: allowed from any non-final state; every remaining item is cancelled
// with the order.
func (s *OrderService) Cancel(o *entity.Order) error {
	return s.transition(o,
		[]entity.OrderStatus{entity.OrderPending, entity.OrderPreparing, entity.OrderServed}, entity.OrderCancelled,
		[]entity.OrderItemStatus{entity.ItemPending, entity.ItemPreparing, entity.ItemServed}, entity.ItemCancelled)
}

func (s *OrderService) transition(
	o *entity.Order,
	from []entity.OrderStatus, to entity.OrderStatus,
	itemsFrom []entity.OrderItemStatus, itemsTo entity.OrderItemStatus,
) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return s.ItemRepo.CascadeStatus(tx, o.ID, itemsFrom, itemsTo)
	})
	if err != nil {
		return err
	}

	o.Status = to
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(o.RestaurantID, o.ID, to)
	}
	return nil
}
