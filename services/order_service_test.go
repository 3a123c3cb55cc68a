package services

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"dashboard/entity"
	"dashboard/pkg/datatable"
)

func parseDT(t *testing.T, raw string) datatable.Params {
	t.Helper()
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	return datatable.Parse(q)
}

func TestListActiveTotalsExcludeCancelledItems(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	seedOrder(t, db, rest.ID, entity.OrderPending,
		entity.OrderItem{ItemID: 1, Price: money("10.50"), Amount: 2, Status: entity.ItemPending},
		entity.OrderItem{ItemID: 2, Price: money("99.00"), Amount: 1, Status: entity.ItemCancelled},
	)

	out, err := svc.ListActive(rest, parseDT(t, "draw=1"), "en")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	rows := out.Data.([]OrderListRow)
	if len(rows) != 1 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[0].Total != "21.00 USD" {
		t.Fatalf("total=%q", rows[0].Total)
	}
	if rows[0].Status != "Pending" || rows[0].RowClass != "warning" {
		t.Fatalf("row=%+v", rows[0])
	}
}

func TestListActiveSortsByStatusDescending(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	served := seedOrder(t, db, rest.ID, entity.OrderServed,
		entity.OrderItem{ItemID: 1, Price: money("1.00"), Amount: 1, Status: entity.ItemServed})
	pending := seedOrder(t, db, rest.ID, entity.OrderPending,
		entity.OrderItem{ItemID: 2, Price: money("1.00"), Amount: 1, Status: entity.ItemPending})
	// closed orders stay off the live board
	seedOrder(t, db, rest.ID, entity.OrderPaid,
		entity.OrderItem{ItemID: 3, Price: money("1.00"), Amount: 1, Status: entity.ItemServed})

	out, err := svc.ListActive(rest, parseDT(t, "draw=1"), "en")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	rows := out.Data.([]OrderListRow)
	if len(rows) != 2 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[0].ID != pending.ID || rows[1].ID != served.ID {
		t.Fatalf("order of rows: %d, %d", rows[0].ID, rows[1].ID)
	}
	if out.RecordsTotal != 2 {
		t.Fatalf("recordsTotal=%d", out.RecordsTotal)
	}
}

func TestListActiveCountsMatchVisibleRows(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	live := seedOrder(t, db, rest.ID, entity.OrderPending,
		entity.OrderItem{ItemID: 1, Price: money("5.00"), Amount: 1, Status: entity.ItemPending})
	// every item cancelled: the board never shows this order
	seedOrder(t, db, rest.ID, entity.OrderPending,
		entity.OrderItem{ItemID: 2, Price: money("9.00"), Amount: 1, Status: entity.ItemCancelled})

	out, err := svc.ListActive(rest, parseDT(t, "draw=1"), "en")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	rows := out.Data.([]OrderListRow)
	if len(rows) != 1 || rows[0].ID != live.ID {
		t.Fatalf("rows=%+v", rows)
	}
	if out.RecordsTotal != 1 || out.RecordsFiltered != 1 {
		t.Fatalf("counts=%d/%d, want 1/1", out.RecordsTotal, out.RecordsFiltered)
	}
}

func TestListClosedKeepsFullyCancelledOrders(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	cancelled := seedOrder(t, db, rest.ID, entity.OrderCancelled,
		entity.OrderItem{ItemID: 1, Price: money("10.00"), Amount: 1, Status: entity.ItemCancelled})

	out, err := svc.ListClosed(rest, parseDT(t, "draw=1"), "en")
	if err != nil {
		t.Fatalf("list closed: %v", err)
	}
	rows := out.Data.([]OrderListRow)
	if len(rows) != 1 || rows[0].ID != cancelled.ID {
		t.Fatalf("rows=%+v", rows)
	}
	// every item cancelled -> no total to sum
	if rows[0].Total != "0.00 USD" {
		t.Fatalf("total=%q", rows[0].Total)
	}
}

func TestInvoiceBuildsLocalizedLines(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	it := seedItem(t, db, rest.ID, "12.50", "Margherita")
	o := seedOrder(t, db, rest.ID, entity.OrderServed,
		entity.OrderItem{ItemID: it.ID, Price: money("12.50"), Amount: 2, Status: entity.ItemServed},
		entity.OrderItem{ItemID: it.ID, Price: money("12.50"), Amount: 1, Status: entity.ItemCancelled},
	)

	inv, got, err := svc.Invoice(o.ID, "en")
	if err != nil {
		t.Fatalf("invoice: %v", err)
	}
	if got.ID != o.ID {
		t.Fatalf("returned order %d", got.ID)
	}
	if inv.Total != "25.00 USD" {
		t.Fatalf("total=%q", inv.Total)
	}
	if len(inv.Items) != 1 {
		t.Fatalf("cancelled line leaked: %+v", inv.Items)
	}
	line := inv.Items[0]
	if line.Name != "Margherita" || line.Amount != 2 || line.Subtotal != "25.00 USD" {
		t.Fatalf("line=%+v", line)
	}
}

func TestInvoiceNotFoundForCancelledOrder(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	o := seedOrder(t, db, rest.ID, entity.OrderCancelled)

	if _, _, err := svc.Invoice(o.ID, "en"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestLatestUpdateQuiet(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	seedOrder(t, db, rest.ID, entity.OrderPending)

	out, err := svc.LatestUpdate(rest.ID, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("latest update: %v", err)
	}
	if out.OrderUpdatesExist || out.NewPendingOrder || out.NewPreparingOrder {
		t.Fatalf("expected quiet: %+v", out)
	}
	if out.PendingOrdersAmount != nil {
		t.Fatalf("pending amount should be null, got %d", *out.PendingOrdersAmount)
	}
}

func TestLatestUpdateReportsPendingWork(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	seedOrder(t, db, rest.ID, entity.OrderPending)
	seedOrder(t, db, rest.ID, entity.OrderPreparing)

	out, err := svc.LatestUpdate(rest.ID, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("latest update: %v", err)
	}
	if !out.OrderUpdatesExist || !out.NewPendingOrder || !out.NewPreparingOrder {
		t.Fatalf("expected updates: %+v", out)
	}
	if out.PendingOrdersAmount == nil || *out.PendingOrdersAmount != 1 {
		t.Fatalf("pending amount=%v", out.PendingOrdersAmount)
	}
}

func TestLatestUpdateIgnoresOtherRestaurants(t *testing.T) {
	svc, db := newOrderService(t)
	rest := seedRestaurant(t, db)
	other := entity.Restaurant{Name: "Other", Locale: "en", CurrencyID: rest.CurrencyID}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed other: %v", err)
	}
	seedOrder(t, db, other.ID, entity.OrderPending)

	out, err := svc.LatestUpdate(rest.ID, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("latest update: %v", err)
	}
	if out.OrderUpdatesExist {
		t.Fatalf("leaked another restaurant's orders: %+v", out)
	}
}
