package services

import (
	"fmt"
	"strings"
	"testing"

	"dashboard/entity"
	"dashboard/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. cache=shared keeps every
// pooled connection on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Currency{}, &entity.Restaurant{},
		&entity.Item{}, &entity.ItemTranslation{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		repository.NewRestaurantRepository(db),
	)
	return svc, db
}

func seedRestaurant(t *testing.T, db *gorm.DB) *entity.Restaurant {
	t.Helper()
	cur := entity.Currency{Title: "USD"}
	if err := db.Create(&cur).Error; err != nil {
		t.Fatalf("seed currency: %v", err)
	}
	rest := entity.Restaurant{Name: "Trattoria", Locale: "en", CurrencyID: cur.ID}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	// callers get the same shape RestaurantRepository.Get preloads
	rest.Currency = cur
	return &rest
}

func seedOrder(t *testing.T, db *gorm.DB, restID uint, status entity.OrderStatus, items ...entity.OrderItem) *entity.Order {
	t.Helper()
	o := entity.Order{RestaurantID: restID, TableNumber: 4, Status: status}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	for i := range items {
		items[i].OrderID = o.ID
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed order item: %v", err)
		}
	}
	return &o
}

func seedItem(t *testing.T, db *gorm.DB, restID uint, priceStr, name string) *entity.Item {
	t.Helper()
	it := entity.Item{RestaurantID: restID, Price: decimal.RequireFromString(priceStr)}
	if err := db.Create(&it).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	tr := entity.ItemTranslation{ItemID: it.ID, Locale: "en", Name: name}
	if err := db.Create(&tr).Error; err != nil {
		t.Fatalf("seed translation: %v", err)
	}
	return &it
}

func orderStatus(t *testing.T, db *gorm.DB, id uint) entity.OrderStatus {
	t.Helper()
	var o entity.Order
	if err := db.First(&o, id).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	return o.Status
}

func itemStatuses(t *testing.T, db *gorm.DB, orderID uint) map[uint]entity.OrderItemStatus {
	t.Helper()
	var items []entity.OrderItem
	if err := db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		t.Fatalf("reload items: %v", err)
	}
	out := make(map[uint]entity.OrderItemStatus, len(items))
	for _, it := range items {
		out[it.ID] = it.Status
	}
	return out
}
