package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"dashboard/entity"
	"dashboard/repository"
	"dashboard/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

// testAuth stands in for the JWT middleware: it plants the given actor into
// the context the way middlewares.AuthMiddleware does.
func testAuth(role string, restID *uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", uint(1))
		c.Set("role", role)
		c.Set("restaurantId", restID)
		c.Next()
	}
}

func newTestEnv(t *testing.T, role string, restID *uint) *testEnv {
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

	currencyRepo := repository.NewCurrencyRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	currencySvc := services.NewCurrencyService(currencyRepo)
	orderSvc := services.NewOrderService(db, orderRepo, orderItemRepo, restRepo)
	orderItemSvc := services.NewOrderItemService(db, orderItemRepo, itemRepo, restRepo)

	currencyCtrl := NewCurrencyController(currencySvc)
	orderCtrl := NewOrderController(orderSvc, restRepo)
	orderItemCtrl := NewOrderItemController(orderSvc, orderItemSvc)

	r := gin.New()
	d := r.Group("/dashboard", testAuth(role, restID))
	{
		d.GET("/currencies/data", currencyCtrl.Data)
		d.POST("/currencies", currencyCtrl.Create)
		d.GET("/currencies/:id", currencyCtrl.Show)
		d.POST("/currencies/:id", currencyCtrl.Update)
		d.POST("/currencies/:id/delete", currencyCtrl.Delete)

		d.GET("/restaurants/:id/orders/data", orderCtrl.Data)
		d.GET("/restaurants/:id/orders/closed-data", orderCtrl.ClosedData)
		d.GET("/restaurants/:id/orders/latest-update", orderCtrl.LatestUpdate)

		d.GET("/orders/:id/invoice", orderCtrl.Invoice)
		d.POST("/orders/:id/prepare", orderCtrl.Prepare)
		d.POST("/orders/:id/serve", orderCtrl.Serve)
		d.POST("/orders/:id/pay", orderCtrl.Pay)
		d.POST("/orders/:id/cancel", orderCtrl.Cancel)

		d.POST("/orders/:id/items", orderItemCtrl.Add)
		d.GET("/orders/:id/items/data", orderItemCtrl.Data)
	}
	return &testEnv{db: db, router: r}
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values, ajax bool) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest("POST", path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if ajax {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json %q: %v", w.Body.String(), err)
	}
	return out
}

// ----- seed helpers -----

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
