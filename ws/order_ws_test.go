package ws

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard/entity"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}

// stubAuth plants the claims the ws auth middleware would have set.
func stubAuth(role string, restID *uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", uint(1))
		c.Set("role", role)
		c.Set("restaurantId", restID)
		c.Next()
	}
}

func subscribe(t *testing.T, role string, restID *uint, path string) *httptest.ResponseRecorder {
	t.Helper()
	hub := NewOrderHub()
	r := gin.New()
	r.GET("/ws/restaurants/:id/orders", stubAuth(role, restID), hub.Handle)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribeForbiddenForForeignRestaurant(t *testing.T) {
	restID := uint(2)
	w := subscribe(t, entity.RoleWaiter, &restID, "/ws/restaurants/1/orders")
	if w.Code != http.StatusForbidden {
		t.Fatalf("code = %d, want 403", w.Code)
	}
}

func TestSubscribeOwnRestaurantReachesUpgrade(t *testing.T) {
	restID := uint(1)
	// no websocket handshake headers: the upgrader rejects the request, which
	// proves the request got past the capability check
	w := subscribe(t, entity.RoleWaiter, &restID, "/ws/restaurants/1/orders")
	if w.Code == http.StatusForbidden {
		t.Fatalf("own-restaurant subscribe was refused")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400 from the failed upgrade", w.Code)
	}
}

func TestSubscribeBadRestaurantID(t *testing.T) {
	w := subscribe(t, entity.RoleAdmin, nil, "/ws/restaurants/abc/orders")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
}
