package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"dashboard/entity"
	"dashboard/pkg/i18n"
	"dashboard/services"
	"dashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes committed order-status changes to dashboard clients
// subscribed per restaurant. The latest-update polling endpoint stays the
// fallback for clients without websockets.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type OrderEvent struct {
	RestaurantID uint               `json:"-"`
	OrderID      uint               `json:"orderId"`
	Status       entity.OrderStatus `json:"status"`
	StatusLabel  string             `json:"statusLabel"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if conns := h.clients[sub.RestaurantID]; conns != nil {
				if conns[sub.Conn] {
					delete(conns, sub.Conn)
					sub.Conn.Close()
				}
				if len(conns) == 0 {
					delete(h.clients, sub.RestaurantID)
				}
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Println("ws write:", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged implements services.TransitionNotifier. Non-blocking so
// a slow hub never holds an HTTP handler.
func (h *OrderHub) OrderStatusChanged(restaurantID, orderID uint, status entity.OrderStatus) {
	ev := OrderEvent{
		RestaurantID: restaurantID,
		OrderID:      orderID,
		Status:       status,
		StatusLabel:  i18n.T(i18n.Default, status.LabelKey()),
	}
	select {
	case h.broadcast <- ev:
	default:
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handle upgrades GET /ws/restaurants/:id/orders and keeps the connection
// registered until the client goes away. Subscribing is scoped like every
// other order endpoint: staff only see their own restaurant's feed.
func (h *OrderHub) Handle(c *gin.Context) {
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad restaurant id"})
		return
	}
	if !services.Can(utils.CurrentActor(c), services.ActionAccess, uint(restID)) {
		c.JSON(http.StatusForbidden, gin.H{"error": i18n.T(i18n.Default, "forbidden")})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade:", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: uint(restID)}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
