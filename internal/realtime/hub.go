package realtime

import (
	"encoding/json"
	"strconv"
	"time"

	"floreria-be/internal/logger"
	"floreria-be/internal/order"

	"go.uber.org/zap"
)

// Event is the wire envelope pushed to dashboard clients.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// orderView is the payload shape for order events. The id goes out as a
// decimal string.
type orderView struct {
	ID            string    `json:"id"`
	ContactName   string    `json:"contact_name"`
	RecipientName string    `json:"recipient_name"`
	PickupAt      time.Time `json:"pickup_at"`
	Total         int       `json:"total"`
	Status        string    `json:"status"`
	Lines         int       `json:"lines"`
}

// Hub fans order events out to connected admin dashboards. All client
// bookkeeping happens on the run loop goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow consumer: drop it rather than block the hub.
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

func (h *Hub) emit(eventType string, o *order.Order) {
	payload, err := json.Marshal(orderView{
		ID:            strconv.FormatInt(o.ID, 10),
		ContactName:   o.ContactName,
		RecipientName: o.RecipientName,
		PickupAt:      o.PickupAt,
		Total:         o.Total,
		Status:        string(o.Status),
		Lines:         len(o.Lines),
	})
	if err != nil {
		logger.L().Error("failed to marshal order event", zap.Error(err))
		return
	}

	msg, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		logger.L().Error("failed to marshal event envelope", zap.Error(err))
		return
	}

	h.broadcast <- msg
}

// OrderCreated implements order.Notifier.
func (h *Hub) OrderCreated(o *order.Order) {
	h.emit(EventOrderCreated, o)
}

// OrderStatusChanged implements order.Notifier.
func (h *Hub) OrderStatusChanged(o *order.Order) {
	h.emit(EventOrderStatusChanged, o)
}
