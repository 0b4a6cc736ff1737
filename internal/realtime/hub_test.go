package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floreria-be/internal/order"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case msg := <-c.send:
		var ev Event
		require.NoError(t, json.Unmarshal(msg, &ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastsOrderCreated(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.register <- c

	hub.OrderCreated(&order.Order{
		ID:            101,
		ContactName:   "Camila Rojas",
		RecipientName: "Abuela Rosa",
		Total:         34470,
		Status:        order.StatusPending,
		Lines:         []order.OrderLine{{}, {}},
	})

	ev := receive(t, c)
	assert.Equal(t, EventOrderCreated, ev.Type)

	var view struct {
		ID     string `json:"id"`
		Total  int    `json:"total"`
		Status string `json:"status"`
		Lines  int    `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(ev.Payload, &view))
	assert.Equal(t, "101", view.ID)
	assert.Equal(t, 34470, view.Total)
	assert.Equal(t, "pending", view.Status)
	assert.Equal(t, 2, view.Lines)
}

func TestHub_BroadcastsStatusChangeToAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := &Client{hub: hub, send: make(chan []byte, 4)}
	b := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.register <- a
	hub.register <- b

	hub.OrderStatusChanged(&order.Order{ID: 7, Status: order.StatusReady})

	for _, c := range []*Client{a, b} {
		ev := receive(t, c)
		assert.Equal(t, EventOrderStatusChanged, ev.Type)
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.register <- c
	hub.unregister <- c

	// A broadcast after unregister must not reach the closed channel.
	hub.OrderCreated(&order.Order{ID: 8})

	select {
	case _, ok := <-c.send:
		assert.False(t, ok, "send should be closed")
	case <-time.After(time.Second):
		t.Fatal("send channel never closed")
	}
}
