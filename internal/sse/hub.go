package sse

import (
	"context"
	"sync"

	"clickrec/internal/metrics"
	"clickrec/internal/model"
)

// Client receives the clicks of a single user.
type Client struct {
	UserID string
	Ch     chan model.Click
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan model.Click
	users      map[string]map[*Client]struct{}
	mu         sync.RWMutex
	done       chan struct{}
	stopOnce   sync.Once
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan model.Click, 64),
		users:      make(map[string]map[*Client]struct{}),
		done:       make(chan struct{}),
	}
}

// Register is a no-op once Run has returned.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister is a no-op once Run has returned.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Done is closed when Run returns.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Broadcast never blocks the caller; clicks are dropped when the hub is backed up.
func (h *Hub) Broadcast(click model.Click) {
	select {
	case h.broadcast <- click:
	default:
	}
}

func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case click := <-h.broadcast:
			h.broadcastToUser(click)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.users[client.UserID] == nil {
		h.users[client.UserID] = make(map[*Client]struct{})
	}
	h.users[client.UserID][client] = struct{}{}
	metrics.FeedSubscribers.Inc()
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients := h.users[client.UserID]
	if clients == nil {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	metrics.FeedSubscribers.Dec()
	if len(clients) == 0 {
		delete(h.users, client.UserID)
	}
}

func (h *Hub) broadcastToUser(click model.Click) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.users[click.UserID] {
		select {
		case client.Ch <- click:
		default:
			// Drop if the client is too slow.
		}
	}
}
