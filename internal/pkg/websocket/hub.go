package websocket

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Hub keeps the open notification connections of every user and fans
// messages out to them.
type Hub struct {
	// Registered clients organized by user ID
	clients map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	deliver    chan *delivery
	done       chan struct{}
	stopOnce   sync.Once

	// Guards clients for readers outside Run
	mu sync.RWMutex

	allowedOrigins map[string]bool
	logger         zerolog.Logger
}

type delivery struct {
	userID uuid.UUID
	data   []byte
}

// NewHub creates a new Hub. An empty allowedOrigins accepts any origin.
func NewHub(logger zerolog.Logger, allowedOrigins []string) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Hub{
		clients:        make(map[uuid.UUID]map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		deliver:        make(chan *delivery, 256),
		done:           make(chan struct{}),
		allowedOrigins: origins,
		logger:         logger.With().Str("component", "notification_hub").Logger(),
	}
}

// Run handles registrations and deliveries until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case d := <-h.deliver:
			h.deliverMessage(d)
		case <-h.done:
			h.closeAll()
			return
		}
	}
}

// Stop closes every connection and ends Run.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Debug().Str("userID", client.userID.String()).Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.userID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.userID)
	}
	h.logger.Debug().Str("userID", client.userID.String()).Msg("Client unregistered")
}

func (h *Hub) deliverMessage(d *delivery) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[d.userID] {
		select {
		case client.send <- d.data:
		default:
			// slow consumer
			h.removeLocked(client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

// SendToUser queues v, encoded as JSON, for every connection of userID.
// Users without open connections simply miss the message.
func (h *Hub) SendToUser(userID uuid.UUID, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	select {
	case h.deliver <- &delivery{userID: userID, data: data}:
	case <-h.done:
	default:
		h.logger.Warn().Str("userID", userID.String()).Msg("Notification queue full, dropping message")
	}
	return nil
}

// ClientCount returns the number of open connections of userID
func (h *Hub) ClientCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
