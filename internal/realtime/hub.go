package realtime

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/shenikar/paper_signal_service/internal/broadcast"
	"github.com/shenikar/paper_signal_service/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Hub хранит подключенных клиентов по комнатам и раздает им события.
// Реализует broadcast.Dispatcher.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	clients map[*Client]struct{}
	logger  *logrus.Logger
	closed  bool
}

// NewHub создает пустой Hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register добавляет клиента в его комнаты. После закрытия хаба клиент сразу отключается.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(client.send)
		return
	}
	h.clients[client] = struct{}{}
	for _, room := range client.rooms {
		members, ok := h.rooms[room]
		if !ok {
			members = make(map[*Client]struct{})
			h.rooms[room] = members
		}
		members[client] = struct{}{}
	}
	metrics.WebSocketClients.Inc()
	h.logger.WithFields(logrus.Fields{
		"client_id":     client.id,
		"rooms":         len(client.rooms),
		"total_clients": len(h.clients),
	}).Debug("websocket client connected")
}

// Unregister удаляет клиента и закрывает его канал отправки
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.removeLocked(client) {
		h.logger.WithFields(logrus.Fields{
			"client_id":     client.id,
			"total_clients": len(h.clients),
		}).Debug("websocket client disconnected")
	}
}

func (h *Hub) removeLocked(client *Client) bool {
	if _, ok := h.clients[client]; !ok {
		return false
	}
	delete(h.clients, client)
	for _, room := range client.rooms {
		if members, ok := h.rooms[room]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	close(client.send)
	metrics.WebSocketClients.Dec()
	return true
}

// Dispatch доставляет событие в комнату события и в общую комнату, каждому клиенту не более одного раза.
// Клиенты с переполненной очередью отключаются.
func (h *Hub) Dispatch(event broadcast.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal signal event for websocket clients")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	targets := make(map[*Client]struct{})
	for _, room := range []string{event.Room, broadcast.CatchAllRoom} {
		for client := range h.rooms[room] {
			targets[client] = struct{}{}
		}
	}

	// порядок по ID: одинаковое поведение между запусками
	ordered := make([]*Client, 0, len(targets))
	for client := range targets {
		ordered = append(ordered, client)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].id < ordered[j].id })

	var slow []*Client
	for _, client := range ordered {
		select {
		case client.send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	for _, client := range slow {
		h.removeLocked(client)
		metrics.WebSocketDropped.Inc()
		h.logger.WithField("client_id", client.id).Warn("Dropping slow websocket client")
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Run блокируется до отмены контекста, затем отключает всех клиентов
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()
	h.Close()
}

// Close отключает всех клиентов и запрещает новые подключения
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	count := len(h.clients)
	for client := range h.clients {
		h.removeLocked(client)
	}
	h.logger.WithFields(logrus.Fields{
		"component":      "websocket-hub",
		"clients_closed": count,
	}).Info("websocket hub stopped")
}
