package realtime

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/shenikar/paper_signal_service/internal/broadcast"
)

// MaxRooms ограничивает число комнат одного клиента
const MaxRooms = 100

// Upgrader переводит HTTP-запросы в websocket-клиентов хаба
type Upgrader struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewUpgrader создает Upgrader. Пустой allowedOrigins разрешает любой Origin.
func NewUpgrader(hub *Hub, allowedOrigins []string) *Upgrader {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.ToLower(origin)] = struct{}{}
	}
	return &Upgrader{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				_, ok := allowed[strings.ToLower(r.Header.Get("Origin"))]
				return ok
			},
		},
	}
}

// Serve выполняет upgrade и подключает клиента к комнатам
func (u *Upgrader) Serve(w http.ResponseWriter, r *http.Request, rooms []string) error {
	conn, err := u.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade failed: %w", err)
	}
	NewClient(u.hub, conn, rooms).Start()
	return nil
}

// RoomsFor возвращает комнаты для набора туалетов; без туалетов - только общая комната
func RoomsFor(toiletIDs []string) []string {
	seen := make(map[string]struct{}, len(toiletIDs))
	rooms := make([]string, 0, len(toiletIDs))
	for _, id := range toiletIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		room := broadcast.RoomForToilet(id)
		if _, ok := seen[room]; ok {
			continue
		}
		seen[room] = struct{}{}
		rooms = append(rooms, room)
		if len(rooms) == MaxRooms {
			break
		}
	}
	if len(rooms) == 0 {
		return []string{broadcast.CatchAllRoom}
	}
	return rooms
}
