package broadcast

import (
	"time"
)

// Типы событий, рассылаемых клиентам
const (
	EventPaperRequest    = "paper_request"
	EventPaperAccepted   = "paper_accepted"
	EventPaperUnaccepted = "paper_unaccepted"
	EventPaperCanceled   = "paper_canceled"
	EventSignalsChanged  = "signals_changed"
)

const (
	roomPrefix = "toilet:"
	// CatchAllRoom получает все события независимо от туалета.
	// Имя вне пространства toilet:<id>, иначе туалет "*" совпал бы с ним.
	CatchAllRoom = "signals:all"
)

// Event - событие об изменении сигнала.
// Комнаты открыты анонимным подписчикам, поэтому помощник в событие не попадает,
// а автор указывается только в paper_request, пока сигнал виден всем.
// Участников принятого сигнала клиент получает через listActive.
type Event struct {
	Type        string    `json:"type"`
	Room        string    `json:"room"`
	ToiletID    string    `json:"toiletId"`
	SignalID    string    `json:"signalId,omitempty"`
	RequesterID string    `json:"requesterId,omitempty"`
	Message     string    `json:"message,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt,omitzero"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// RoomForToilet возвращает имя комнаты для туалета
func RoomForToilet(toiletID string) string {
	return roomPrefix + toiletID
}

// ChangedFor строит парное событие signals_changed для конкретного события
func ChangedFor(e Event) Event {
	return Event{
		Type:       EventSignalsChanged,
		Room:       e.Room,
		ToiletID:   e.ToiletID,
		SignalID:   e.SignalID,
		OccurredAt: e.OccurredAt,
	}
}
