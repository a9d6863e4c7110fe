package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// PendingTTL - время жизни сигнала без помощника (при создании и после отказа)
	PendingTTL = 10 * time.Minute
	// AcceptedTTL - время жизни сигнала после того, как помощник его принял
	AcceptedTTL = 30 * time.Minute
	// MessageMaxLen - максимальная длина сообщения в символах
	MessageMaxLen = 120
)

// Signal представляет запрос "нужна бумага" в конкретном туалете
type Signal struct {
	ID          uuid.UUID  `json:"id"`
	ToiletID    string     `json:"toiletId"`
	Latitude    float64    `json:"lat"`
	Longitude   float64    `json:"lng"`
	Message     string     `json:"message"`
	RequesterID string     `json:"requesterId"`
	AccepterID  *string    `json:"accepterId"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	CanceledAt  *time.Time `json:"canceledAt,omitempty"`
}

// SignalDraft - проверенные данные для создания сигнала
type SignalDraft struct {
	ToiletID  string
	Latitude  float64
	Longitude float64
	Message   string
}

// IsActive сообщает, жив ли сигнал на момент now
func (s *Signal) IsActive(now time.Time) bool {
	return s.CanceledAt == nil && s.ExpiresAt.After(now)
}

// IsAccepted сообщает, есть ли у сигнала помощник
func (s *Signal) IsAccepted() bool {
	return s.AccepterID != nil && *s.AccepterID != ""
}

// VisibleTo проверяет, может ли пользователь видеть сигнал.
// Принятый сигнал видят только автор и помощник, пустой callerID - анонимный пользователь.
func (s *Signal) VisibleTo(callerID string) bool {
	if !s.IsAccepted() {
		return true
	}
	if callerID == "" {
		return false
	}
	return callerID == s.RequesterID || callerID == *s.AccepterID
}
