package v1

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// noNUL запрещает нулевой байт: postgres не хранит его в TEXT
func noNUL(fl validator.FieldLevel) bool {
	return !strings.ContainsRune(fl.Field().String(), 0)
}

// CreateSignalRequest DTO для создания сигнала
// @Description DTO для создания сигнала
type CreateSignalRequest struct {
	ToiletID string   `json:"toiletId" validate:"required,max=256,nonul"`
	Lat      *float64 `json:"lat" validate:"required,latitude"`
	Lng      *float64 `json:"lng" validate:"required,longitude"`
	Message  string   `json:"message,omitempty"`
}

// SignalIDRequest DTO для операций над существующим сигналом
// @Description DTO с идентификатором сигнала
type SignalIDRequest struct {
	SignalID string `json:"signalId" validate:"required"`
}

// SignalResponse DTO сигнала в ответе
// @Description DTO сигнала в ответе
type SignalResponse struct {
	ID          uuid.UUID `json:"id"`
	ToiletID    string    `json:"toiletId"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Message     string    `json:"message"`
	RequesterID string    `json:"requesterId"`
	AccepterID  *string   `json:"accepterId"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// CreateSignalResponse DTO ответа на создание сигнала
// @Description DTO ответа на создание сигнала
type CreateSignalResponse struct {
	OK        bool      `json:"ok"`
	ID        uuid.UUID `json:"id"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ListSignalsResponse DTO списка активных сигналов
// @Description DTO списка активных сигналов
type ListSignalsResponse struct {
	OK    bool              `json:"ok"`
	Items []*SignalResponse `json:"items"`
}

// OKResponse DTO успешного ответа без данных
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse DTO ответа с ошибкой
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
