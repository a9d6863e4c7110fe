package service

import "errors"

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrNotFound       = errors.New("signal not found")
	ErrExpired        = errors.New("signal expired")
	ErrConflict       = errors.New("conflict")
)

// Причины конфликтов, отдаются клиенту как код ошибки
const (
	ReasonAlreadyActive     = "already_active"
	ReasonAlreadyAccepted   = "already_accepted"
	ReasonOwnSignal         = "own_signal"
	ReasonNotYoursOrExpired = "not_yours_or_expired"
	ReasonNotAccepted       = "not_accepted"
	ReasonNotParticipant    = "not_participant"
	ReasonNotOwner          = "not_owner"
)

// ConflictError - нарушено предусловие состояния сигнала
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

// Is позволяет сравнивать через errors.Is(err, ErrConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func conflict(reason string) error {
	return &ConflictError{Reason: reason}
}

// ErrAlreadyActive возвращает репозиторий, если у автора уже есть активный сигнал
var ErrAlreadyActive = conflict(ReasonAlreadyActive)

// ConflictReason извлекает причину конфликта из цепочки ошибок
func ConflictReason(err error) (string, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Reason, true
	}
	return "", false
}
