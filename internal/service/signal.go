package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/paper_signal_service/internal/broadcast"
	"github.com/shenikar/paper_signal_service/internal/metrics"
	"github.com/shenikar/paper_signal_service/internal/models"
	"github.com/sirupsen/logrus"
)

// MaxToiletIDs ограничивает число туалетов в одном запросе списка
const MaxToiletIDs = 100

// SignalRepository определяет контракт хранилища сигналов.
// Методы Accept, Release* и Cancel - условные атомарные обновления:
// если условие не выполнено, возвращается (nil, nil).
type SignalRepository interface {
	CreateExclusive(ctx context.Context, signal *models.Signal, now time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Signal, error)
	Accept(ctx context.Context, id uuid.UUID, accepterID string, now, expiresAt time.Time) (*models.Signal, error)
	ReleaseByAccepter(ctx context.Context, id uuid.UUID, accepterID string, now, expiresAt time.Time) (*models.Signal, error)
	ReleaseByParticipant(ctx context.Context, id uuid.UUID, participantID string, now, expiresAt time.Time) (*models.Signal, error)
	Cancel(ctx context.Context, id uuid.UUID, requesterID string, now time.Time) (*models.Signal, error)
	ListActive(ctx context.Context, toiletIDs []string, now time.Time) ([]*models.Signal, error)
	DeleteRetired(ctx context.Context, before time.Time) (int64, error)
}

// SignalService определяет контракт жизненного цикла сигналов
type SignalService interface {
	CreateSignal(ctx context.Context, requesterID string, draft models.SignalDraft) (*models.Signal, error)
	AcceptSignal(ctx context.Context, id uuid.UUID, accepterID string) (*models.Signal, error)
	UnacceptSignal(ctx context.Context, id uuid.UUID, callerID string) (*models.Signal, error)
	CancelAcceptance(ctx context.Context, id uuid.UUID, callerID string) (*models.Signal, error)
	CancelSignal(ctx context.Context, id uuid.UUID, callerID string) error
	ListActive(ctx context.Context, toiletIDs []string, callerID string) ([]*models.Signal, error)
	PurgeRetired(ctx context.Context, before time.Time) (int64, error)
}

type signalService struct {
	repo      SignalRepository
	logger    *logrus.Logger
	publisher broadcast.Publisher
	now       func() time.Time
}

// NewSignalService создает сервис. publisher может быть nil: тогда рассылка пропускается.
func NewSignalService(repo SignalRepository, logger *logrus.Logger, publisher broadcast.Publisher) SignalService {
	return &signalService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		now:       defaultNow,
	}
}

// Postgres хранит время с точностью до микросекунд
func defaultNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// CreateSignal создает сигнал, если у автора нет другого активного
func (s *signalService) CreateSignal(ctx context.Context, requesterID string, draft models.SignalDraft) (*models.Signal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "signal",
		"method":       "CreateSignal",
		"requester_id": requesterID,
		"toilet_id":    draft.ToiletID,
	})

	if requesterID == "" {
		return nil, ErrUnauthorized
	}

	toiletID := strings.TrimSpace(draft.ToiletID)
	if toiletID == "" {
		return nil, fmt.Errorf("%w: toiletId is required", ErrInvalidPayload)
	}
	if strings.ContainsRune(toiletID, 0) {
		return nil, fmt.Errorf("%w: toiletId contains a NUL byte", ErrInvalidPayload)
	}
	if !isFinite(draft.Latitude) || !isFinite(draft.Longitude) {
		return nil, fmt.Errorf("%w: lat and lng must be finite numbers", ErrInvalidPayload)
	}

	now := s.now()
	signal := &models.Signal{
		ID:          uuid.New(),
		ToiletID:    toiletID,
		Latitude:    draft.Latitude,
		Longitude:   draft.Longitude,
		Message:     truncateMessage(draft.Message),
		RequesterID: requesterID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(models.PendingTTL),
	}

	if err := s.repo.CreateExclusive(ctx, signal, now); err != nil {
		if errors.Is(err, ErrAlreadyActive) {
			log.Warn("Requester already has an active signal")
			return nil, ErrAlreadyActive
		}
		log.WithError(err).Error("Failed to create signal in repository")
		return nil, fmt.Errorf("service: could not create signal: %w", err)
	}

	log.WithField("signal_id", signal.ID).Info("Signal created successfully")
	s.broadcast(ctx, log, broadcast.Event{
		Type:        broadcast.EventPaperRequest,
		Room:        broadcast.RoomForToilet(signal.ToiletID),
		ToiletID:    signal.ToiletID,
		SignalID:    signal.ID.String(),
		RequesterID: signal.RequesterID,
		Message:     signal.Message,
		ExpiresAt:   signal.ExpiresAt,
		OccurredAt:  now,
	})
	return signal, nil
}

// AcceptSignal закрепляет помощника за сигналом и продлевает срок жизни
func (s *signalService) AcceptSignal(ctx context.Context, id uuid.UUID, accepterID string) (*models.Signal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "signal",
		"method":      "AcceptSignal",
		"signal_id":   id,
		"accepter_id": accepterID,
	})

	if accepterID == "" {
		return nil, ErrUnauthorized
	}

	now := s.now()
	updated, err := s.repo.Accept(ctx, id, accepterID, now, now.Add(models.AcceptedTTL))
	if err != nil {
		log.WithError(err).Error("Failed to accept signal in repository")
		return nil, fmt.Errorf("service: could not accept signal: %w", err)
	}
	if updated == nil {
		err := s.explainAcceptMiss(ctx, id, accepterID, now)
		log.WithError(err).Warn("Signal accept rejected")
		return nil, err
	}

	log.Info("Signal accepted")
	s.broadcast(ctx, log, broadcast.Event{
		Type:       broadcast.EventPaperAccepted,
		Room:       broadcast.RoomForToilet(updated.ToiletID),
		ToiletID:   updated.ToiletID,
		SignalID:   updated.ID.String(),
		ExpiresAt:  updated.ExpiresAt,
		OccurredAt: now,
	})
	return updated, nil
}

// explainAcceptMiss перечитывает сигнал, чтобы понять, почему условное обновление не сработало.
// Истечение срока проверяется раньше состояния помощника.
func (s *signalService) explainAcceptMiss(ctx context.Context, id uuid.UUID, accepterID string, now time.Time) error {
	current, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case !current.ExpiresAt.After(now):
		return ErrExpired
	case current.IsAccepted():
		return conflict(ReasonAlreadyAccepted)
	case current.RequesterID == accepterID:
		return conflict(ReasonOwnSignal)
	default:
		// сигнал успели освободить между обновлением и чтением
		return conflict(ReasonAlreadyAccepted)
	}
}

// UnacceptSignal - помощник отказывается от сигнала
func (s *signalService) UnacceptSignal(ctx context.Context, id uuid.UUID, callerID string) (*models.Signal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "signal",
		"method":    "UnacceptSignal",
		"signal_id": id,
		"caller_id": callerID,
	})

	if callerID == "" {
		return nil, ErrUnauthorized
	}

	now := s.now()
	updated, err := s.repo.ReleaseByAccepter(ctx, id, callerID, now, now.Add(models.PendingTTL))
	if err != nil {
		log.WithError(err).Error("Failed to release signal in repository")
		return nil, fmt.Errorf("service: could not release signal: %w", err)
	}
	if updated == nil {
		if _, err := s.lookup(ctx, id); err != nil {
			return nil, err
		}
		log.Warn("Signal is not accepted by caller or expired")
		return nil, conflict(ReasonNotYoursOrExpired)
	}

	log.Info("Signal released by accepter")
	s.broadcastRelease(ctx, log, updated, now)
	return updated, nil
}

// CancelAcceptance снимает помощника по запросу автора или самого помощника
func (s *signalService) CancelAcceptance(ctx context.Context, id uuid.UUID, callerID string) (*models.Signal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "signal",
		"method":    "CancelAcceptance",
		"signal_id": id,
		"caller_id": callerID,
	})

	if callerID == "" {
		return nil, ErrUnauthorized
	}

	now := s.now()
	updated, err := s.repo.ReleaseByParticipant(ctx, id, callerID, now, now.Add(models.PendingTTL))
	if err != nil {
		log.WithError(err).Error("Failed to cancel acceptance in repository")
		return nil, fmt.Errorf("service: could not cancel acceptance: %w", err)
	}
	if updated == nil {
		current, err := s.lookup(ctx, id)
		if err != nil {
			return nil, err
		}
		switch {
		case !current.ExpiresAt.After(now):
			err = ErrExpired
		case !current.IsAccepted():
			err = conflict(ReasonNotAccepted)
		case callerID != current.RequesterID && callerID != *current.AccepterID:
			err = conflict(ReasonNotParticipant)
		default:
			err = conflict(ReasonNotAccepted)
		}
		log.WithError(err).Warn("Cancel acceptance rejected")
		return nil, err
	}

	log.Info("Signal acceptance canceled")
	s.broadcastRelease(ctx, log, updated, now)
	return updated, nil
}

// CancelSignal - автор снимает свой сигнал (мягкое удаление через canceled_at)
func (s *signalService) CancelSignal(ctx context.Context, id uuid.UUID, callerID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "signal",
		"method":    "CancelSignal",
		"signal_id": id,
		"caller_id": callerID,
	})

	if callerID == "" {
		return ErrUnauthorized
	}

	now := s.now()
	canceled, err := s.repo.Cancel(ctx, id, callerID, now)
	if err != nil {
		log.WithError(err).Error("Failed to cancel signal in repository")
		return fmt.Errorf("service: could not cancel signal: %w", err)
	}
	if canceled == nil {
		current, err := s.lookup(ctx, id)
		if err != nil {
			return err
		}
		if current.RequesterID != callerID {
			log.Warn("Attempted to cancel a signal of another user")
			return conflict(ReasonNotOwner)
		}
		return ErrNotFound
	}

	log.Info("Signal canceled")
	s.broadcast(ctx, log, broadcast.Event{
		Type:       broadcast.EventPaperCanceled,
		Room:       broadcast.RoomForToilet(canceled.ToiletID),
		ToiletID:   canceled.ToiletID,
		SignalID:   canceled.ID.String(),
		OccurredAt: now,
	})
	return nil
}

// ListActive возвращает активные сигналы для туалетов с учетом видимости для вызывающего
func (s *signalService) ListActive(ctx context.Context, toiletIDs []string, callerID string) ([]*models.Signal, error) {
	ids := normalizeToiletIDs(toiletIDs)
	if len(ids) == 0 {
		return []*models.Signal{}, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "signal",
		"method":    "ListActive",
		"toilets":   len(ids),
		"caller_id": callerID,
	})

	signals, err := s.repo.ListActive(ctx, ids, s.now())
	if err != nil {
		log.WithError(err).Error("Failed to list active signals from repository")
		return nil, fmt.Errorf("service: could not list active signals: %w", err)
	}

	visible := make([]*models.Signal, 0, len(signals))
	for _, signal := range signals {
		if signal.VisibleTo(callerID) {
			visible = append(visible, signal)
		}
	}

	log.WithField("count", len(visible)).Debug("Active signals listed")
	return visible, nil
}

// PurgeRetired физически удаляет сигналы, истекшие или отмененные до before
func (s *signalService) PurgeRetired(ctx context.Context, before time.Time) (int64, error) {
	deleted, err := s.repo.DeleteRetired(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("service: could not purge retired signals: %w", err)
	}
	if deleted > 0 {
		s.logger.WithFields(logrus.Fields{
			"service": "signal",
			"method":  "PurgeRetired",
			"deleted": deleted,
		}).Info("Retired signals purged")
	}
	return deleted, nil
}

// lookup возвращает сигнал, отмененные считаются отсутствующими
func (s *signalService) lookup(ctx context.Context, id uuid.UUID) (*models.Signal, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: could not get signal: %w", err)
	}
	if current.CanceledAt != nil {
		return nil, ErrNotFound
	}
	return current, nil
}

func (s *signalService) broadcastRelease(ctx context.Context, log *logrus.Entry, signal *models.Signal, now time.Time) {
	s.broadcast(ctx, log, broadcast.Event{
		Type:       broadcast.EventPaperUnaccepted,
		Room:       broadcast.RoomForToilet(signal.ToiletID),
		ToiletID:   signal.ToiletID,
		SignalID:   signal.ID.String(),
		ExpiresAt:  signal.ExpiresAt,
		OccurredAt: now,
	})
}

// broadcast отправляет событие и парное signals_changed.
// Ошибки рассылки только логируются: состояние в БД уже зафиксировано.
func (s *signalService) broadcast(ctx context.Context, log *logrus.Entry, event broadcast.Event) {
	metrics.SignalTransitions.WithLabelValues(event.Type).Inc()
	if s.publisher == nil {
		log.WithField("event_type", event.Type).Warn("Broadcast channel is not configured, skipping fan-out")
		return
	}
	for _, e := range []broadcast.Event{event, broadcast.ChangedFor(event)} {
		if err := s.publisher.Publish(ctx, e); err != nil {
			metrics.BroadcastFailures.WithLabelValues(e.Type).Inc()
			log.WithError(err).WithField("event_type", e.Type).Warn("Failed to broadcast signal event")
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// truncateMessage убирает нулевые байты и обрезает сообщение до MessageMaxLen рун
func truncateMessage(message string) string {
	message = strings.TrimSpace(strings.ReplaceAll(message, "\x00", ""))
	runes := []rune(message)
	if len(runes) > models.MessageMaxLen {
		return string(runes[:models.MessageMaxLen])
	}
	return message
}

func normalizeToiletIDs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		id = strings.TrimSpace(id)
		// с NUL сигнал создать нельзя, искать его бессмысленно
		if id == "" || strings.ContainsRune(id, 0) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
		if len(ids) == MaxToiletIDs {
			break
		}
	}
	return ids
}
