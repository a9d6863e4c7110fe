package worker

import (
	"context"
	"time"

	"github.com/shenikar/paper_signal_service/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Purger удаляет отработавшие сигналы старше заданного момента
type Purger interface {
	PurgeRetired(ctx context.Context, before time.Time) (int64, error)
}

// Reaper периодически чистит истекшие и отмененные сигналы.
// Для корректности не нужен: активность проверяется при каждом чтении.
type Reaper struct {
	purger    Purger
	logger    *logrus.Logger
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
}

// NewReaper создает Reaper
func NewReaper(purger Purger, logger *logrus.Logger, interval, retention time.Duration) *Reaper {
	return &Reaper{
		purger:    purger,
		logger:    logger,
		interval:  interval,
		retention: retention,
		now:       time.Now,
	}
}

// Start запускает горутину очистки; interval <= 0 отключает очистку
func (r *Reaper) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Info("Signal reaper is disabled")
		return
	}
	r.logger.WithFields(logrus.Fields{
		"interval":  r.interval.String(),
		"retention": r.retention.String(),
	}).Info("Starting signal reaper...")

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping signal reaper.")
				return
			case <-ticker.C:
				r.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce выполняет один проход очистки
func (r *Reaper) RunOnce(ctx context.Context) {
	before := r.now().Add(-r.retention)
	deleted, err := r.purger.PurgeRetired(ctx, before)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.WithError(err).Error("Failed to purge retired signals")
		return
	}
	metrics.SignalsPurged.Add(float64(deleted))
	r.logger.WithField("deleted", deleted).Debug("Signal reaper pass completed")
}
