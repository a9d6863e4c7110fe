package broadcast

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerSettings - параметры предохранителя публикации
type BreakerSettings struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// BreakerPublisher перестает обращаться к брокеру после серии ошибок
// и сразу возвращает gobreaker.ErrOpenState, пока предохранитель открыт.
type BreakerPublisher struct {
	next Publisher
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerPublisher оборачивает next предохранителем
func NewBreakerPublisher(next Publisher, settings BreakerSettings, logger *logrus.Logger) *BreakerPublisher {
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	timeout := settings.OpenTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "signal-broadcast",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Broadcast circuit breaker changed state")
		},
	})
	return &BreakerPublisher{next: next, cb: cb}
}

// Publish передает событие дальше через предохранитель
func (p *BreakerPublisher) Publish(ctx context.Context, event Event) error {
	_, err := p.cb.Execute(func() (struct{}, error) {
		return struct{}{}, p.next.Publish(ctx, event)
	})
	return err
}

// State возвращает текущее состояние предохранителя
func (p *BreakerPublisher) State() string {
	return p.cb.State().String()
}
