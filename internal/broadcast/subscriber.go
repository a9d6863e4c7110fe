package broadcast

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Dispatcher получает события из канала и раздает их подключенным клиентам
type Dispatcher interface {
	Dispatch(event Event)
}

// Subscriber читает события из Redis Pub/Sub и передает их в Dispatcher
type Subscriber struct {
	redisClient *redis.Client
	dispatcher  Dispatcher
	logger      *logrus.Logger
	channel     string
}

// NewSubscriber создает новый Subscriber
func NewSubscriber(redisClient *redis.Client, dispatcher Dispatcher, logger *logrus.Logger) *Subscriber {
	return &Subscriber{
		redisClient: redisClient,
		dispatcher:  dispatcher,
		logger:      logger,
		channel:     Channel,
	}
}

// Start подписывается на канал и запускает горутину обработки сообщений.
// Ошибка возвращается только если подписка не удалась.
func (s *Subscriber) Start(ctx context.Context) error {
	pubsub := s.redisClient.Subscribe(ctx, s.channel)
	// Ждем подтверждения подписки, иначе первые события могут потеряться
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return err
	}

	s.logger.WithField("channel", s.channel).Info("Starting signal event subscriber...")
	go func() {
		defer pubsub.Close()
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping signal event subscriber.")
				return
			case msg, ok := <-messages:
				if !ok {
					s.logger.Warn("Redis subscription channel closed")
					return
				}
				s.handle(msg.Payload)
			}
		}
	}()
	return nil
}

func (s *Subscriber) handle(payload string) {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.logger.WithError(err).Error("Failed to unmarshal signal event from Redis")
		return
	}
	if event.Room == "" {
		s.logger.WithField("event_type", event.Type).Warn("Dropping signal event without room")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"event_type": event.Type,
		"room":       event.Room,
	}).Debug("Dispatching signal event")
	s.dispatcher.Dispatch(event)
}
