package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/srgjo27/apsrtc_booking/internal/core/domain"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Event is the payload published for each notification.
type Event struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Time        time.Time       `json:"time"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Severity    domain.Severity `json:"severity"`
}

const eventType = "apsrtc.booking.notification"

// KafkaNotifier publishes notifications to a topic. Publishing failures
// are logged and never reach the booking flow.
type KafkaNotifier struct {
	writer  messageWriter
	log     *zap.Logger
	timeout time.Duration
}

func NewKafkaNotifier(brokers []string, topic string, log *zap.Logger) *KafkaNotifier {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.LeastBytes{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafkago.RequireOne,
		// Each Notify writes one message; flush it instead of waiting
		// for the default one-second batch window.
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 2 * time.Second,
	}
	return newKafkaNotifier(w, log)
}

func newKafkaNotifier(w messageWriter, log *zap.Logger) *KafkaNotifier {
	return &KafkaNotifier{writer: w, log: log, timeout: 5 * time.Second}
}

func (k *KafkaNotifier) Notify(ctx context.Context, n domain.Notification) {
	evt := Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		Time:        time.Now().UTC(),
		Title:       n.Title,
		Description: n.Description,
		Severity:    n.Severity,
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		k.log.Error("failed to encode notification event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), k.timeout)
	defer cancel()

	err = k.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(n.Severity),
		Value: payload,
	})
	if err != nil {
		k.log.Error("failed to publish notification",
			zap.String("event_id", evt.ID),
			zap.String("title", n.Title),
			zap.Error(err),
		)
	}
}

func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}
