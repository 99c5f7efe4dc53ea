// Package notify publishes booking events for the push/toast pipeline.
// Delivery is fire-and-forget from the caller's perspective: a publish
// failure is logged and never fails the request that produced it.
package notify

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/evstation/rental-service/config"
	"github.com/evstation/rental-service/internal/model"
	"go.uber.org/zap"
)

type Event struct {
	Type        string              `json:"type"`
	BookingID   string              `json:"bookingId"`
	BookingCode string              `json:"bookingCode"`
	Status      model.BookingStatus `json:"status,omitempty"`
	RenterID    string              `json:"renterId,omitempty"`
	Note        string              `json:"note,omitempty"`
	OccurredAt  time.Time           `json:"occurredAt"`
}

const (
	EventStatusChanged  = "BOOKING_STATUS_CHANGED"
	EventCreated        = "BOOKING_CREATED"
	EventPaymentPending = "PAYMENT_PENDING"
)

type Notifier interface {
	Publish(ev Event) error
}

func NewProducer(cfg config.Kafka) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type kafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) Notifier {
	return &kafkaNotifier{producer: producer, topic: topic}
}

func (n *kafkaNotifier) Publish(ev Event) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: n.topic, Value: sarama.StringEncoder(data)}
	if _, _, err = n.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// Nop is used when no broker is configured (local runs, tests).
type Nop struct {
	Log *zap.Logger
}

func (n Nop) Publish(ev Event) error {
	if n.Log != nil {
		n.Log.Debug("booking event (no broker)", zap.String("type", ev.Type), zap.String("bookingCode", ev.BookingCode))
	}
	return nil
}
