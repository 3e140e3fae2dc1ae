package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
)

// NewOrderWriter builds the order events writer, or nil when Kafka is not
// configured. Publishing through a nil writer is a no-op.
func NewOrderWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
}

// PublishOrderCreated sends the order event to Kafka. Best-effort: callers
// log the returned error and move on, order creation never depends on it.
func PublishOrderCreated(ctx context.Context, w *kafka.Writer, evt OrderCreatedEvent) error {
	if w == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.OrderId),
		Value: body,
	})
}

// EnqueueOrderFollowup schedules the delayed fulfillment follow-up task.
// A nil client disables it.
func EnqueueOrderFollowup(cli *asynq.Client, orderId string, delay time.Duration) error {
	if cli == nil {
		return nil
	}
	payload, err := json.Marshal(OrderFollowupPayload{OrderId: orderId})
	if err != nil {
		return err
	}
	_, err = cli.Enqueue(asynq.NewTask(TaskOrderFollowup, payload), asynq.ProcessIn(delay))
	return err
}
