// Package events adapts the Kafka producer to the publisher contract the
// order stores depend on.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	ckafka "github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/AviranAbady/sales-api/pkg/kafka"
)

type Publisher struct {
	producer *kafka.Producer
}

func NewPublisher(producer *kafka.Producer) *Publisher {
	return &Publisher{producer: producer}
}

// Publish marshals payload to JSON and delivers it synchronously. An
// error means the event was not accepted by the broker and the caller
// must treat its unit of work as failed.
func (p *Publisher) Publish(ctx context.Context, topic, key string, payload any) error {
	val, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	headers := []ckafka.Header{
		{Key: "content-type", Value: []byte("application/json")},
	}

	if err = p.producer.Publish(ctx, topic, []byte(key), val, headers); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}
