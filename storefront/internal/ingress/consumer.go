package ingress

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"delivery-storefront/storefront/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the slice of kafka.Reader the consumer loop needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var _ MessageReader = (*kafka.Reader)(nil)

// Consumer reads typed envelopes off the events topic and hands them to the
// dispatcher. Reconnection and offset management belong to kafka-go.
type Consumer struct {
	Reader     MessageReader
	Dispatcher *Dispatcher
	// Backoff paces retries after a read error so a broken reader does not
	// spin the log.
	Backoff time.Duration
}

func NewConsumer(reader MessageReader, dispatcher *Dispatcher) *Consumer {
	return &Consumer{Reader: reader, Dispatcher: dispatcher, Backoff: time.Second}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting storefront event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.Backoff):
			}
			continue
		}

		var env domain.Envelope
		if err := json.Unmarshal(message.Value, &env); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Dispatcher.Dispatch(ctx, env)
	}
}
