package eventbus

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
)

func natsOptions() []nc.Option {
	return []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
	}
}

// NewPublisher creates a NATS JetStream publisher.
func NewPublisher(natsURL string, logger *slog.Logger) (message.Publisher, error) {
	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         natsURL,
			NatsOptions: natsOptions(),
			Marshaler:   &nats.GobMarshaler{},
			JetStream: nats.JetStreamConfig{
				AutoProvision: true,
			},
			SubjectCalculator: nats.DefaultSubjectCalculator,
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}
	return publisher, nil
}

// NewSubscriber creates a durable NATS JetStream subscriber.
func NewSubscriber(natsURL string, logger *slog.Logger) (message.Subscriber, error) {
	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:            natsURL,
			NatsOptions:    natsOptions(),
			Unmarshaler:    &nats.GobMarshaler{},
			AckWaitTimeout: 30 * time.Second,
			JetStream: nats.JetStreamConfig{
				AutoProvision: true,
				DurablePrefix: "codeclash",
			},
			SubjectCalculator: nats.DefaultSubjectCalculator,
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}
	return subscriber, nil
}
