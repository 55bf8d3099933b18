package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"meowscope/internal/config"
	"meowscope/internal/webhook"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Publisher defines an interface for publishing messages.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) (string, error)
}

// PubSubPublisher is an implementation of Publisher using Google Pub/Sub.
type PubSubPublisher struct {
	client *pubsub.Client
}

// NewPublisher creates a new PubSubPublisher using the GCP project from config.
// When an emulator host is configured the client connects to it without credentials.
func NewPublisher(ctx context.Context, cfg *config.Config) (*PubSubPublisher, error) {
	if cfg.GCPProjectID == "" {
		return nil, fmt.Errorf("failed to create Pub/Sub client: missing GCP project id")
	}
	var opts []option.ClientOption
	if cfg.PubSubEmulatorHost != "" {
		opts = append(opts,
			option.WithEndpoint(cfg.PubSubEmulatorHost),
			option.WithoutAuthentication(),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}
	client, err := pubsub.NewClient(ctx, cfg.GCPProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Pub/Sub client: %w", err)
	}
	return &PubSubPublisher{client: client}, nil
}

// Publish sends the payload to the given Pub/Sub topic and returns the message ID.
func (p *PubSubPublisher) Publish(ctx context.Context, topic string, payload []byte) (string, error) {
	t := p.client.Topic(topic)
	defer t.Stop()
	result := t.Publish(ctx, &pubsub.Message{Data: payload})
	id, err := result.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to publish message to topic %s: %w", topic, err)
	}
	return id, nil
}

// Close releases the underlying client.
func (p *PubSubPublisher) Close() error {
	return p.client.Close()
}

// TierChangePublisher publishes reconciled tier changes as JSON messages.
type TierChangePublisher struct {
	pub   Publisher
	topic string
}

// NewTierChangePublisher returns a webhook.TierNotifier backed by pub.
func NewTierChangePublisher(pub Publisher, topic string) *TierChangePublisher {
	return &TierChangePublisher{pub: pub, topic: topic}
}

func (p *TierChangePublisher) NotifyTierChange(ctx context.Context, change webhook.TierChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal tier change: %w", err)
	}
	if _, err := p.pub.Publish(ctx, p.topic, payload); err != nil {
		return err
	}
	return nil
}
