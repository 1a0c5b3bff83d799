//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=../mocks/mock_publisher.go -package=mocks

// Package sink ships prediction events to the analytics channel.
// Publication is at-least-once and best-effort: the dispatcher fires
// it off the critical path and only logs failures.
package sink

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"predict-lab/domain/event"
)

type IEventPublisher interface {
	Publish(ctx context.Context, e event.PredictionCompleted, stream, partitionKey string) error
}

// StreamPublisher appends prediction events to a Redis stream.
// Consumers read at their own pace; a lagging or dropped event never
// affects the dispatch result.
type StreamPublisher struct {
	client *redis.Client
	log    *slog.Logger
}

func NewStreamPublisher(client *redis.Client, log *slog.Logger) StreamPublisher {
	return StreamPublisher{client: client, log: log}
}

func (p StreamPublisher) Publish(ctx context.Context, e event.PredictionCompleted, stream, partitionKey string) error {
	payload, err := json.Marshal(e.Prediction)
	if err != nil {
		return err
	}
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"partition_key": partitionKey,
			"prediction":    payload,
			"at":            e.At.UnixNano(),
		},
	}).Err()
}

// NopPublisher is wired when publishing is disabled by configuration.
type NopPublisher struct {
	log *slog.Logger
}

func NewNopPublisher(log *slog.Logger) NopPublisher {
	return NopPublisher{log: log}
}

func (p NopPublisher) Publish(_ context.Context, e event.PredictionCompleted, stream, _ string) error {
	p.log.Debug("Publishing disabled, dropping event",
		"project", e.ProjectID(), "stream", stream)
	return nil
}
