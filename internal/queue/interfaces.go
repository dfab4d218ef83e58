// Package queue describes the asynchronous click ingest path.
package queue

import "context"

// Consumer drains queued clicks into the ledger until ctx is cancelled.
type Consumer interface {
	Start(ctx context.Context) error
}

// Publisher hands an encoded click to the broker under routingKey.
type Publisher interface {
	Publish(ctx context.Context, payload []byte, routingKey string) error
}

// NoopPublisher drops every payload. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, payload []byte, routingKey string) error {
	return ctx.Err()
}

// NoopConsumer blocks until shutdown.
type NoopConsumer struct{}

func (NoopConsumer) Start(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}
