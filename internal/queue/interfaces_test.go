package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	require.NoError(t, p.Publish(context.Background(), []byte(`{}`), "click.ingest"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Publish(ctx, nil, "click.ingest"), context.Canceled)
}

func TestNoopConsumerStopsOnCancel(t *testing.T) {
	var c Consumer = NoopConsumer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, c.Start(ctx), context.Canceled)
}
