package notification

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerQueueDrainsOnStop(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	q := NewWorkerQueue(func(_ context.Context, e Event) {
		mu.Lock()
		seen = append(seen, e.ResourceID)
		mu.Unlock()
	}, 2, 10)
	q.Start()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, q.Enqueue(context.Background(), Event{Type: EventPostCreated, ResourceID: id}))
	}
	q.Stop()

	assert.ElementsMatch(t, []string{"a", "b", "c"}, seen)
	assert.ErrorIs(t, q.Enqueue(context.Background(), Event{}), ErrQueueStopped)
}

func TestWorkerQueueFullDoesNotBlock(t *testing.T) {
	// not started, so nothing drains the buffer
	q := NewWorkerQueue(func(context.Context, Event) {}, 1, 1)

	require.NoError(t, q.Enqueue(context.Background(), Event{ResourceID: "1"}))
	assert.ErrorIs(t, q.Enqueue(context.Background(), Event{ResourceID: "2"}), ErrQueueFull)
}

func TestWorkerQueueStopIsIdempotent(t *testing.T) {
	q := NewWorkerQueue(func(context.Context, Event) {}, 1, 1)
	q.Start()
	q.Stop()
	q.Stop()
}

func TestServicePublishGoesThroughQueue(t *testing.T) {
	f := newServiceFixture(t)
	f.addUser(t, "Alice", "alice@example.com")
	f.addUser(t, "Bob", "bob@example.com", token(7))

	q := NewWorkerQueue(f.service.Handle, 1, 4)
	q.Start()
	f.service.SetQueue(q)

	require.NoError(t, f.service.Publish(context.Background(), Event{Type: EventPostCreated, Actor: "Alice", ResourceID: "p1"}))
	q.Stop()

	assert.Equal(t, []string{token(7)}, f.gateway.sentTokens())
}
