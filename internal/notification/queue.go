package notification

import (
	"context"
	"errors"
	"log"
	"sync"
)

var (
	ErrQueueFull    = errors.New("notification queue is full")
	ErrQueueStopped = errors.New("notification queue is stopped")
)

// Handler processes one dequeued event.
type Handler func(ctx context.Context, event Event)

type Queue interface {
	Enqueue(ctx context.Context, event Event) error
	Stop()
}

// WorkerQueue is an in-process queue drained by a fixed pool of workers.
type WorkerQueue struct {
	handler     Handler
	jobQueue    chan Event
	workerWg    sync.WaitGroup
	workerCount int
	started     bool
	stopped     bool
	mu          sync.RWMutex
}

func NewWorkerQueue(handler Handler, workerCount, size int) *WorkerQueue {
	if workerCount <= 0 {
		workerCount = 3
	}
	if size <= 0 {
		size = 500
	}
	return &WorkerQueue{
		handler:     handler,
		jobQueue:    make(chan Event, size),
		workerCount: workerCount,
	}
}

// Start starts the workers
func (q *WorkerQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.stopped {
		return
	}

	for i := 0; i < q.workerCount; i++ {
		q.workerWg.Add(1)
		go q.worker(i)
	}
	q.started = true
	log.Printf("[NotificationQueue] Started %d workers", q.workerCount)
}

// Stop closes the queue and waits until queued events are drained
func (q *WorkerQueue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	close(q.jobQueue)
	q.mu.Unlock()

	q.workerWg.Wait()
	log.Println("[NotificationQueue] All workers stopped")
}

// Enqueue never blocks: a full queue drops the event with ErrQueueFull.
func (q *WorkerQueue) Enqueue(ctx context.Context, event Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		return ErrQueueStopped
	}
	select {
	case q.jobQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *WorkerQueue) worker(id int) {
	defer q.workerWg.Done()

	for event := range q.jobQueue {
		q.handler(context.Background(), event)
	}

	log.Printf("[NotificationQueue] Worker %d stopped", id)
}
