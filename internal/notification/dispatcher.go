package notification

import (
	"context"
	"log"
	"sync"
	"time"

	"social-backend/pkg/fcm"
)

// Gateway submits one batch of tokens to the push provider.
type Gateway interface {
	SendMulticast(ctx context.Context, tokens []string, notification fcm.NotificationData) (*fcm.BatchResult, error)
}

type Payload struct {
	Title string
	Body  string
	Data  map[string]string
}

type BatchFailure struct {
	BatchIndex int
	Err        error
}

// DispatchReport summarises one Notify call. Sent counts deliveries from
// batches that did not fail.
type DispatchReport struct {
	Sent          int
	Batches       int
	FailedBatches []BatchFailure
}

type Dispatcher struct {
	gateway   Gateway
	batchSize int
	timeout   time.Duration
}

// NewDispatcher builds a dispatcher. A nil gateway disables delivery.
// batchSize is capped at the provider's multicast ceiling.
func NewDispatcher(gateway Gateway, batchSize int, timeout time.Duration) *Dispatcher {
	if batchSize <= 0 || batchSize > fcm.MaxMulticastTokens {
		batchSize = fcm.MaxMulticastTokens
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		gateway:   gateway,
		batchSize: batchSize,
		timeout:   timeout,
	}
}

func (d *Dispatcher) Enabled() bool {
	return d.gateway != nil
}

// Notify sends payload to every well-formed recipient token. Batches run
// concurrently; a failed or timed out batch is recorded and never stops the
// others.
func (d *Dispatcher) Notify(ctx context.Context, recipients []string, payload Payload) DispatchReport {
	var report DispatchReport

	if d.gateway == nil {
		log.Printf("[Dispatcher] No push gateway configured, skipping %d recipients", len(recipients))
		return report
	}

	valid := FilterTokens(recipients)
	if len(valid) == 0 {
		return report
	}

	batches := chunk(valid, d.batchSize)
	report.Batches = len(batches)

	type outcome struct {
		sent int
		err  error
	}
	outcomes := make([]outcome, len(batches))

	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []string) {
			defer wg.Done()
			sent, err := d.sendBatch(ctx, batch, payload)
			outcomes[i] = outcome{sent: sent, err: err}
		}(i, batch)
	}
	wg.Wait()

	for i, o := range outcomes {
		if o.err != nil {
			log.Printf("[Dispatcher] Batch %d/%d failed: %v", i+1, len(batches), o.err)
			report.FailedBatches = append(report.FailedBatches, BatchFailure{BatchIndex: i, Err: o.err})
			continue
		}
		report.Sent += o.sent
	}
	return report
}

// sendBatch bounds the gateway call by the dispatcher timeout even when the
// gateway ignores its context.
func (d *Dispatcher) sendBatch(ctx context.Context, tokens []string, payload Payload) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	type result struct {
		res *fcm.BatchResult
		err error
	}
	done := make(chan result, 1)
	go func() {
		res, err := d.gateway.SendMulticast(ctx, tokens, fcm.NotificationData{
			Title: payload.Title,
			Body:  payload.Body,
			Data:  payload.Data,
		})
		done <- result{res: res, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return 0, r.err
		}
		if r.res == nil {
			return 0, nil
		}
		return r.res.SuccessCount, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func chunk(tokens []string, size int) [][]string {
	batches := make([][]string, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		batches = append(batches, tokens[start:end])
	}
	return batches
}
