package history

import (
	"context"
	"errors"
	"log"
	"sync"

	"elementquiz/internal/quiz"
)

const defaultQueueSize = 64

// EventRecorder persists controller events.
type EventRecorder interface {
	Record(ctx context.Context, ev quiz.Event) error
}

// Recorder drains controller events into an EventRecorder on a single
// background goroutine, preserving event order. It lets an event loop
// observe the controller without waiting on the database.
type Recorder struct {
	sink  EventRecorder
	queue chan request

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	wg      sync.WaitGroup
}

// request is either an event to record or a barrier to acknowledge.
type request struct {
	ev      quiz.Event
	barrier chan struct{}
}

// NewRecorder creates a recorder writing to sink.
func NewRecorder(sink EventRecorder) (*Recorder, error) {
	if sink == nil {
		return nil, errors.New("sink is required")
	}
	return &Recorder{
		sink:  sink,
		queue: make(chan request, defaultQueueSize),
	}, nil
}

// Start begins draining the queue.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return errors.New("recorder already running")
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.running = true
	r.wg.Add(1)
	r.mu.Unlock()

	go r.loop(ctx)
	return nil
}

// Stop records everything already queued, then stops the worker.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	cancel := r.cancel
	r.cancel = nil
	r.running = false
	r.mu.Unlock()

	_ = r.Sync(context.Background())
	cancel()
	r.wg.Wait()
}

// Observe queues ev. It has the quiz.Observer signature.
func (r *Recorder) Observe(ev quiz.Event) {
	r.queue <- request{ev: ev}
}

// Sync blocks until every event queued before the call is recorded.
func (r *Recorder) Sync(ctx context.Context) error {
	done := make(chan struct{})
	select {
	case r.queue <- request{barrier: done}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) loop(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-r.queue:
			if req.barrier != nil {
				close(req.barrier)
				continue
			}
			if err := r.sink.Record(ctx, req.ev); err != nil {
				log.Printf("history: record %s failed: %v", req.ev.Op, err)
			}
		}
	}
}
