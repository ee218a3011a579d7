package history

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"elementquiz/internal/quiz"
)

type mockSink struct {
	mu  sync.Mutex
	ops []quiz.Op
	err error
}

func (m *mockSink) Record(ctx context.Context, ev quiz.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = append(m.ops, ev.Op)
	return m.err
}

func (m *mockSink) recorded() []quiz.Op {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]quiz.Op, len(m.ops))
	copy(out, m.ops)
	return out
}

func TestNewRecorderRequiresSink(t *testing.T) {
	if _, err := NewRecorder(nil); err == nil {
		t.Error("Expected error for nil sink")
	}
}

func TestRecorderPreservesOrder(t *testing.T) {
	sink := &mockSink{}
	rec, err := NewRecorder(sink)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer rec.Stop()

	want := []quiz.Op{quiz.OpSetMode, quiz.OpSubmit, quiz.OpAdvance, quiz.OpSubmit, quiz.OpAdvance}
	for _, op := range want {
		rec.Observe(quiz.Event{Op: op})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rec.Sync(ctx); err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}

	got := sink.recorded()
	if len(got) != len(want) {
		t.Fatalf("Expected %d recorded events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %s; want %s", i, got[i], want[i])
		}
	}
}

func TestRecorderKeepsGoingAfterSinkError(t *testing.T) {
	sink := &mockSink{err: errors.New("boom")}
	rec, _ := NewRecorder(sink)
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	rec.Observe(quiz.Event{Op: quiz.OpSubmit})
	rec.Observe(quiz.Event{Op: quiz.OpAdvance})
	rec.Stop()

	if n := len(sink.recorded()); n != 2 {
		t.Errorf("Expected both events attempted, got %d", n)
	}
}

func TestRecorderDoubleStart(t *testing.T) {
	rec, _ := NewRecorder(&mockSink{})
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer rec.Stop()

	if err := rec.Start(context.Background()); err == nil {
		t.Error("Expected second Start() to fail")
	}
}

func TestRecorderStopIsIdempotent(t *testing.T) {
	rec, _ := NewRecorder(&mockSink{})
	rec.Stop()
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	rec.Stop()
	rec.Stop()
}

func TestRecorderWithStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rec, _ := NewRecorder(store)
	if err := rec.Start(ctx); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer rec.Stop()

	c, err := quiz.New(quiz.DefaultConfig().WithSeed(5))
	if err != nil {
		t.Fatalf("quiz.New() failed: %v", err)
	}
	c.Subscribe(rec.Observe)

	c.SetMode(quiz.ModeQuiz)
	for c.Phase() != quiz.PhaseScore {
		c.SubmitAnswer(c.CurrentItem().Name)
		c.Advance()
	}

	if err := rec.Sync(ctx); err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}
	runs, err := store.Runs(ctx, 5)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Correct != 4 {
		t.Errorf("Expected one perfect run, got %+v", runs)
	}
}
