package mcpserver

import (
	"context"
	"testing"

	"elementquiz/internal/history"
	"elementquiz/internal/quiz"
)

func newTestServer(t *testing.T, withHistory bool) *Server {
	t.Helper()
	// Order: Sodium, Gold, Carbon, Chlorine.
	ctrl, err := quiz.New(quiz.DefaultConfig().WithShuffler(&quiz.FixedShuffler{Perms: [][]int{{3, 1, 0, 2}}}))
	if err != nil {
		t.Fatalf("quiz.New() failed: %v", err)
	}

	var store *history.Store
	if withHistory {
		var client *history.DuckDBClient
		store, client, err = history.Open(context.Background())
		if err != nil {
			t.Fatalf("history.Open() failed: %v", err)
		}
		t.Cleanup(func() { client.Close() })
	}

	s, err := NewServer(DefaultConfig(), ctrl, store)
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	return s
}

func TestNewServerRequiresController(t *testing.T) {
	if _, err := NewServer(DefaultConfig(), nil, nil); err == nil {
		t.Error("Expected error for nil controller")
	}
}

func TestHandleGetDirective_Initial(t *testing.T) {
	s := newTestServer(t, false)

	_, d, err := s.handleGetDirective(context.Background(), nil, NoArgs{})
	if err != nil {
		t.Fatalf("handleGetDirective failed: %v", err)
	}
	if d.Mode != "flashcard" || d.Phase != "question" || d.ImageKey != "Carbon" {
		t.Errorf("Unexpected initial directive %+v", d)
	}
	if !d.RevealVisible || d.InputVisible || d.NextLabel != quiz.LabelNextElement {
		t.Errorf("Unexpected flashcard controls %+v", d)
	}
}

func TestHandleSetMode_Invalid(t *testing.T) {
	s := newTestServer(t, false)

	_, _, err := s.handleSetMode(context.Background(), nil, SetModeArgs{Mode: "exam"})
	if err == nil {
		t.Error("Expected error for invalid mode")
	}
}

func TestHandleRevealAnswer(t *testing.T) {
	s := newTestServer(t, false)
	ctx := context.Background()

	_, res, err := s.handleRevealAnswer(ctx, nil, NoArgs{})
	if err != nil {
		t.Fatalf("handleRevealAnswer failed: %v", err)
	}
	if !res.Applied || res.Directive.Status != "Carbon" || res.Directive.Name != "Carbon" {
		t.Errorf("Unexpected reveal result %+v", res)
	}

	_, res, _ = s.handleRevealAnswer(ctx, nil, NoArgs{})
	if res.Applied {
		t.Error("Second reveal should not apply")
	}
}

func TestFullQuizOverTools(t *testing.T) {
	s := newTestServer(t, true)
	ctx := context.Background()

	_, res, err := s.handleSetMode(ctx, nil, SetModeArgs{Mode: "quiz"})
	if err != nil {
		t.Fatalf("handleSetMode failed: %v", err)
	}
	if !res.Applied || res.Directive.ImageKey != "Sodium" || !res.Directive.InputEnabled {
		t.Fatalf("Unexpected quiz start %+v", res)
	}

	// Advancing before answering is not available.
	if _, res, _ = s.handleAdvance(ctx, nil, NoArgs{}); res.Applied {
		t.Error("Advance should not apply in question phase")
	}

	answers := []string{"sodium", "Silver", "CARBON", "chlorine"}
	var final TransitionResult
	for i, a := range answers {
		_, res, err = s.handleSubmitAnswer(ctx, nil, SubmitAnswerArgs{Answer: a})
		if err != nil {
			t.Fatalf("handleSubmitAnswer failed: %v", err)
		}
		if !res.Applied || res.Directive.Phase != "answer" {
			t.Fatalf("Answer %d not applied: %+v", i, res)
		}
		if i == 1 && res.Directive.Status != quiz.IncorrectStatus("Gold") {
			t.Errorf("Expected failure status for Gold, got %q", res.Directive.Status)
		}
		_, final, err = s.handleAdvance(ctx, nil, NoArgs{})
		if err != nil {
			t.Fatalf("handleAdvance failed: %v", err)
		}
	}

	if final.Directive.Phase != "score" || final.Directive.Score == nil {
		t.Fatalf("Expected score signal, got %+v", final.Directive)
	}
	if final.Directive.Score.Message != "Your score is 3 out of 4" || final.Directive.Score.Title != quiz.ScoreTitle {
		t.Errorf("Unexpected score view %+v", final.Directive.Score)
	}

	// The signal is one-shot.
	_, d, _ := s.handleGetDirective(ctx, nil, NoArgs{})
	if d.Score != nil {
		t.Error("get_directive must not repeat the score signal")
	}

	_, res, _ = s.handleAcknowledgeScore(ctx, nil, NoArgs{})
	if !res.Applied || res.Directive.Mode != "flashcard" || res.Directive.Position != 1 {
		t.Errorf("Unexpected acknowledge result %+v", res)
	}

	_, hist, err := s.handleGetHistory(ctx, nil, HistoryArgs{})
	if err != nil {
		t.Fatalf("handleGetHistory failed: %v", err)
	}
	if len(hist.Runs) != 1 || hist.Runs[0].Correct != 3 || hist.Runs[0].Percent != 75 {
		t.Errorf("Unexpected history runs %+v", hist.Runs)
	}
	if len(hist.Accuracy) != 4 || hist.Best != 75 {
		t.Errorf("Unexpected history accuracy %+v (best %.1f)", hist.Accuracy, hist.Best)
	}
}

func TestHandleGetHistory_Disabled(t *testing.T) {
	s := newTestServer(t, false)

	_, _, err := s.handleGetHistory(context.Background(), nil, HistoryArgs{})
	if err == nil {
		t.Error("Expected error when history is disabled")
	}
}

func TestCloseAbandonsActiveRun(t *testing.T) {
	s := newTestServer(t, true)
	ctx := context.Background()

	s.handleSetMode(ctx, nil, SetModeArgs{Mode: "quiz"})
	if _, ok := s.store.ActiveRun(); !ok {
		t.Fatal("Expected an active run")
	}

	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if n, _ := s.store.CountRuns(ctx, history.StatusAbandoned); n != 1 {
		t.Errorf("Expected 1 abandoned run, got %d", n)
	}
}

func TestToViewWithoutScore(t *testing.T) {
	v := ToView(quiz.Directive{Mode: quiz.ModeQuiz, Phase: quiz.PhaseAnswer})
	if v.Mode != "quiz" || v.Phase != "answer" || v.Score != nil {
		t.Errorf("Unexpected view %+v", v)
	}
}
