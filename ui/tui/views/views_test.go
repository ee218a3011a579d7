package views

import (
	"os"
	"strings"
	"testing"

	"elementquiz/internal/catalog"
	"elementquiz/internal/quiz"
	"elementquiz/ui/tui/state"

	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestViewFor(t *testing.T) {
	score := &quiz.ScoreSummary{Correct: 2, Total: 4}

	tests := []struct {
		name string
		s    state.AppState
		want View
	}{
		{"quiz page", state.AppState{CurrentPage: state.PageQuiz}, QuizView{}},
		{"history page", state.AppState{CurrentPage: state.PageHistory}, HistoryView{}},
		{"score dialog", state.AppState{CurrentPage: state.PageQuiz, Score: score}, ScoreDialogView{}},
		{"unknown page", state.AppState{CurrentPage: state.Page(99)}, QuizView{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViewFor(tt.s); got != tt.want {
				t.Errorf("ViewFor() = %T; want %T", got, tt.want)
			}
		})
	}
}

func TestRenderPage(t *testing.T) {
	d := quiz.Render(quiz.ModeFlashcard, quiz.Session{Order: catalog.Elements(), Phase: quiz.PhaseQuestion})
	props := ViewProps{Width: 80, Height: 24, HelpView: "tab switch mode"}

	tests := []struct {
		name string
		s    state.AppState
		want []string
	}{
		{"quiz", state.AppState{Directive: d}, []string{"ELEMENT QUIZ", "Show Answer", "Next Element"}},
		{"dialog", state.AppState{Directive: d, Score: &quiz.ScoreSummary{Correct: 2, Total: 4}}, []string{quiz.ScoreTitle, "Your score is 2 out of 4", quiz.ScoreDismissKey}},
		{"history", state.AppState{CurrentPage: state.PageHistory, Loading: true}, []string{"Quiz History", "Loading history"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderPage(tt.s, props)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("RenderPage missing %q:\n%s", w, out)
				}
			}
		})
	}
}
