package quiz

import (
	"testing"

	"elementquiz/internal/catalog"
)

func testSession(phase Phase, index int, correct bool) Session {
	return Session{
		Order:             catalog.Elements(),
		Index:             index,
		Phase:             phase,
		LastAnswerCorrect: correct,
	}
}

func TestRenderFlashcard(t *testing.T) {
	tests := []struct {
		name       string
		phase      Phase
		wantStatus string
		wantName   string
		wantReveal bool
	}{
		{"question", PhaseQuestion, "", "", true},
		{"answer", PhaseAnswer, "Gold", "Gold", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Render(ModeFlashcard, testSession(tt.phase, 1, false))

			if d.ImageKey != "Gold" {
				t.Errorf("ImageKey = %q; want Gold", d.ImageKey)
			}
			if d.Status != tt.wantStatus {
				t.Errorf("Status = %q; want %q", d.Status, tt.wantStatus)
			}
			if d.Name != tt.wantName {
				t.Errorf("Name = %q; want %q", d.Name, tt.wantName)
			}
			if !d.Reveal.Visible || d.Reveal.Enabled != tt.wantReveal {
				t.Errorf("Reveal = %+v; want visible, enabled=%v", d.Reveal, tt.wantReveal)
			}
			if d.Input.Visible {
				t.Error("Answer input must be hidden in flashcard mode")
			}
			if !d.Next.Enabled || d.Next.Label != LabelNextElement {
				t.Errorf("Next = %+v; want enabled %q", d.Next, LabelNextElement)
			}
		})
	}
}

func TestRenderQuiz(t *testing.T) {
	tests := []struct {
		name       string
		phase      Phase
		index      int
		correct    bool
		wantInput  InputControl
		wantNext   Control
		wantStatus string
	}{
		{
			name:       "question",
			phase:      PhaseQuestion,
			index:      0,
			wantInput:  InputControl{Visible: true, Enabled: true, Focused: true, Clear: true},
			wantNext:   Control{Visible: true, Enabled: false, Label: LabelNextQuestion},
			wantStatus: "",
		},
		{
			name:       "answer correct",
			phase:      PhaseAnswer,
			index:      0,
			correct:    true,
			wantInput:  InputControl{Visible: true},
			wantNext:   Control{Visible: true, Enabled: true, Label: LabelNextQuestion},
			wantStatus: StatusCorrect,
		},
		{
			name:       "answer wrong on last item",
			phase:      PhaseAnswer,
			index:      3,
			wantInput:  InputControl{Visible: true},
			wantNext:   Control{Visible: true, Enabled: true, Label: LabelShowScore},
			wantStatus: IncorrectStatus("Sodium"),
		},
		{
			name:       "question on last item",
			phase:      PhaseQuestion,
			index:      3,
			wantInput:  InputControl{Visible: true, Enabled: true, Focused: true, Clear: true},
			wantNext:   Control{Visible: true, Enabled: false, Label: LabelShowScore},
			wantStatus: "",
		},
		{
			name:       "score",
			phase:      PhaseScore,
			index:      0,
			wantInput:  InputControl{},
			wantNext:   Control{Visible: true, Enabled: false, Label: LabelNextQuestion},
			wantStatus: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Render(ModeQuiz, testSession(tt.phase, tt.index, tt.correct))

			if d.Input != tt.wantInput {
				t.Errorf("Input = %+v; want %+v", d.Input, tt.wantInput)
			}
			if d.Next != tt.wantNext {
				t.Errorf("Next = %+v; want %+v", d.Next, tt.wantNext)
			}
			if d.Status != tt.wantStatus {
				t.Errorf("Status = %q; want %q", d.Status, tt.wantStatus)
			}
			if d.Reveal.Visible {
				t.Error("Reveal control must be hidden in quiz mode")
			}
			if d.Name != "" {
				t.Errorf("Quiz mode must not reveal the name outright, got %q", d.Name)
			}
			if d.Score != nil {
				t.Error("Render must not attach the score signal")
			}
		})
	}
}

func TestRenderPosition(t *testing.T) {
	d := Render(ModeQuiz, testSession(PhaseQuestion, 2, false))
	if d.Position != 3 || d.Total != 4 {
		t.Errorf("Expected position 3/4, got %d/%d", d.Position, d.Total)
	}
}

func TestIncorrectStatusContainsName(t *testing.T) {
	if got := IncorrectStatus("Chlorine"); got != "✗ Correct Answer: Chlorine" {
		t.Errorf("IncorrectStatus() = %q", got)
	}
}
