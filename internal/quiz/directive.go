package quiz

import (
	"fmt"

	"elementquiz/internal/catalog"
)

// Control labels and messages shown by renderers.
const (
	LabelShowAnswer   = "Show Answer"
	LabelNextElement  = "Next Element"
	LabelNextQuestion = "Next Question"
	LabelShowScore    = "Show Score"

	StatusCorrect   = "Correct!"
	ScoreTitle      = "Quiz Score"
	ScoreDismissKey = "OK"
)

// Control describes a button-like affordance.
type Control struct {
	Visible bool
	Enabled bool
	Label   string
}

// InputControl describes the answer text field. Clear and Focused are
// instructions for the renderer on entering the phase.
type InputControl struct {
	Visible bool
	Enabled bool
	Focused bool
	Clear   bool
}

// ScoreSummary is the one-shot "present score summary" signal.
type ScoreSummary struct {
	Correct int
	Total   int
}

// Message is the text the score dialog presents.
func (s ScoreSummary) Message() string {
	return fmt.Sprintf("Your score is %d out of %d", s.Correct, s.Total)
}

// Directive describes what the rendering layer should display.
type Directive struct {
	Mode     Mode
	Phase    Phase
	ImageKey string
	// Name is the item name when the renderer may show it outright,
	// which only happens in the flashcard answer phase.
	Name     string
	Position int // 1-based position within the active order
	Total    int

	Reveal Control
	Input  InputControl
	Next   Control
	Status string

	// Score is non-nil only on the directive emitted by the transition
	// into the score phase.
	Score *ScoreSummary
}

// IncorrectStatus is the answer-phase status for a wrong quiz answer.
func IncorrectStatus(name string) string {
	return "✗ Correct Answer: " + name
}

// Render maps a snapshot of controller state to a Directive. It is pure;
// the one-shot score signal is attached by the controller, not here.
func Render(mode Mode, s Session) Directive {
	item := s.current()
	last := s.Index == len(s.Order)-1

	d := Directive{
		Mode:     mode,
		Phase:    s.Phase,
		ImageKey: item.ImageKey,
		Position: s.Index + 1,
		Total:    len(s.Order),
	}

	switch mode {
	case ModeFlashcard:
		d.Reveal = Control{Visible: true, Enabled: s.Phase == PhaseQuestion, Label: LabelShowAnswer}
		d.Next = Control{Visible: true, Enabled: true, Label: LabelNextElement}
		if s.Phase == PhaseAnswer {
			d.Name = item.Name
			d.Status = item.Name
		}

	case ModeQuiz:
		label := LabelNextQuestion
		if last {
			label = LabelShowScore
		}
		d.Next = Control{Visible: true, Enabled: s.Phase == PhaseAnswer, Label: label}

		switch s.Phase {
		case PhaseQuestion:
			d.Input = InputControl{Visible: true, Enabled: true, Focused: true, Clear: true}
		case PhaseAnswer:
			d.Input = InputControl{Visible: true}
			if s.LastAnswerCorrect {
				d.Status = StatusCorrect
			} else {
				d.Status = IncorrectStatus(item.Name)
			}
		case PhaseScore:
			// input hidden, status empty
		}
	}

	return d
}

func (s Session) current() catalog.Item {
	if s.Index < 0 || s.Index >= len(s.Order) {
		return catalog.Item{}
	}
	return s.Order[s.Index]
}
