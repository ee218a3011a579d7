package quiz

import (
	"fmt"
	"strings"
)

// Mode is the top-level operating mode.
type Mode int

const (
	ModeFlashcard Mode = iota // self-study, fixed order, no scoring
	ModeQuiz                  // shuffled, scored
)

func (m Mode) String() string {
	switch m {
	case ModeFlashcard:
		return "flashcard"
	case ModeQuiz:
		return "quiz"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the String form of a mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "flashcard", "flashcards", "flash":
		return ModeFlashcard, nil
	case "quiz":
		return ModeQuiz, nil
	}
	return 0, fmt.Errorf("unknown mode %q (must be 'flashcard' or 'quiz')", s)
}

// Phase is the sub-state within a mode cycle.
type Phase int

const (
	PhaseQuestion Phase = iota
	PhaseAnswer
	PhaseScore
)

func (p Phase) String() string {
	switch p {
	case PhaseQuestion:
		return "question"
	case PhaseAnswer:
		return "answer"
	case PhaseScore:
		return "score"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
