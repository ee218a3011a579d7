package state

import (
	"time"

	"elementquiz/internal/output"
	"elementquiz/internal/quiz"
)

type Page int

const (
	PageQuiz    Page = iota
	PageHistory      // finished quizzes and per-element accuracy
)

// AppState holds what the pages render. Directive is the controller's
// latest output; Score is set while the score dialog is open.
type AppState struct {
	Directive   quiz.Directive
	Score       *quiz.ScoreSummary
	Report      output.Report
	LastUpdate  time.Time
	Loading     bool
	Err         error
	CurrentPage Page
}
