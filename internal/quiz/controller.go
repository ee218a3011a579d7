// Package quiz implements the flashcard/quiz state machine and the
// directive it hands to renderers.
package quiz

import (
	"elementquiz/internal/catalog"
)

// Session is the mutable state owned by a Controller.
type Session struct {
	Order             []catalog.Item
	Index             int
	Phase             Phase
	LastAnswerCorrect bool
	CorrectCount      int
}

// Op names a controller operation.
type Op string

const (
	OpSetMode     Op = "set_mode"
	OpReveal      Op = "reveal_answer"
	OpSubmit      Op = "submit_answer"
	OpAdvance     Op = "advance"
	OpAcknowledge Op = "acknowledge_score"
)

// Event is delivered to observers after every applied transition.
type Event struct {
	Op        Op
	Item      catalog.Item // item current before the transition
	Answer    string       // submitted text, OpSubmit only
	Correct   bool         // OpSubmit only
	Directive Directive    // directive produced by the transition
}

// Observer receives transition events synchronously.
type Observer func(Event)

// Controller is the sole authority over a Session. It is not safe for
// concurrent use; callers feed it one event at a time.
type Controller struct {
	catalog   []catalog.Item
	shuffler  Shuffler
	mode      Mode
	session   Session
	observers []Observer
}

// New returns a controller in (flashcard, question) on the first item.
func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	items := make([]catalog.Item, len(cfg.Catalog))
	copy(items, cfg.Catalog)

	c := &Controller{
		catalog:  items,
		shuffler: cfg.Shuffler,
	}
	c.setupFlashcards()
	return c, nil
}

// Subscribe registers an observer for applied transitions.
func (c *Controller) Subscribe(o Observer) {
	if o != nil {
		c.observers = append(c.observers, o)
	}
}

// Directive returns the directive for the current state. It never
// carries the one-shot score signal.
func (c *Controller) Directive() Directive {
	return Render(c.mode, c.session)
}

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Phase() Phase { return c.session.Phase }

func (c *Controller) Index() int { return c.session.Index }

func (c *Controller) CorrectCount() int { return c.session.CorrectCount }

func (c *Controller) LastAnswerCorrect() bool { return c.session.LastAnswerCorrect }

// CurrentItem returns the item at the current index of the active order.
func (c *Controller) CurrentItem() catalog.Item { return c.session.current() }

// Order returns a copy of the active order.
func (c *Controller) Order() []catalog.Item {
	out := make([]catalog.Item, len(c.session.Order))
	copy(out, c.session.Order)
	return out
}

// Catalog returns a copy of the fixed catalog.
func (c *Controller) Catalog() []catalog.Item {
	out := make([]catalog.Item, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// SetMode switches mode and starts a fresh cycle. Always applies.
func (c *Controller) SetMode(m Mode) bool {
	if m != ModeFlashcard && m != ModeQuiz {
		return false
	}
	prev := c.session.current()
	c.mode = m
	switch m {
	case ModeFlashcard:
		c.setupFlashcards()
	case ModeQuiz:
		c.setupQuiz()
	}
	c.emit(Event{Op: OpSetMode, Item: prev, Directive: c.Directive()})
	return true
}

// RevealAnswer shows the current flashcard's name.
func (c *Controller) RevealAnswer() bool {
	if c.mode != ModeFlashcard || c.session.Phase != PhaseQuestion {
		return false
	}
	c.session.Phase = PhaseAnswer
	c.emit(Event{Op: OpReveal, Item: c.session.current(), Directive: c.Directive()})
	return true
}

// SubmitAnswer grades text against the current quiz item.
func (c *Controller) SubmitAnswer(text string) bool {
	if c.mode != ModeQuiz || c.session.Phase != PhaseQuestion {
		return false
	}
	item := c.session.current()
	correct := item.Matches(text)
	c.session.LastAnswerCorrect = correct
	if correct {
		c.session.CorrectCount++
	}
	c.session.Phase = PhaseAnswer
	c.emit(Event{Op: OpSubmit, Item: item, Answer: text, Correct: correct, Directive: c.Directive()})
	return true
}

// Advance moves to the next item, wrapping at the end. Finishing a quiz
// enters the score phase and emits the score signal.
func (c *Controller) Advance() bool {
	switch {
	case c.mode == ModeQuiz && c.session.Phase != PhaseAnswer:
		return false
	case c.session.Phase == PhaseScore:
		return false
	}

	prev := c.session.current()
	var score *ScoreSummary
	if c.session.Index+1 < len(c.session.Order) {
		c.session.Index++
		c.session.Phase = PhaseQuestion
	} else {
		c.session.Index = 0
		if c.mode == ModeQuiz {
			c.session.Phase = PhaseScore
			score = &ScoreSummary{Correct: c.session.CorrectCount, Total: len(c.session.Order)}
		} else {
			c.session.Phase = PhaseQuestion
		}
	}

	d := c.Directive()
	d.Score = score
	c.emit(Event{Op: OpAdvance, Item: prev, Directive: d})
	return true
}

// AcknowledgeScore dismisses the score summary and returns to flashcards.
func (c *Controller) AcknowledgeScore() bool {
	if c.session.Phase != PhaseScore {
		return false
	}
	prev := c.session.current()
	c.mode = ModeFlashcard
	c.setupFlashcards()
	c.emit(Event{Op: OpAcknowledge, Item: prev, Directive: c.Directive()})
	return true
}

func (c *Controller) setupFlashcards() {
	order := make([]catalog.Item, len(c.catalog))
	copy(order, c.catalog)
	c.session.Order = order
	c.session.Index = 0
	c.session.Phase = PhaseQuestion
}

func (c *Controller) setupQuiz() {
	n := len(c.catalog)
	perm := c.shuffler.Permute(n)
	if !isPermutation(perm, n) {
		perm = identity(n)
	}
	order := make([]catalog.Item, n)
	for i, j := range perm {
		order[i] = c.catalog[j]
	}
	c.session.Order = order
	c.session.Index = 0
	c.session.Phase = PhaseQuestion
	c.session.LastAnswerCorrect = false
	c.session.CorrectCount = 0
}

func (c *Controller) emit(ev Event) {
	for _, o := range c.observers {
		o(ev)
	}
}
