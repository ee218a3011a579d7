// Package console is a line-oriented front end for the quiz controller.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"elementquiz/internal/history"
	"elementquiz/internal/output"
	"elementquiz/internal/quiz"
)

// HistorySource provides the data behind the "history" command.
type HistorySource interface {
	Runs(ctx context.Context, limit int) ([]history.RunSummary, error)
	ElementAccuracy(ctx context.Context) ([]history.ElementAccuracy, error)
	CountRuns(ctx context.Context, status string) (int, error)
}

const helpText = `Commands:
  flash           switch to flash cards
  quiz            start a new quiz
  show            reveal the flash card
  next            next card / question
  answer <text>   answer the current question (bare text works too)
  history         show scores from this session
  help            show this help
  quit            exit
`

// Run reads commands from r until EOF or "quit", printing every
// directive the controller produces to w. The score summary is shown
// as a banner and acknowledged straight away. hist may be nil.
func Run(ctx context.Context, r io.Reader, w io.Writer, c *quiz.Controller, hist HistorySource) error {
	var pending []quiz.Directive
	c.Subscribe(func(ev quiz.Event) {
		pending = append(pending, ev.Directive)
	})

	fmt.Fprintf(w, "%s■ ELEMENT QUIZ%s (type 'help' for commands)\n", colorCyan, colorReset)
	PrintDirective(w, c.Directive())

	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		cmd, arg := splitCommand(line)

		applied := true
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(w, helpText)
			continue
		case "history":
			if err := printHistory(ctx, w, hist); err != nil {
				fmt.Fprintf(w, "history unavailable: %v\n", err)
			}
			continue
		case "flash", "flashcard", "flashcards":
			applied = c.SetMode(quiz.ModeFlashcard)
		case "quiz":
			applied = c.SetMode(quiz.ModeQuiz)
		case "show", "reveal":
			applied = c.RevealAnswer()
		case "next":
			applied = c.Advance()
		case "answer":
			applied = c.SubmitAnswer(arg)
		default:
			// Bare text answers the question. The raw line is kept so
			// case is the only normalisation applied.
			if c.Mode() == quiz.ModeQuiz && c.Phase() == quiz.PhaseQuestion {
				applied = c.SubmitAnswer(line)
			} else {
				fmt.Fprintf(w, "unknown command %q (type 'help')\n", cmd)
				continue
			}
		}

		if !applied {
			fmt.Fprintf(w, "  %snot available right now%s\n", colorYellow, colorReset)
		}
		for len(pending) > 0 {
			d := pending[0]
			pending = pending[1:]
			PrintDirective(w, d)
			if d.Score != nil {
				fmt.Fprintf(w, "%s┌ %s%s\n%s└ %s%s\n", colorCyan, quiz.ScoreTitle, colorReset, colorCyan, d.Score.Message(), colorReset)
				c.AcknowledgeScore()
			}
		}
	}
	return scanner.Err()
}

func printHistory(ctx context.Context, w io.Writer, hist HistorySource) error {
	if hist == nil {
		return fmt.Errorf("no history store")
	}
	runs, err := hist.Runs(ctx, 10)
	if err != nil {
		return err
	}
	acc, err := hist.ElementAccuracy(ctx)
	if err != nil {
		return err
	}
	finished, err := hist.CountRuns(ctx, history.StatusFinished)
	if err != nil {
		return err
	}
	Print(w, output.BuildReport(runs, acc, finished))
	return nil
}

// splitCommand separates the command word from its argument. Only the
// single space after the command is consumed; the argument is otherwise
// passed on verbatim so answers are graded exactly as typed.
func splitCommand(line string) (cmd, arg string) {
	cmd, arg, _ = strings.Cut(strings.TrimLeft(line, " \t"), " ")
	return strings.TrimSpace(cmd), arg
}
