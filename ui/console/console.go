package console

import (
	"fmt"
	"io"
	"strings"

	"elementquiz/internal/catalog"
	"elementquiz/internal/output"
	"elementquiz/internal/quiz"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print renders the history report in a compact format.
func Print(w io.Writer, rep output.Report) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "QUIZ HISTORY", colorReset)

	for _, sec := range rep.Sections {
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)
		if len(sec.Items) == 0 {
			fmt.Fprintf(w, "  (none yet)\n")
			continue
		}

		for _, it := range sec.Items {
			label := it.Label
			if len(label) > 20 {
				label = label[:17] + "..."
			}

			valStr := fmt.Sprintf("%.0f%s", it.Value, it.Unit)

			marker := ""
			if it.Rating != "" {
				marker = fmt.Sprintf(" %s%s%s", colorFor(it.Rating), markFor(it.Rating), colorReset)
			}
			note := ""
			if it.Note != "" {
				note = "  " + it.Note
			}

			dots := strings.Repeat("·", 22-len(label))
			fmt.Fprintf(w, "  %s%s %6s%s%s\n", label, colorCyan+dots+colorReset, valStr, marker, note)
		}
	}
	fmt.Fprintln(w)
}

// PrintDirective renders one directive as a few lines of text.
func PrintDirective(w io.Writer, d quiz.Directive) {
	tile := d.ImageKey
	if it, ok := catalog.Lookup(d.ImageKey); ok {
		tile = fmt.Sprintf("[%d %s]", it.Number, it.Symbol)
	}

	fmt.Fprintf(w, "%s─ %s %d/%d%s  %s\n", colorCyan, strings.ToUpper(d.Mode.String()), d.Position, d.Total, colorReset, tile)

	switch {
	case d.Status == quiz.StatusCorrect:
		fmt.Fprintf(w, "  %s%s%s\n", colorGreen, d.Status, colorReset)
	case d.Status != "" && d.Mode == quiz.ModeQuiz:
		fmt.Fprintf(w, "  %s%s%s\n", colorRed, d.Status, colorReset)
	case d.Status != "":
		fmt.Fprintf(w, "  %s\n", d.Status)
	case d.Mode == quiz.ModeFlashcard:
		fmt.Fprintf(w, "  ?\n")
	}

	var actions []string
	if d.Reveal.Visible && d.Reveal.Enabled {
		actions = append(actions, "show")
	}
	if d.Input.Visible && d.Input.Enabled {
		actions = append(actions, "<answer>")
	}
	if d.Next.Visible && d.Next.Enabled {
		actions = append(actions, fmt.Sprintf("next (%s)", d.Next.Label))
	}
	if len(actions) > 0 {
		fmt.Fprintf(w, "  %s> %s%s\n", colorYellow, strings.Join(actions, " | "), colorReset)
	}
}

func colorFor(rating string) string {
	switch rating {
	case output.RatingFair:
		return colorYellow
	case output.RatingPoor:
		return colorRed
	default:
		return colorGreen
	}
}

func markFor(rating string) string {
	switch rating {
	case output.RatingFair:
		return "!"
	case output.RatingPoor:
		return "X"
	default:
		return "✓"
	}
}
