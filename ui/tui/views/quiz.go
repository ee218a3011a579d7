package views

import (
	"fmt"
	"math"

	"elementquiz/internal/quiz"
	"elementquiz/ui/tui/components"
	"elementquiz/ui/tui/state"
	"elementquiz/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type QuizView struct{}

func (v QuizView) Render(s state.AppState, props ViewProps) string {
	d := s.Directive

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.HeaderStyle.Render("ELEMENT QUIZ"),
		"  ",
		renderTabs(props.TabCursor),
	)

	progress := lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).
		Render(fmt.Sprintf("%s %d of %d", d.Mode, d.Position, d.Total))

	tile := components.RenderTile(d.ImageKey, d.Name)

	body := []string{progress, tile, renderStatus(d)}
	if d.Input.Visible {
		body = append(body, props.InputView)
	}
	body = append(body, lipgloss.JoinHorizontal(lipgloss.Top,
		RenderButton(ZoneReveal, d.Reveal),
		RenderButton(ZoneNext, d.Next),
	))

	card := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, body...))

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		card,
		styles.FooterStyle.Render(props.HelpView),
	))
}

// renderTabs draws the mode selector. The highlight follows cursor, which
// springs between 0 (flashcard) and 1 (quiz).
func renderTabs(cursor float64) string {
	tabs := []struct {
		id, label string
	}{
		{ZoneTabFlashcard, "Flash Cards"},
		{ZoneTabQuiz, "Quiz"},
	}

	var out []string
	for i, tab := range tabs {
		strength := 1.0 - math.Abs(float64(i)-cursor)
		if strength < 0 {
			strength = 0
		}

		style := lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#AAA"))
		if strength > 0.5 {
			style = style.Bold(true).Foreground(lipgloss.Color("#FFF")).Background(styles.Highlight)
		}
		// Underline fades in with the highlight.
		if strength > 0.9 {
			style = style.Underline(true)
		}
		out = append(out, zone.Mark(tab.id, style.Render(tab.label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func renderStatus(d quiz.Directive) string {
	switch {
	case d.Status == "":
		return lipgloss.NewStyle().Foreground(styles.Subtle).Render("?")
	case d.Mode == quiz.ModeQuiz && d.Status == quiz.StatusCorrect:
		return styles.StatusStyle.Foreground(styles.Special).Render("✓ " + d.Status)
	case d.Mode == quiz.ModeQuiz:
		return styles.StatusStyle.Foreground(styles.Danger).Render(d.Status)
	default:
		return styles.StatusStyle.Render(d.Status)
	}
}
