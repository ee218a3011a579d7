package views

import (
	"elementquiz/internal/quiz"
	"elementquiz/ui/tui/state"
	"elementquiz/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ScoreDialogView is the modal shown when a quiz ends.
type ScoreDialogView struct{}

func (v ScoreDialogView) Render(s state.AppState, props ViewProps) string {
	if s.Score == nil {
		return ""
	}

	ok := zone.Mark(ZoneDialogOK, styles.ButtonStyle.MarginRight(0).Render(quiz.ScoreDismissKey))
	box := styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(styles.BrandColor).Render(quiz.ScoreTitle),
		"",
		s.Score.Message(),
		"",
		ok,
	))

	return zone.Scan(lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(styles.Subtle),
	))
}
