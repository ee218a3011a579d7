package views

import (
	"elementquiz/internal/output"
	"elementquiz/internal/quiz"
	"elementquiz/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Clickable zone IDs.
const (
	ZoneTabFlashcard = "tab_flashcard"
	ZoneTabQuiz      = "tab_quiz"
	ZoneReveal       = "btn_reveal"
	ZoneNext         = "btn_next"
	ZoneDialogOK     = "dialog_ok"
)

func ColorForRating(rating string) lipgloss.Style {
	sStyle := styles.StatusStyle
	switch rating {
	case output.RatingFair:
		return sStyle.Foreground(lipgloss.Color("220")) // Gold
	case output.RatingPoor:
		return sStyle.Foreground(lipgloss.Color("196")) // Red
	case output.RatingGood:
		return sStyle.Foreground(lipgloss.Color("46")) // Green
	}
	return sStyle
}

// RenderButton draws a control, or nothing when it is hidden. Disabled
// controls are drawn greyed out and are not clickable.
func RenderButton(id string, c quiz.Control) string {
	if !c.Visible {
		return ""
	}
	if !c.Enabled {
		return styles.DisabledButtonStyle.Render(c.Label)
	}
	return zone.Mark(id, styles.ButtonStyle.Render(c.Label))
}
