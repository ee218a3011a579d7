package views

import (
	"fmt"
	"strings"

	"elementquiz/internal/output"
	"elementquiz/ui/tui/state"
	"elementquiz/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type HistoryView struct{}

func (v HistoryView) Render(s state.AppState, props ViewProps) string {
	title := "Quiz History"
	if !s.LastUpdate.IsZero() {
		title += fmt.Sprintf(" • %s", s.LastUpdate.Format("15:04:05"))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		styles.HeaderStyle.Render("ELEMENT QUIZ"),
		styles.TitleStyle.Render(title),
	)

	var body string
	switch {
	case s.Loading:
		body = lipgloss.NewStyle().Padding(1, 2).Render(props.SpinnerView + " Loading history...")
	case s.Err != nil:
		body = lipgloss.NewStyle().Padding(1, 2).Foreground(styles.Danger).Render(fmt.Sprintf("Error: %v", s.Err))
	default:
		var cols []string
		for _, sec := range s.Report.Sections {
			cols = append(cols, renderSection(sec))
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cols...),
			props.ChartView,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		styles.FooterStyle.Render(props.HelpView),
	)
}

func renderSection(sec output.Section) string {
	var b strings.Builder
	if len(sec.Items) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666")).Render("(none yet)"))
	}
	for i, item := range sec.Items {
		valStr := fmt.Sprintf("%.0f%s", item.Value, item.Unit)
		if item.Rating != "" {
			valStr = ColorForRating(item.Rating).Render(valStr)
		}
		fmt.Fprintf(&b, "%-16s : %s", item.Label, valStr)
		if item.Note != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Render("  " + item.Note))
		}
		if i < len(sec.Items)-1 {
			b.WriteString("\n")
		}
	}

	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(sec.Title),
		b.String(),
	))
}
