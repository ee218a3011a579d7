package components

import (
	"fmt"

	"elementquiz/internal/catalog"
	"elementquiz/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// RenderTile draws the periodic-table tile for an image key. name is
// printed under the symbol when non-empty; an unknown key draws a
// placeholder tile.
func RenderTile(imageKey, name string) string {
	item, ok := catalog.Lookup(imageKey)
	if !ok {
		return styles.TileStyle.Render("\n?\n")
	}

	number := lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Render(fmt.Sprintf("%d", item.Number))
	symbol := lipgloss.NewStyle().Bold(true).Foreground(styles.BrandColor).Render(item.Symbol)

	label := "· · ·"
	if name != "" {
		label = lipgloss.NewStyle().Bold(true).Render(name)
	}

	return styles.TileStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(16, lipgloss.Left, number),
		"",
		symbol,
		"",
		label,
	))
}
