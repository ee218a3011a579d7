package components

import (
	"fmt"

	"elementquiz/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

// maxTrendPoints bounds how many finished quizzes the chart plots.
const maxTrendPoints = 20

// ScoreChart plots quiz score percentages, oldest first.
type ScoreChart struct {
	Chart   linechart.Model
	History []float64
	Width   int
	Height  int
}

func NewScoreChart(width, height int) *ScoreChart {
	return &ScoreChart{
		Chart:   newChart(width, height, 0),
		History: make([]float64, 0, maxTrendPoints),
		Width:   width,
		Height:  height,
	}
}

// newChart builds a chart whose X axis spans n points; y is a percentage.
func newChart(width, height, n int) linechart.Model {
	maxX := float64(n - 1)
	if maxX < 1 {
		maxX = 1
	}
	return linechart.New(width, height, 0, maxX, 0, 100)
}

// SetTrend replaces the plotted scores, keeping the most recent ones.
func (c *ScoreChart) SetTrend(values []float64) {
	if len(values) > maxTrendPoints {
		values = values[len(values)-maxTrendPoints:]
	}
	c.History = append(c.History[:0], values...)
	c.Chart = newChart(c.Width, c.Height, len(c.History))
}

func (c *ScoreChart) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart = newChart(w, h, len(c.History))
}

func (c *ScoreChart) View() string {
	c.Chart.Clear()
	switch len(c.History) {
	case 0:
	case 1:
		// A single quiz is drawn as a flat line.
		p := canvas.Float64Point{X: 0, Y: c.History[0]}
		c.Chart.DrawBrailleLine(p, canvas.Float64Point{X: 1, Y: c.History[0]})
	default:
		for i := 0; i < len(c.History)-1; i++ {
			c.Chart.DrawBrailleLine(
				canvas.Float64Point{X: float64(i), Y: c.History[i]},
				canvas.Float64Point{X: float64(i + 1), Y: c.History[i+1]},
			)
		}
	}
	c.Chart.DrawXYAxisAndLabel()

	title := "Score Trend"
	if n := len(c.History); n > 0 {
		title = fmt.Sprintf("Score Trend (last %d, latest %.0f%%)", n, c.History[n-1])
	}
	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(title),
			c.Chart.View(),
		),
	)
}
