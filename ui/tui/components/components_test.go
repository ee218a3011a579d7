package components

import (
	"strings"
	"testing"
)

func TestRenderTile(t *testing.T) {
	tests := []struct {
		name     string
		imageKey string
		reveal   string
		want     []string
		notWant  []string
	}{
		{"hidden", "Gold", "", []string{"Au", "79"}, []string{"Gold"}},
		{"revealed", "Gold", "Gold", []string{"Au", "Gold"}, nil},
		{"unknown", "Unobtainium", "", []string{"?"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderTile(tt.imageKey, tt.reveal)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("tile missing %q:\n%s", w, out)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(out, nw) {
					t.Errorf("tile should not contain %q:\n%s", nw, out)
				}
			}
		})
	}
}

func TestScoreChartTrend(t *testing.T) {
	c := NewScoreChart(30, 8)

	if out := c.View(); !strings.Contains(out, "Score Trend") {
		t.Errorf("expected title in empty chart, got:\n%s", out)
	}

	values := make([]float64, 25)
	for i := range values {
		values[i] = float64(i * 4)
	}
	c.SetTrend(values)

	if len(c.History) != maxTrendPoints {
		t.Fatalf("expected %d points, got %d", maxTrendPoints, len(c.History))
	}
	if c.History[len(c.History)-1] != 96 {
		t.Errorf("expected latest point 96, got %f", c.History[len(c.History)-1])
	}
	if out := c.View(); !strings.Contains(out, "latest 96%") {
		t.Errorf("expected latest score in title, got:\n%s", out)
	}

	c.SetTrend([]float64{50})
	if len(c.History) != 1 {
		t.Errorf("expected 1 point, got %d", len(c.History))
	}
	_ = c.View()
}
