// Package output turns history records into UI-ready report sections.
// No printing happens here.
package output

import (
	"fmt"

	"elementquiz/internal/history"
)

// Section constants to avoid hardcoded strings
const (
	SectionRuns     = "runs"
	SectionElements = "elements"
	SectionTotals   = "totals"
)

// Ratings attached to items, mirroring the colour a renderer should use.
const (
	RatingGood = "GOOD"
	RatingFair = "FAIR"
	RatingPoor = "POOR"
)

type Item struct {
	Key    string
	Label  string
	Value  float64
	Unit   string
	Rating string
	Note   string
}

type Section struct {
	ID    string
	Title string
	Items []Item
}

// Report is the history page view model.
type Report struct {
	Sections     []Section
	RunsFinished int
	BestPercent  float64
	// Trend holds score percentages oldest first.
	Trend []float64
}

// RatingFor buckets a percentage.
func RatingFor(pct float64) string {
	switch {
	case pct >= 75:
		return RatingGood
	case pct >= 50:
		return RatingFair
	default:
		return RatingPoor
	}
}

// BuildReport converts finished runs (newest first, as history.Store
// returns them) and per-element accuracy into report sections. finished
// is the number of finished runs overall; runs may be only the newest of
// them, and are numbered counting down from finished.
func BuildReport(runs []history.RunSummary, accuracy []history.ElementAccuracy, finished int) Report {
	if finished < len(runs) {
		finished = len(runs)
	}

	runSec := Section{ID: SectionRuns, Title: "Recent Quizzes"}
	for i, r := range runs {
		pct := r.Percent()
		runSec.Items = append(runSec.Items, Item{
			Key:    r.RunID,
			Label:  fmt.Sprintf("Quiz #%d", finished-i),
			Value:  pct,
			Unit:   "%",
			Rating: RatingFor(pct),
			Note:   fmt.Sprintf("%d/%d at %s", r.Correct, r.Total, r.FinishedAt.Format("15:04:05")),
		})
	}

	elemSec := Section{ID: SectionElements, Title: "Element Accuracy"}
	for _, a := range accuracy {
		pct := a.Percent()
		elemSec.Items = append(elemSec.Items, Item{
			Key:    a.Element,
			Label:  a.Element,
			Value:  pct,
			Unit:   "%",
			Rating: RatingFor(pct),
			Note:   fmt.Sprintf("%d/%d", a.Correct, a.Attempts),
		})
	}

	rep := Report{RunsFinished: finished}
	var sum float64
	for i := len(runs) - 1; i >= 0; i-- {
		pct := runs[i].Percent()
		rep.Trend = append(rep.Trend, pct)
		sum += pct
		if pct > rep.BestPercent {
			rep.BestPercent = pct
		}
	}

	totals := Section{ID: SectionTotals, Title: "Totals"}
	totals.Items = append(totals.Items, Item{Key: "finished", Label: "Quizzes Finished", Value: float64(finished)})
	if len(runs) > 0 {
		avg := sum / float64(len(runs))
		totals.Items = append(totals.Items,
			Item{Key: "best", Label: "Best Score", Value: rep.BestPercent, Unit: "%", Rating: RatingFor(rep.BestPercent)},
			Item{Key: "average", Label: "Average Score", Value: avg, Unit: "%", Rating: RatingFor(avg)},
		)
	}

	rep.Sections = []Section{totals, runSec, elemSec}
	return rep
}

func (r Report) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByKey(key string) *Item {
	for i := range s.Items {
		if s.Items[i].Key == key {
			return &s.Items[i]
		}
	}
	return nil
}
