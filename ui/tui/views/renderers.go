package views

import (
	"elementquiz/ui/tui/state"
)

var pages = map[state.Page]View{
	state.PageQuiz:    QuizView{},
	state.PageHistory: HistoryView{},
}

// ViewFor picks the view for s: the score dialog while one is open on
// the quiz page, otherwise the page's own view.
func ViewFor(s state.AppState) View {
	if s.Score != nil && s.CurrentPage == state.PageQuiz {
		return ScoreDialogView{}
	}
	if v, ok := pages[s.CurrentPage]; ok {
		return v
	}
	return QuizView{}
}

func RenderPage(s state.AppState, props ViewProps) string {
	return ViewFor(s).Render(s, props)
}
