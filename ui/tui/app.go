package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"elementquiz/internal/history"
	"elementquiz/internal/output"
	"elementquiz/internal/quiz"
	"elementquiz/ui/tui/components"
	"elementquiz/ui/tui/state"
	"elementquiz/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// DebugEnv names the environment variable holding the debug log path.
const DebugEnv = "ELEMENTQUIZ_DEBUG"

const historyLimit = 20

// HistorySource is what the history page reads.
type HistorySource interface {
	Runs(ctx context.Context, limit int) ([]history.RunSummary, error)
	ElementAccuracy(ctx context.Context) ([]history.ElementAccuracy, error)
	CountRuns(ctx context.Context, status string) (int, error)
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	ctrl      *quiz.Controller
	hist      HistorySource
	state     state.AppState
	keys      keyMap
	help      help.Model
	input     textinput.Model
	spinner   spinner.Model
	chart     *components.ScoreChart
	tabCursor float64
	velocity  float64 // Physics velocity
	spring    harmonica.Spring
	quitting  bool
	width     int
	height    int
}

// Messages
type AnimateMsg time.Time
type HistoryLoadedMsg struct {
	Report output.Report
	At     time.Time
	Err    error
}

// InitialModel wraps ctrl. hist may be nil, which disables the history
// page.
func InitialModel(ctrl *quiz.Controller, hist HistorySource) *MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "Element name"
	ti.Prompt = "Answer: "
	ti.CharLimit = 32
	ti.Width = 20

	m := &MainModel{
		ctrl:    ctrl,
		hist:    hist,
		keys:    newKeyMap(),
		help:    help.New(),
		input:   ti,
		spinner: s,
		chart:   components.NewScoreChart(30, 8),
		// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
		spring: harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
		state: state.AppState{
			CurrentPage: state.PageQuiz,
		},
	}
	ctrl.Subscribe(m.observe)
	m.apply(ctrl.Directive())
	m.tabCursor = m.tabTarget()
	return m
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		animateCmd(),
		textinput.Blink,
	)
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func loadHistoryCmd(hist HistorySource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		runs, err := hist.Runs(ctx, historyLimit)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		acc, err := hist.ElementAccuracy(ctx)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		finished, err := hist.CountRuns(ctx, history.StatusFinished)
		if err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		return HistoryLoadedMsg{Report: output.BuildReport(runs, acc, finished), At: time.Now()}
	}
}

// observe catches the one-shot score signal, which only travels on
// transition events.
func (m *MainModel) observe(ev quiz.Event) {
	if ev.Directive.Score != nil {
		score := *ev.Directive.Score
		m.state.Score = &score
	}
	log.Printf("%s -> %s/%s %d/%d", ev.Op, ev.Directive.Mode, ev.Directive.Phase, ev.Directive.Position, ev.Directive.Total)
}

// apply renders d into the widgets: the answer field follows the
// directive's clear and focus instructions.
func (m *MainModel) apply(d quiz.Directive) tea.Cmd {
	m.state.Directive = d

	var cmd tea.Cmd
	if d.Input.Clear {
		m.input.Reset()
	}
	if d.Input.Focused {
		cmd = m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.updateKeys()
	return cmd
}

func (m *MainModel) updateKeys() {
	d := m.state.Directive
	onQuiz := m.state.CurrentPage == state.PageQuiz
	dialog := m.state.Score != nil
	active := onQuiz && !dialog

	m.keys.ToggleMode.SetEnabled(active)
	m.keys.Reveal.SetEnabled(active && d.Reveal.Visible && d.Reveal.Enabled)
	m.keys.Submit.SetEnabled(active && m.input.Focused())
	m.keys.Next.SetEnabled(active && d.Next.Visible && d.Next.Enabled)
	m.keys.Next.SetHelp("enter/→", strings.ToLower(d.Next.Label))
	m.keys.Dismiss.SetEnabled(dialog)
	m.keys.History.SetEnabled(active && m.hist != nil)
	m.keys.Back.SetEnabled(!onQuiz)

	// q is a letter while typing an answer.
	if m.input.Focused() {
		m.keys.Quit.SetKeys("ctrl+c")
		m.keys.Quit.SetHelp("ctrl+c", "quit")
	} else {
		m.keys.Quit.SetKeys("q", "ctrl+c")
		m.keys.Quit.SetHelp("q", "quit")
	}
}

func (m *MainModel) tabTarget() float64 {
	if m.state.Directive.Mode == quiz.ModeQuiz {
		return 1
	}
	return 0
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case HistoryLoadedMsg:
		return m.handleHistoryLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Cursor blink and friends.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		return m.dismissScore()

	case m.state.Score != nil:
		// Modal: only the dismiss keys work.
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.state.CurrentPage = state.PageQuiz
		m.updateKeys()
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.state.CurrentPage = state.PageHistory
		m.state.Loading = true
		m.updateKeys()
		return m, tea.Batch(m.spinner.Tick, loadHistoryCmd(m.hist))

	case m.state.CurrentPage != state.PageQuiz:
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		next := quiz.ModeQuiz
		if m.state.Directive.Mode == quiz.ModeQuiz {
			next = quiz.ModeFlashcard
		}
		return m.transition(func() bool { return m.ctrl.SetMode(next) })

	case key.Matches(msg, m.keys.Reveal):
		return m.transition(m.ctrl.RevealAnswer)

	case key.Matches(msg, m.keys.Submit):
		answer := m.input.Value()
		return m.transition(func() bool { return m.ctrl.SubmitAnswer(answer) })

	case key.Matches(msg, m.keys.Next):
		return m.transition(m.ctrl.Advance)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// transition runs a controller operation and re-renders if it applied.
func (m *MainModel) transition(op func() bool) (tea.Model, tea.Cmd) {
	if !op() {
		return m, nil
	}
	return m, m.apply(m.ctrl.Directive())
}

func (m *MainModel) dismissScore() (tea.Model, tea.Cmd) {
	m.state.Score = nil
	m.updateKeys()
	return m.transition(m.ctrl.AcknowledgeScore)
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.tabCursor, m.velocity = m.spring.Update(m.tabCursor, m.velocity, m.tabTarget())
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	newW := msg.Width/2 - 6
	if newW > 10 {
		m.chart.Resize(newW, 8)
	}
	return m, nil
}

func (m *MainModel) handleHistoryLoadedMsg(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	m.state.Loading = false
	m.state.Err = msg.Err
	if msg.Err != nil {
		log.Printf("history load failed: %v", msg.Err)
		return m, nil
	}
	m.state.Report = msg.Report
	m.state.LastUpdate = msg.At
	m.chart.SetTrend(msg.Report.Trend)
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	if m.state.Score != nil {
		if zone.Get(views.ZoneDialogOK).InBounds(msg) {
			return m.dismissScore()
		}
		return m, nil
	}
	if m.state.CurrentPage != state.PageQuiz {
		return m, nil
	}

	d := m.state.Directive
	switch {
	case zone.Get(views.ZoneTabFlashcard).InBounds(msg) && d.Mode != quiz.ModeFlashcard:
		return m.transition(func() bool { return m.ctrl.SetMode(quiz.ModeFlashcard) })
	case zone.Get(views.ZoneTabQuiz).InBounds(msg) && d.Mode != quiz.ModeQuiz:
		return m.transition(func() bool { return m.ctrl.SetMode(quiz.ModeQuiz) })
	case zone.Get(views.ZoneReveal).InBounds(msg):
		return m.transition(m.ctrl.RevealAnswer)
	case zone.Get(views.ZoneNext).InBounds(msg):
		return m.transition(m.ctrl.Advance)
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	props := views.ViewProps{
		Width:       m.width,
		Height:      m.height,
		TabCursor:   m.tabCursor,
		SpinnerView: m.spinner.View(),
		InputView:   m.input.View(),
		HelpView:    m.help.View(m.keys),
	}

	if m.state.CurrentPage == state.PageHistory {
		props.ChartView = m.chart.View()
	}
	return views.RenderPage(m.state, props)
}

// recordedHistory reads the store once the recorder has caught up, so
// the page includes the quiz that just finished.
type recordedHistory struct {
	store    *history.Store
	recorder *history.Recorder
}

func (h recordedHistory) Runs(ctx context.Context, limit int) ([]history.RunSummary, error) {
	if err := h.recorder.Sync(ctx); err != nil {
		return nil, err
	}
	return h.store.Runs(ctx, limit)
}

func (h recordedHistory) ElementAccuracy(ctx context.Context) ([]history.ElementAccuracy, error) {
	return h.store.ElementAccuracy(ctx)
}

func (h recordedHistory) CountRuns(ctx context.Context, status string) (int, error) {
	return h.store.CountRuns(ctx, status)
}

// Start runs the TUI until the user quits. store may be nil.
func Start(ctrl *quiz.Controller, store *history.Store) error {
	if path := os.Getenv(DebugEnv); path != "" {
		f, err := tea.LogToFile(path, "elementquiz")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// stderr belongs to the alt screen.
		log.SetOutput(io.Discard)
	}

	var (
		hist     HistorySource
		recorder *history.Recorder
	)
	if store != nil {
		rec, err := history.NewRecorder(store)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := rec.Start(ctx); err != nil {
			return err
		}
		ctrl.Subscribe(rec.Observe)
		recorder = rec
		hist = recordedHistory{store: store, recorder: rec}
	}

	m := InitialModel(ctrl, hist)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()

	if recorder != nil {
		recorder.Stop()
		if aerr := store.Abandon(context.Background()); aerr != nil {
			log.Printf("abandon unfinished quiz: %v", aerr)
		}
	}
	return err
}
