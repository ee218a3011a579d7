// Package mcpserver exposes the quiz controller as Model Context Protocol
// tools, letting an MCP client act as the rendering collaborator.
package mcpserver

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"elementquiz/internal/history"
	"elementquiz/internal/output"
	"elementquiz/internal/quiz"
)

// Server wraps the MCP server around a single quiz controller.
type Server struct {
	mcpServer *mcp.Server
	store     *history.Store

	// mu serialises tool calls so the controller sees one event at a time.
	mu     sync.Mutex
	ctrl   *quiz.Controller
	events []quiz.Event
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// DefaultConfig returns the server identity advertised to clients.
func DefaultConfig() Config {
	return Config{
		ServerName:    "elementquiz",
		ServerVersion: "1.0.0",
	}
}

// NewServer creates a new MCP server driving ctrl. store may be nil, in
// which case get_history reports an error.
func NewServer(cfg Config, ctrl *quiz.Controller, store *history.Store) (*Server, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("controller is required")
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		store:     store,
		ctrl:      ctrl,
	}
	ctrl.Subscribe(func(ev quiz.Event) {
		s.events = append(s.events, ev)
	})

	s.registerTools()
	return s, nil
}

// DirectiveView is the JSON form of quiz.Directive.
type DirectiveView struct {
	Mode     string `json:"mode" jsonschema:"flashcard or quiz"`
	Phase    string `json:"phase" jsonschema:"question, answer or score"`
	ImageKey string `json:"image_key" jsonschema:"image to display for the current element"`
	Name     string `json:"name,omitempty" jsonschema:"element name, only when it may be shown"`
	Position int    `json:"position" jsonschema:"1-based position in the current deck"`
	Total    int    `json:"total" jsonschema:"number of elements in the deck"`
	Status   string `json:"status,omitempty" jsonschema:"status text below the image"`

	RevealVisible bool   `json:"reveal_visible"`
	RevealEnabled bool   `json:"reveal_enabled"`
	InputVisible  bool   `json:"input_visible"`
	InputEnabled  bool   `json:"input_enabled"`
	NextEnabled   bool   `json:"next_enabled"`
	NextLabel     string `json:"next_label"`

	Score *ScoreView `json:"score,omitempty" jsonschema:"present once when a quiz finishes; call acknowledge_score after showing it"`
}

// ScoreView is the JSON form of quiz.ScoreSummary.
type ScoreView struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

// ToView converts a directive to its JSON form.
func ToView(d quiz.Directive) DirectiveView {
	v := DirectiveView{
		Mode:          d.Mode.String(),
		Phase:         d.Phase.String(),
		ImageKey:      d.ImageKey,
		Name:          d.Name,
		Position:      d.Position,
		Total:         d.Total,
		Status:        d.Status,
		RevealVisible: d.Reveal.Visible,
		RevealEnabled: d.Reveal.Enabled,
		InputVisible:  d.Input.Visible,
		InputEnabled:  d.Input.Enabled,
		NextEnabled:   d.Next.Enabled,
		NextLabel:     d.Next.Label,
	}
	if d.Score != nil {
		v.Score = &ScoreView{
			Title:   quiz.ScoreTitle,
			Message: d.Score.Message(),
			Correct: d.Score.Correct,
			Total:   d.Score.Total,
		}
	}
	return v
}

// NoArgs is the input of tools that take no arguments.
type NoArgs struct{}

// TransitionResult is returned by every state-changing tool.
type TransitionResult struct {
	Applied   bool          `json:"applied" jsonschema:"false when the action was not available in the current state"`
	Directive DirectiveView `json:"directive"`
}

// SetModeArgs defines the input for set_mode tool.
type SetModeArgs struct {
	Mode string `json:"mode" jsonschema:"flashcard or quiz"`
}

// SubmitAnswerArgs defines the input for submit_answer tool.
type SubmitAnswerArgs struct {
	Answer string `json:"answer" jsonschema:"the element name typed by the user"`
}

// HistoryArgs defines the input for get_history tool.
type HistoryArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of finished quizzes to return"`
}

// RunView is one finished quiz.
type RunView struct {
	RunID      string  `json:"run_id"`
	FinishedAt string  `json:"finished_at" jsonschema:"RFC 3339 timestamp"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percent    float64 `json:"percent"`
}

// AccuracyView is the answer record for one element.
type AccuracyView struct {
	Element  string  `json:"element"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Percent  float64 `json:"percent"`
}

// HistoryResult wraps the session's quiz history.
type HistoryResult struct {
	Runs     []RunView      `json:"runs"`
	Accuracy []AccuracyView `json:"accuracy"`
	Best     float64        `json:"best_percent"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_directive",
		Description: "Describe what the quiz screen currently shows: element image key, status text and which controls are available.",
	}, s.handleGetDirective)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_mode",
		Description: "Switch between 'flashcard' study mode and 'quiz' mode. Starting a quiz shuffles the elements and resets the score.",
	}, s.handleSetMode)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reveal_answer",
		Description: "Reveal the name of the current flash card.",
	}, s.handleRevealAnswer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "submit_answer",
		Description: "Answer the current quiz question. Matching ignores case but nothing else.",
	}, s.handleSubmitAnswer)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "advance",
		Description: "Go to the next flash card or quiz question. After the last quiz question the result carries the final score.",
	}, s.handleAdvance)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "acknowledge_score",
		Description: "Dismiss the quiz score and return to flash cards.",
	}, s.handleAcknowledgeScore)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "List quizzes finished since the server started and per-element accuracy.",
	}, s.handleGetHistory)
}

func (s *Server) handleGetDirective(ctx context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, DirectiveView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil, ToView(s.ctrl.Directive()), nil
}

func (s *Server) handleSetMode(ctx context.Context, _ *mcp.CallToolRequest, args SetModeArgs) (*mcp.CallToolResult, TransitionResult, error) {
	mode, err := quiz.ParseMode(args.Mode)
	if err != nil {
		return nil, TransitionResult{}, err
	}
	return nil, s.apply(ctx, func() bool { return s.ctrl.SetMode(mode) }), nil
}

func (s *Server) handleRevealAnswer(ctx context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, TransitionResult, error) {
	return nil, s.apply(ctx, s.ctrl.RevealAnswer), nil
}

func (s *Server) handleSubmitAnswer(ctx context.Context, _ *mcp.CallToolRequest, args SubmitAnswerArgs) (*mcp.CallToolResult, TransitionResult, error) {
	return nil, s.apply(ctx, func() bool { return s.ctrl.SubmitAnswer(args.Answer) }), nil
}

func (s *Server) handleAdvance(ctx context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, TransitionResult, error) {
	return nil, s.apply(ctx, s.ctrl.Advance), nil
}

func (s *Server) handleAcknowledgeScore(ctx context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, TransitionResult, error) {
	return nil, s.apply(ctx, s.ctrl.AcknowledgeScore), nil
}

func (s *Server) handleGetHistory(ctx context.Context, _ *mcp.CallToolRequest, args HistoryArgs) (*mcp.CallToolResult, HistoryResult, error) {
	if s.store == nil {
		return nil, HistoryResult{}, fmt.Errorf("history is not enabled")
	}

	runs, err := s.store.Runs(ctx, args.Limit)
	if err != nil {
		return nil, HistoryResult{}, fmt.Errorf("failed to query runs: %w", err)
	}
	acc, err := s.store.ElementAccuracy(ctx)
	if err != nil {
		return nil, HistoryResult{}, fmt.Errorf("failed to query accuracy: %w", err)
	}
	finished, err := s.store.CountRuns(ctx, history.StatusFinished)
	if err != nil {
		return nil, HistoryResult{}, fmt.Errorf("failed to count runs: %w", err)
	}

	res := HistoryResult{
		Runs:     make([]RunView, 0, len(runs)),
		Accuracy: make([]AccuracyView, 0, len(acc)),
		Best:     output.BuildReport(runs, acc, finished).BestPercent,
	}
	for _, r := range runs {
		res.Runs = append(res.Runs, RunView{
			RunID:      r.RunID,
			FinishedAt: r.FinishedAt.Format(time.RFC3339),
			Correct:    r.Correct,
			Total:      r.Total,
			Percent:    r.Percent(),
		})
	}
	for _, a := range acc {
		res.Accuracy = append(res.Accuracy, AccuracyView{
			Element:  a.Element,
			Attempts: a.Attempts,
			Correct:  a.Correct,
			Percent:  a.Percent(),
		})
	}
	return nil, res, nil
}

// apply runs one controller operation and records the events it emitted.
// The returned directive is the one the operation produced, so a
// finishing advance carries the score signal.
func (s *Server) apply(ctx context.Context, op func() bool) TransitionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = s.events[:0]
	applied := op()

	d := s.ctrl.Directive()
	for _, ev := range s.events {
		if s.store != nil {
			if err := s.store.Record(ctx, ev); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: history record failed: %v\n", err)
			}
		}
		d = ev.Directive
	}

	return TransitionResult{Applied: applied, Directive: ToView(d)}
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "Starting Element Quiz MCP Server on stdio...\n")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// Close ends any quiz left in progress.
func (s *Server) Close(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Abandon(ctx)
}
