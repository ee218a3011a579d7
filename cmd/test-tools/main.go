package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"elementquiz/internal/catalog"
	"elementquiz/internal/mcpserver"
)

func main() {
	fmt.Println("🧪 Playing a full quiz over MCP")
	fmt.Println("=======================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	serverPath := findServerBinary()
	if serverPath == "" {
		log.Fatal("❌ MCP server binary not found. Run: go build -o elementquiz-mcp ./cmd/elementquiz-mcp")
	}
	fmt.Println("✅ Step 1: MCP server binary found")

	cmd := exec.Command(serverPath, "-seed", "42")
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MCP server: %v", err)
	}
	defer session.Close()
	fmt.Println("✅ Step 2: Connected to MCP server")

	listResult, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("❌ Failed to list tools: %v", err)
	}
	fmt.Printf("✅ Step 3: Found %d tools\n", len(listResult.Tools))
	for _, tool := range listResult.Tools {
		fmt.Printf("  - %s\n", tool.Name)
	}

	res, err := call(ctx, session, "set_mode", map[string]any{"mode": "quiz"})
	if err != nil {
		log.Fatalf("❌ set_mode failed: %v", err)
	}
	fmt.Println("✅ Step 4: Quiz started")

	// Answer every other question wrongly so the score is predictable.
	wrong := 0
	for i := 0; res.Directive.Score == nil; i++ {
		answer := answerFor(res.Directive.ImageKey)
		if i%2 == 1 {
			answer = "Unobtainium"
			wrong++
		}
		res, err = call(ctx, session, "submit_answer", map[string]any{"answer": answer})
		if err != nil {
			log.Fatalf("❌ submit_answer failed: %v", err)
		}
		fmt.Printf("  Q%d %-12s → %s\n", i+1, answer, res.Directive.Status)

		res, err = call(ctx, session, "advance", nil)
		if err != nil {
			log.Fatalf("❌ advance failed: %v", err)
		}
		if i > len(catalog.Elements()) {
			log.Fatal("❌ Quiz never reached the score phase")
		}
	}

	score := res.Directive.Score
	fmt.Printf("✅ Step 5: %s: %s\n", score.Title, score.Message)
	if want := score.Total - wrong; score.Correct != want {
		log.Fatalf("❌ Expected %d correct, got %d", want, score.Correct)
	}

	res, err = call(ctx, session, "acknowledge_score", nil)
	if err != nil || res.Directive.Mode != "flashcard" {
		log.Fatalf("❌ acknowledge_score failed: %v (%+v)", err, res.Directive)
	}
	fmt.Println("✅ Step 6: Back to flash cards")

	histRes, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "get_history", Arguments: map[string]any{"limit": 5}})
	if err != nil {
		fmt.Printf("  ⚠️  History tool failed: %v\n", err)
	} else {
		var hist mcpserver.HistoryResult
		if err := decode(histRes, &hist); err != nil {
			fmt.Printf("  ⚠️  History result unreadable: %v\n", err)
		} else {
			fmt.Printf("✅ Step 7: History holds %d finished quiz(zes)\n", len(hist.Runs))
		}
	}

	fmt.Println("\n=======================================")
	fmt.Println("✅ Full quiz over MCP complete!")
	fmt.Println("\n💡 To play interactively, run: go run ./cmd/mcp-client ./elementquiz-mcp")
}

func call(ctx context.Context, session *mcp.ClientSession, tool string, args map[string]any) (mcpserver.TransitionResult, error) {
	if args == nil {
		args = map[string]any{}
	}
	var out mcpserver.TransitionResult
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: tool, Arguments: args})
	if err != nil {
		return out, err
	}
	err = decode(result, &out)
	return out, err
}

func decode(result *mcp.CallToolResult, v any) error {
	if result.IsError {
		return errors.New("tool reported an error")
	}
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			return json.Unmarshal([]byte(text.Text), v)
		}
	}
	return errors.New("no text content in result")
}

// answerFor finds the correct answer for an image key, the way a
// player would by looking at the tile.
func answerFor(imageKey string) string {
	if it, ok := catalog.Lookup(imageKey); ok {
		return it.Name
	}
	return imageKey
}

func findServerBinary() string {
	candidates := []string{
		"./elementquiz-mcp",
		"../../elementquiz-mcp",
	}
	for _, p := range candidates {
		if abs, err := filepath.Abs(p); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}
