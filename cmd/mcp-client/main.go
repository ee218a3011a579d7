package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./elementquiz-mcp -seed 42")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "elementquiz-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to Element Quiz MCP Server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools          - List available tools")
	fmt.Println("  /screen         - Show the current directive")
	fmt.Println("  /flash, /quiz   - Switch mode")
	fmt.Println("  /show           - Reveal the flash card")
	fmt.Println("  /next           - Next card or question")
	fmt.Println("  /ok             - Dismiss the quiz score")
	fmt.Println("  /history [n]    - Finished quizzes")
	fmt.Println("  /exit           - Exit the client")
	fmt.Println("  <answer>        - Answer the current quiz question")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}

		switch {
		case trimmed == "/exit":
			fmt.Println("Goodbye!")
			return

		case trimmed == "/tools":
			listTools(ctx, session)

		case trimmed == "/screen":
			callTool(ctx, session, "get_directive", nil)

		case trimmed == "/flash":
			callTool(ctx, session, "set_mode", map[string]any{"mode": "flashcard"})

		case trimmed == "/quiz":
			callTool(ctx, session, "set_mode", map[string]any{"mode": "quiz"})

		case trimmed == "/show":
			callTool(ctx, session, "reveal_answer", nil)

		case trimmed == "/next":
			callTool(ctx, session, "advance", nil)

		case trimmed == "/ok":
			callTool(ctx, session, "acknowledge_score", nil)

		case strings.HasPrefix(trimmed, "/history"):
			args := map[string]any{}
			parts := strings.Fields(trimmed)
			if len(parts) > 1 {
				if n, err := strconv.Atoi(parts[1]); err == nil {
					args["limit"] = n
				}
			}
			callTool(ctx, session, "get_history", args)

		default:
			// Send the raw line; only case is ignored when grading.
			callTool(ctx, session, "submit_answer", map[string]any{"answer": input})
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) {
	if args == nil {
		args = map[string]any{}
	}
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("❌ Error: ")
	} else {
		fmt.Printf("✅ Result: ")
	}

	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			var pretty map[string]any
			if err := json.Unmarshal([]byte(v.Text), &pretty); err == nil {
				out, _ := json.MarshalIndent(pretty, "", "  ")
				fmt.Println(string(out))
			} else {
				fmt.Println(v.Text)
			}
		default:
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}
