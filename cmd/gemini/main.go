// Command gemini runs one prompt through the conversation loop against
// the configured provider, printing model output, tool activity, and
// reasoning summaries as they arrive.
//
// Configuration comes from the environment (optionally via .env):
// GEMINI_PROVIDER selects google, anthropic, or openai; the matching API
// key variable must be set. See session.LoadConfig for the full list.
//
// Usage:
//
//	gemini "summarize the files in this directory"
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	ai "github.com/anicolao/gemini-cli"
	"github.com/anicolao/gemini-cli/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gemini <prompt>")
		os.Exit(2)
	}
	prompt := strings.Join(os.Args[1:], " ")

	cfg, err := session.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, err := session.Initialize(ctx, cfg)
	if err != nil {
		slog.Error("session initialization failed", "error", err)
		os.Exit(1)
	}
	defer sess.Close()

	slog.Info("session started",
		"session", sess.ID,
		"provider", cfg.Provider,
		"tools", sess.Registry().Len(),
	)

	sess.Run(ctx, prompt, printMessage)
}

func printMessage(m ai.Message) {
	switch m.Kind {
	case ai.MessageContent:
		fmt.Print(m.Text)

	case ai.MessageThought:
		if m.Thought.Subject != "" {
			fmt.Fprintf(os.Stderr, "\n* %s\n", m.Thought.Subject)
		}

	case ai.MessageToolCallRequest:
		fmt.Fprintf(os.Stderr, "\n-> %s %v\n", m.Call.Name, m.Call.Args)

	case ai.MessageToolResult:
		fmt.Fprintf(os.Stderr, "<- %s: %s\n", m.Call.Name, firstLine(m.Result.Content))

	case ai.MessageError:
		fmt.Fprintf(os.Stderr, "\nerror: %s\n", m.Text)

	case ai.MessageInfo:
		fmt.Fprintf(os.Stderr, "\n%s\n", m.Text)

	case ai.MessageFinished:
		fmt.Println()
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
