// Package cli wires settings, gateway, tools, and storage into runnable
// commands.
//
// Information Hiding:
// - Component assembly hidden
// - Output formatting hidden
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/safar-ai/safar/chat"
	"github.com/safar-ai/safar/config"
	"github.com/safar-ai/safar/llm"
	"github.com/safar-ai/safar/server"
	"github.com/safar-ai/safar/storage"
	"github.com/safar-ai/safar/tools"
)

// Options holds CLI execution options.
type Options struct {
	Backend string
	Model   string
	Verbose bool
}

// DefaultOptions returns default CLI options.
func DefaultOptions() Options {
	return Options{Backend: "gemini"}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// assembly is a fully wired orchestrator plus the resources it owns.
type assembly struct {
	orchestrator *chat.Orchestrator
	registry     *tools.Registry
	settings     config.Settings
	logger       zerolog.Logger
	cleanup      func()
}

// build assembles the orchestrator stack from settings. dbPath overrides the
// configured SQLite path; empty falls back to the in-memory store.
func build(opts Options, dbPath string) (*assembly, error) {
	settings, err := config.New(opts.Backend)
	if err != nil {
		return nil, err
	}
	if opts.Model != "" {
		settings.LLM.Model = opts.Model
	}
	logger := newLogger(opts.Verbose)

	gateway, err := llm.NewGateway(settings.LLM.Backend, llm.Options{
		Model:       settings.LLM.Model,
		MaxTokens:   uint32(settings.LLM.MaxTokens),
		Temperature: settings.LLM.Temperature,
		BaseURL:     settings.LLM.OllamaURL,
	})
	if err != nil {
		return nil, err
	}

	registry, err := tools.WithTravelDefaults(tools.Config{
		SerpAPIKey:  settings.Tools.SerpAPIKey,
		HTTPTimeout: settings.Tools.HTTPTimeout,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	cache := tools.NewCache(settings.Cache.TTL, settings.Cache.SweepEvery)
	cleanup := func() { cache.Close() }

	if dbPath == "" {
		dbPath = settings.Tools.SQLitePath
	}
	var store storage.ConversationStore
	if dbPath != "" {
		sqlite, err := storage.OpenSQLite(dbPath)
		if err != nil {
			cache.Close()
			return nil, err
		}
		store = sqlite
		prev := cleanup
		cleanup = func() {
			prev()
			sqlite.Close()
		}
	} else {
		store = storage.NewMemoryStoreWithRetention(storage.RetentionPolicy{
			MaxConversations: settings.Retention.MaxConversations,
			MaxIdle:          settings.Retention.MaxIdle,
		})
	}

	orchestrator := chat.NewOrchestrator(gateway, registry, store, chat.Options{
		MaxToolRounds:  settings.Chat.MaxToolRounds,
		GatewayTimeout: settings.Chat.GatewayTimeout,
		Cache:          cache,
		Logger:         logger,
	})

	logger.Info().
		Str("backend", gateway.Name()).
		Str("model", gateway.Model()).
		Strs("tools", registry.Names()).
		Msg("assembled")

	return &assembly{
		orchestrator: orchestrator,
		registry:     registry,
		settings:     settings,
		logger:       logger,
		cleanup:      cleanup,
	}, nil
}

// Serve runs the HTTP API until the context is cancelled.
func Serve(ctx context.Context, opts Options) error {
	a, err := build(opts, "")
	if err != nil {
		return err
	}
	defer a.cleanup()

	srv := server.New(a.orchestrator, server.Config{
		RateLimitPerMin: a.settings.Server.RateLimitPerMin,
		RateLimitBurst:  a.settings.Server.RateLimitBurst,
		Logger:          a.logger,
	})
	return srv.Run(ctx, a.settings.Server.Port)
}

// Chat starts an interactive terminal conversation. An empty conversationID
// starts a fresh conversation; dbPath enables SQLite persistence.
func Chat(ctx context.Context, conversationID, dbPath string, opts Options) error {
	a, err := build(opts, dbPath)
	if err != nil {
		return err
	}
	defer a.cleanup()

	fmt.Println("Safar travel assistant. Type 'exit' to quit, 'clear' to start over.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "":
			continue
		case "exit", "quit":
			return scanner.Err()
		case "clear":
			if conversationID != "" {
				if err := a.orchestrator.ClearConversation(ctx, conversationID); err != nil {
					fmt.Fprintf(os.Stderr, "clear failed: %v\n", err)
					continue
				}
			}
			fmt.Println("Conversation cleared.")
			continue
		}

		result, err := a.orchestrator.SendMessage(ctx, chat.Request{
			ConversationID: conversationID,
			Message:        input,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		conversationID = result.ConversationID

		fmt.Printf("\nsafar> %s\n\n", result.Text)
		if result.ToolCallsMade > 0 && opts.Verbose {
			fmt.Printf("(%d tool rounds)\n\n", result.ToolCallsMade)
		}
	}
	return scanner.Err()
}

// ListTools prints the registered travel tools.
func ListTools(verbose bool) {
	registry, err := tools.WithTravelDefaults(tools.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build registry: %v\n", err)
		return
	}

	for _, decl := range registry.Declarations() {
		fmt.Printf("%-24s %s\n", decl.Name, decl.Description)
		if verbose {
			if props, ok := decl.Parameters["properties"].(map[string]any); ok {
				for name, raw := range props {
					desc := ""
					if p, ok := raw.(map[string]any); ok {
						desc, _ = p["description"].(string)
					}
					fmt.Printf("    %-20s %s\n", name, desc)
				}
			}
			fmt.Println()
		}
	}
}
