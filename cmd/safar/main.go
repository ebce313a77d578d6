// Package main provides the safar CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/safar-ai/safar/cli"
)

var (
	// Global flags
	backend string
	model   string
	verbose bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "safar",
		Short: "Tool-augmented travel planning assistant for trips within India",
		Long: `Safar plans trips within India by pairing a conversational model with
travel tools: hotel search, attractions, restaurants, intercity transport,
and local fare estimates.

Run the HTTP API with 'safar serve' or talk directly with 'safar chat'.`,
	}

	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", "gemini", "Model backend (gemini, ollama, openai, anthropic)")
	rootCmd.PersistentFlags().StringVarP(&model, "model", "m", "", "Model identifier (backend default if unset)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(toolsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func options() cli.Options {
	return cli.Options{Backend: backend, Model: model, Verbose: verbose}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chat API",
		Long: `Run the HTTP chat API.

Endpoints:
  POST   /api/chat                     run one conversational turn
  DELETE /api/conversation/{id}        clear a conversation
  POST   /api/conversation/{id}/export export a structured itinerary
  GET    /health                       liveness check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return cli.Serve(ctx, options())
		},
	}
}

func chatCmd() *cobra.Command {
	var conversationID string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive travel planning conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Chat(context.Background(), conversationID, dbPath, options())
		},
	}

	cmd.Flags().StringVar(&conversationID, "conversation", "", "Conversation ID to resume")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite path for conversation persistence (in-memory if unset)")

	return cmd
}

func toolsCmd() *cobra.Command {
	var verboseTools bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List available travel tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.ListTools(verboseTools)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verboseTools, "verbose", "V", false, "Show tool parameters")

	return cmd
}
