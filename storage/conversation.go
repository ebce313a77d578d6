// Package storage provides conversation history persistence.
//
// Information Hiding:
// - Storage backend implementation details hidden behind interface
// - Allows swapping between memory and SQLite without API changes
// - Retention enforcement internal to each backend
package storage

import (
	"context"
	"time"

	"github.com/safar-ai/safar/llm"
)

// ConversationStore persists per-conversation message history.
//
// Load of a missing conversation returns an empty history, not an error;
// Delete of a missing conversation is a no-op. Errors indicate storage
// failures only.
type ConversationStore interface {
	// Save replaces the stored history for a conversation.
	Save(ctx context.Context, conversationID string, history []llm.Message) error

	// Load returns the stored history for a conversation.
	// Returns an empty slice (not nil) if the conversation doesn't exist.
	Load(ctx context.Context, conversationID string) ([]llm.Message, error)

	// Delete removes a conversation and its history. Idempotent.
	Delete(ctx context.Context, conversationID string) error

	// List returns all known conversation IDs.
	List(ctx context.Context) ([]string, error)

	// Exists reports whether a conversation has stored history.
	Exists(ctx context.Context, conversationID string) (bool, error)
}

// RetentionPolicy bounds how much conversation state a store keeps.
// Zero values disable the corresponding bound.
type RetentionPolicy struct {
	// MaxConversations caps the number of stored conversations; the least
	// recently active are evicted first.
	MaxConversations int

	// MaxIdle evicts conversations with no activity for this long.
	MaxIdle time.Duration
}
