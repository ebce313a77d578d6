// In-memory conversation storage.
//
// Information Hiding:
// - Map storage structure hidden from users
// - Thread-safe access via RWMutex hidden behind interface
// - Retention eviction runs inline on writes

package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/safar-ai/safar/llm"
)

// MemoryStore implements ConversationStore using an in-memory map.
// Data is lost when the process terminates. A RetentionPolicy, if set,
// is enforced on every write.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*memoryConversation
	policy        RetentionPolicy
	now           func() time.Time
}

type memoryConversation struct {
	history    []llm.Message
	lastActive time.Time
}

// NewMemoryStore creates an in-memory store with no retention bounds.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithRetention(RetentionPolicy{})
}

// NewMemoryStoreWithRetention creates an in-memory store that enforces the
// given retention policy.
func NewMemoryStoreWithRetention(policy RetentionPolicy) *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string]*memoryConversation),
		policy:        policy,
		now:           time.Now,
	}
}

// Save replaces the stored history for a conversation.
func (s *MemoryStore) Save(ctx context.Context, conversationID string, history []llm.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy to shield stored state from caller mutations.
	copied := make([]llm.Message, len(history))
	copy(copied, history)

	s.conversations[conversationID] = &memoryConversation{
		history:    copied,
		lastActive: s.now(),
	}
	s.applyRetention()
	return nil
}

// Load returns the stored history, or an empty slice for an unknown ID.
func (s *MemoryStore) Load(ctx context.Context, conversationID string) ([]llm.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return []llm.Message{}, nil
	}

	copied := make([]llm.Message, len(conv.history))
	copy(copied, conv.history)
	return copied, nil
}

// Delete removes a conversation. Deleting an unknown ID is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, conversationID)
	return nil
}

// List returns all conversation IDs.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.conversations))
	for id := range s.conversations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Exists reports whether a conversation has stored history.
func (s *MemoryStore) Exists(ctx context.Context, conversationID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.conversations[conversationID]
	return ok, nil
}

// applyRetention evicts idle conversations and trims past the count cap,
// least recently active first. Caller holds the write lock.
func (s *MemoryStore) applyRetention() {
	now := s.now()

	if s.policy.MaxIdle > 0 {
		for id, conv := range s.conversations {
			if now.Sub(conv.lastActive) > s.policy.MaxIdle {
				delete(s.conversations, id)
			}
		}
	}

	if s.policy.MaxConversations > 0 && len(s.conversations) > s.policy.MaxConversations {
		type aged struct {
			id         string
			lastActive time.Time
		}
		all := make([]aged, 0, len(s.conversations))
		for id, conv := range s.conversations {
			all = append(all, aged{id, conv.lastActive})
		}
		sort.Slice(all, func(i, j int) bool {
			return all[i].lastActive.Before(all[j].lastActive)
		})
		for _, a := range all[:len(all)-s.policy.MaxConversations] {
			delete(s.conversations, a.id)
		}
	}
}

// Verify MemoryStore implements ConversationStore
var _ ConversationStore = (*MemoryStore)(nil)
