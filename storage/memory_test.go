package storage

import (
	"context"
	"testing"
	"time"

	"github.com/safar-ai/safar/llm"
)

func TestMemoryStoreSaveAndLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	history := []llm.Message{
		llm.UserMessage("plan a trip to Jaipur"),
		llm.AssistantMessage("Sure, how many days?"),
	}
	if err := store.Save(ctx, "conv-1", history); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d messages, want 2", len(loaded))
	}
	if loaded[0].Role != llm.RoleUser || loaded[1].Role != llm.RoleAssistant {
		t.Errorf("roles = %q, %q", loaded[0].Role, loaded[1].Role)
	}
}

func TestMemoryStoreLoadMissing(t *testing.T) {
	store := NewMemoryStore()

	loaded, err := store.Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Error("Load of missing conversation should return empty slice, not nil")
	}
	if len(loaded) != 0 {
		t.Errorf("got %d messages, want 0", len(loaded))
	}
}

func TestMemoryStoreLoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "conv-1", []llm.Message{llm.UserMessage("original")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	first, _ := store.Load(ctx, "conv-1")
	first[0].Content = "mutated"

	second, _ := store.Load(ctx, "conv-1")
	if second[0].Content != "original" {
		t.Error("external mutation leaked into stored history")
	}
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "conv-1", []llm.Message{llm.UserMessage("hi")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Delete(ctx, "conv-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	// Deleting again must succeed.
	if err := store.Delete(ctx, "conv-1"); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}

	exists, err := store.Exists(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("conversation should not exist after delete")
	}
}

func TestMemoryStoreRetentionCount(t *testing.T) {
	store := NewMemoryStoreWithRetention(RetentionPolicy{MaxConversations: 2})
	ctx := context.Background()

	base := time.Now()
	clock := base
	store.now = func() time.Time { return clock }

	for i, id := range []string{"old", "mid", "new"} {
		clock = base.Add(time.Duration(i) * time.Minute)
		if err := store.Save(ctx, id, []llm.Message{llm.UserMessage("hi")}); err != nil {
			t.Fatalf("Save(%q) failed: %v", id, err)
		}
	}

	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d conversations, want 2: %v", len(ids), ids)
	}
	if exists, _ := store.Exists(ctx, "old"); exists {
		t.Error("least recently active conversation should have been evicted")
	}
}

func TestMemoryStoreRetentionIdle(t *testing.T) {
	store := NewMemoryStoreWithRetention(RetentionPolicy{MaxIdle: time.Hour})
	ctx := context.Background()

	base := time.Now()
	clock := base
	store.now = func() time.Time { return clock }

	if err := store.Save(ctx, "stale", []llm.Message{llm.UserMessage("hi")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	clock = base.Add(2 * time.Hour)
	if err := store.Save(ctx, "fresh", []llm.Message{llm.UserMessage("hi")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if exists, _ := store.Exists(ctx, "stale"); exists {
		t.Error("idle conversation should have been evicted")
	}
	if exists, _ := store.Exists(ctx, "fresh"); !exists {
		t.Error("fresh conversation should survive")
	}
}
