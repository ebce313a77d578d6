package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/safar-ai/safar/llm"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteInMemory()
	if err != nil {
		t.Fatalf("NewSQLiteInMemory failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteSaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	history := []llm.Message{
		llm.SystemMessage("you are a travel assistant"),
		llm.UserMessage("find hotels in Goa"),
		llm.AssistantMessage("Here are some options."),
	}
	if err := store.Save(ctx, "conv-1", history); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("got %d messages, want 3", len(loaded))
	}
	for i := range history {
		if loaded[i].Role != history[i].Role || loaded[i].Content != history[i].Content {
			t.Errorf("message %d = {%s %q}, want {%s %q}",
				i, loaded[i].Role, loaded[i].Content, history[i].Role, history[i].Content)
		}
	}
}

func TestSQLiteRoundTripsToolCalls(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assistant := llm.Message{
		Role: llm.RoleAssistant,
		ToolCalls: []llm.ToolCall{{
			ID:        "call_1",
			Name:      "getHotels",
			Arguments: json.RawMessage(`{"city":"Goa"}`),
		}},
	}
	toolResult := llm.ToolResultMessage("call_1", `[{"name":"Taj Exotica"}]`)

	history := []llm.Message{llm.UserMessage("hotels in goa"), assistant, toolResult}
	if err := store.Save(ctx, "conv-1", history); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("got %d messages, want 3", len(loaded))
	}

	calls := loaded[1].ToolCalls
	if len(calls) != 1 {
		t.Fatalf("got %d tool calls, want 1", len(calls))
	}
	if calls[0].ID != "call_1" || calls[0].Name != "getHotels" {
		t.Errorf("tool call = %+v", calls[0])
	}
	if string(calls[0].Arguments) != `{"city":"Goa"}` {
		t.Errorf("arguments = %s", calls[0].Arguments)
	}
	if loaded[2].ToolCallID != "call_1" {
		t.Errorf("tool call ID = %q, want call_1", loaded[2].ToolCallID)
	}
}

func TestSQLiteSaveReplacesHistory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "conv-1", []llm.Message{
		llm.UserMessage("first"), llm.AssistantMessage("reply"),
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, "conv-1", []llm.Message{llm.UserMessage("only")}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := store.Load(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Content != "only" {
		t.Errorf("history not replaced: %+v", loaded)
	}
}

func TestSQLiteLoadMissing(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil || len(loaded) != 0 {
		t.Errorf("got %v, want empty slice", loaded)
	}
}

func TestSQLiteDeleteIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "conv-1", []llm.Message{llm.UserMessage("hi")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, "conv-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
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

	loaded, err := store.Load(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("messages survived delete: %+v", loaded)
	}
}

func TestSQLiteList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := store.Save(ctx, id, []llm.Message{llm.UserMessage("hi")}); err != nil {
			t.Fatalf("Save(%q) failed: %v", id, err)
		}
	}

	ids, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("got %d conversations, want 2: %v", len(ids), ids)
	}
}
