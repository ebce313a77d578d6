package tools

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCacheKeyParameterOrder(t *testing.T) {
	a, err := Key("getHotels", json.RawMessage(`{"city":"Jaipur","maxPrice":5000}`))
	if err != nil {
		t.Fatalf("Key failed: %v", err)
	}
	b, err := Key("getHotels", json.RawMessage(`{"maxPrice":5000,"city":"Jaipur"}`))
	if err != nil {
		t.Fatalf("Key failed: %v", err)
	}

	if a != b {
		t.Errorf("keys differ for reordered arguments:\n  %s\n  %s", a, b)
	}
}

func TestCacheKeyDistinguishesToolAndArgs(t *testing.T) {
	base, _ := Key("getHotels", json.RawMessage(`{"city":"Jaipur"}`))

	tests := []struct {
		name string
		tool string
		args string
	}{
		{"different tool", "getRestaurants", `{"city":"Jaipur"}`},
		{"different value", "getHotels", `{"city":"Goa"}`},
		{"extra argument", "getHotels", `{"city":"Jaipur","minRating":4}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := Key(tt.tool, json.RawMessage(tt.args))
			if err != nil {
				t.Fatalf("Key failed: %v", err)
			}
			if key == base {
				t.Errorf("key %q should differ from base", key)
			}
		})
	}
}

func TestCacheKeyEmptyArgs(t *testing.T) {
	a, err := Key("getHotels", nil)
	if err != nil {
		t.Fatalf("Key(nil) failed: %v", err)
	}
	b, err := Key("getHotels", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Key({}) failed: %v", err)
	}
	if a != b {
		t.Errorf("nil and empty-object args should produce the same key: %q vs %q", a, b)
	}
}

func TestCacheKeyRejectsNonObject(t *testing.T) {
	if _, err := Key("getHotels", json.RawMessage(`[1,2]`)); err == nil {
		t.Error("expected error for non-object arguments")
	}
}

func TestCacheHitAndMiss(t *testing.T) {
	cache := NewCache(time.Minute, 0)
	defer cache.Close()

	if _, ok := cache.Get("k"); ok {
		t.Error("expected miss on empty cache")
	}

	cache.Set("k", "v")
	got, ok := cache.Get("k")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got != "v" {
		t.Errorf("got %v, want v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(10*time.Millisecond, 0)
	defer cache.Close()

	cache.Set("k", "v")
	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get("k"); ok {
		t.Error("expected miss after TTL elapsed")
	}
}

func TestCacheSweepReclaims(t *testing.T) {
	cache := NewCache(5*time.Millisecond, 10*time.Millisecond)
	defer cache.Close()

	cache.Set("k", "v")
	time.Sleep(50 * time.Millisecond)

	if n := cache.Len(); n != 0 {
		t.Errorf("expected sweep to reclaim expired entry, Len = %d", n)
	}
}

func TestCacheOverwrite(t *testing.T) {
	cache := NewCache(time.Minute, 0)
	defer cache.Close()

	cache.Set("k", "old")
	cache.Set("k", "new")

	got, ok := cache.Get("k")
	if !ok || got != "new" {
		t.Errorf("got (%v, %v), want (new, true)", got, ok)
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	cache.Close()
	cache.Close() // must not panic
}
