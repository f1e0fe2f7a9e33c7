package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	val, found := c.Get("key")
	if !found {
		t.Fatal("Expected hit after set")
	}
	if string(val) != "value" {
		t.Errorf("Expected 'value', got %q", val)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if err := c.Set("key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("key"); found {
		t.Error("Expected entry to expire")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected 'a' deleted")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("Expected cache cleared")
	}
}

func TestSearchKey(t *testing.T) {
	a := SearchKey("web", "some query")
	b := SearchKey("web", "some query")
	if a != b {
		t.Errorf("Expected stable keys, got %s and %s", a, b)
	}
	if SearchKey("news", "some query") == a {
		t.Error("Expected kind to change the key")
	}
	if SearchKey("web", "other query") == a {
		t.Error("Expected query to change the key")
	}
	// The kind/query boundary must not be ambiguous
	if SearchKey("webs", "ome query") == a {
		t.Error("Expected separator to keep kind and query distinct")
	}
}
