package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("/data/tables/relevance.csv")
	c.Set(key, "value", time.Minute)

	v, ok := c.Get(key)
	if !ok || v.(string) != "value" {
		t.Errorf("Expected cached value, got %v (ok=%v)", v, ok)
	}

	c.Delete(key)
	if _, ok := c.Get(key); ok {
		t.Error("Expected deleted key to be gone")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set(Key("a"), 1, time.Minute)
	c.Set(Key("b"), 2, time.Minute)

	c.Clear()
	if _, ok := c.Get(Key("a")); ok {
		t.Error("Expected Clear to drop all entries")
	}
}

func TestKey_Deterministic(t *testing.T) {
	if Key("/same/path") != Key("/same/path") {
		t.Error("Expected identical paths to share a key")
	}
	if Key("/a") == Key("/b") {
		t.Error("Expected different paths to get different keys")
	}
}
