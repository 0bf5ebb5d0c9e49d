package cache

import (
	"strings"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss on empty cache")
	}

	if err := c.Set("k", []byte("verdict"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "verdict" {
		t.Errorf("get = %q/%v, want verdict/true", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)
	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected miss after clear")
	}
}

func TestKey(t *testing.T) {
	a := Key([]byte(`{"name":"Pop Mart"}`))
	b := Key([]byte(`{"name":"Pop Mart"}`))
	c := Key([]byte(`{"name":"Pop Mart","region":"Beijing"}`))

	if a != b {
		t.Error("identical payloads must produce identical keys")
	}
	if a == c {
		t.Error("different payloads must produce different keys")
	}
	if !strings.HasPrefix(a, "trustgate:v1:") {
		t.Errorf("key %q missing version prefix", a)
	}
}
