package cache_test

import (
	"testing"
	"time"

	"github.com/acmecorp/finboard/internal/infra/cache"
)

func TestCache_SetAndGet(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	c.Set("summary", "cards")
	val, ok := c.Get("summary")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if val != "cards" {
		t.Errorf("expected 'cards', got '%s'", val)
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	_, ok := c.Get("nonexistent")
	if ok {
		t.Fatal("expected cache miss for nonexistent key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c := cache.New[string](50 * time.Millisecond)
	defer c.Close()

	c.Set("revenue", "points")
	time.Sleep(100 * time.Millisecond)

	_, ok := c.Get("revenue")
	if ok {
		t.Fatal("expected cache entry to be expired")
	}
}

func TestCache_Delete(t *testing.T) {
	c := cache.New[string](5 * time.Minute)
	defer c.Close()

	c.Set("summary", "cards")
	c.Delete("summary")

	_, ok := c.Get("summary")
	if ok {
		t.Fatal("expected key to be deleted")
	}
}
