package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](4, StringHasher)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}
	c.Set("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after overwrite = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, string](4, StringHasher)
	calls := 0
	create := func() (string, error) {
		calls++
		return "built", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrCreate("k", create)
		if err != nil {
			t.Fatalf("GetOrCreate() error = %v", err)
		}
		if v != "built" {
			t.Fatalf("GetOrCreate() = %q, want %q", v, "built")
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestGetOrCreateError(t *testing.T) {
	c := New[string, int](4, StringHasher)
	boom := errors.New("boom")

	_, err := c.GetOrCreate("k", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("GetOrCreate() error = %v, want boom", err)
	}
	// A failed create caches nothing.
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed create, want 0", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	// Single-shard hasher so capacity applies to one recency list.
	c := New[string, int](2, func(string) uint64 { return 0 })

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a becomes most recent
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry survived eviction")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("newest entry was evicted")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string, int](4, StringHasher)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
}

func TestStats(t *testing.T) {
	c := New[string, int](4, StringHasher)
	c.Set("a", 1)
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 hit and 1 miss", s)
	}
	if s.Len != 1 {
		t.Errorf("Stats().Len = %d, want 1", s.Len)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](32, StringHasher)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", i%50)
				c.Set(key, w)
				c.Get(key)
			}
		}(w)
	}
	wg.Wait()

	if c.Len() == 0 {
		t.Error("cache empty after concurrent writes")
	}
}
