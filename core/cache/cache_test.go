package cache

import (
	"testing"
	"time"
)

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("k", "val", 0, nil)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("nonexistent-key-xyz"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestSet_Expires(t *testing.T) {
	c := NewCache()
	c.Set("short", 1, time.Millisecond, nil)
	c.Set("long", 2, time.Hour, nil)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("short"); ok {
		t.Error("expired key still returned")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("live key missing")
	}
}

func TestPurge(t *testing.T) {
	c := NewCache()
	c.Set("a", 1, time.Millisecond, nil)
	c.Set("b", 2, time.Millisecond, nil)
	c.Set("c", 3, 0, nil)
	time.Sleep(5 * time.Millisecond)
	if n := c.Purge(); n != 2 {
		t.Errorf("Purge = %d, want 2", n)
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("non-expiring key purged")
	}
}

func TestGetOrDefault(t *testing.T) {
	c := NewCache()
	if got := c.GetOrDefault("k", "default"); got != "default" {
		t.Errorf("GetOrDefault missing = %v, want default", got)
	}
	c.Set("k", "stored", 0, nil)
	if got := c.GetOrDefault("k", "default"); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestDeleteMany(t *testing.T) {
	c := NewCache()
	c.Set("dm1", 1, 0, nil)
	c.Set("dm2", 2, 0, nil)
	c.DeleteMany("dm1", "dm2")
	if _, ok := c.Get("dm1"); ok {
		t.Error("DeleteMany: dm1 should be gone")
	}
	if _, ok := c.Get("dm2"); ok {
		t.Error("DeleteMany: dm2 should be gone")
	}
}

func TestTags(t *testing.T) {
	c := NewCache()
	c.Set("post_type:all", "v1", 0, []string{"post_type"})
	c.Set("post_type:book", "v2", 0, []string{"post_type"})
	c.Set("taxonomy:all", "v3", 0, []string{"taxonomy"})

	if keys := c.GetKeysByTag("post_type"); len(keys) != 2 {
		t.Errorf("GetKeysByTag = %v, want 2 keys", keys)
	}
	c.DeleteByTag("post_type")
	if _, ok := c.Get("post_type:all"); ok {
		t.Error("DeleteByTag: post_type:all should be gone")
	}
	if _, ok := c.Get("taxonomy:all"); !ok {
		t.Error("DeleteByTag removed an untagged key")
	}
}

func TestGetKeysByTag_SkipsDeleted(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, []string{"t"})
	c.Delete("k")
	if keys := c.GetKeysByTag("t"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after Delete = %v, want none", keys)
	}
}
