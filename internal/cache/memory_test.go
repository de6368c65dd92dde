package cache

import (
	"context"
	"testing"

	"github.com/dhkim/newsclip/internal/models"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	if _, ok, _ := c.Get(ctx, "keyword"); ok {
		t.Error("Get on empty cache returned ok")
	}

	items := []models.NewsItem{{Title: "첫 기사"}}
	if err := c.Set(ctx, "keyword", items); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "keyword")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Title != "첫 기사" {
		t.Errorf("got %+v", got)
	}
}

func TestMemoryCacheLastWriteWins(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "kw", []models.NewsItem{{Title: "old"}})
	c.Set(ctx, "kw", []models.NewsItem{{Title: "new"}, {Title: "newer"}})

	got, _, _ := c.Get(ctx, "kw")
	if len(got) != 2 || got[0].Title != "new" {
		t.Errorf("got %+v, want overwritten entry", got)
	}
}

func TestMemoryCacheClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "a", nil)
	c.Set(ctx, "b", nil)
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("entry survived Clear")
	}
}
