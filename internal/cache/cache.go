package cache

import (
	"context"

	"github.com/dhkim/newsclip/internal/models"
)

// SearchCache holds the most recent normalized result set per keyword.
// Last write wins; the search path only ever writes, so a stale or missing
// entry never changes what a user sees.
type SearchCache interface {
	Set(ctx context.Context, keyword string, items []models.NewsItem) error
	Get(ctx context.Context, keyword string) ([]models.NewsItem, bool, error)
	Clear(ctx context.Context) error
	Close() error
}
