package cache

import (
	"context"
	"sync"

	"github.com/dhkim/newsclip/internal/models"
)

// MemoryCache is the default SearchCache when no Redis URL is configured.
// Unbounded, process lifetime, last write wins.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string][]models.NewsItem
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string][]models.NewsItem),
	}
}

func (m *MemoryCache) Close() error {
	return nil
}

func (m *MemoryCache) Set(ctx context.Context, keyword string, items []models.NewsItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[keyword] = items
	return nil
}

func (m *MemoryCache) Get(ctx context.Context, keyword string) ([]models.NewsItem, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items, ok := m.data[keyword]
	return items, ok, nil
}

func (m *MemoryCache) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]models.NewsItem)
	return nil
}
