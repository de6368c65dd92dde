package clips

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dhkim/newsclip/internal/models"
)

// Store holds saved clips. The interface exists so a persistent backend can
// be swapped in without touching the handlers; the in-memory implementation
// is the system of record for a single user session only.
type Store interface {
	Save(title, url, content string) models.Clip
	Get(id string) (models.Clip, bool)
	List() []models.Clip
	Delete(id string) bool
	Clear() int
}

// MemoryStore keeps clips in a map guarded by a RWMutex. Everything is lost
// on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	clips map[string]models.Clip
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clips: make(map[string]models.Clip),
	}
}

// Save stores a new clip and returns it. Duplicate URLs are allowed; every
// save gets a fresh ID.
func (s *MemoryStore) Save(title, url, content string) models.Clip {
	clip := models.Clip{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       url,
		Content:   content,
		CreatedAt: time.Now().Truncate(time.Second),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clips[clip.ID] = clip
	return clip
}

func (s *MemoryStore) Get(id string) (models.Clip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clip, ok := s.clips[id]
	return clip, ok
}

// List returns all clips, newest first.
func (s *MemoryStore) List() []models.Clip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Clip, 0, len(s.clips))
	for _, clip := range s.clips {
		list = append(list, clip)
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// Delete reports whether the clip existed. Deleting an unknown ID is not an
// error.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clips[id]; !ok {
		return false
	}
	delete(s.clips, id)
	return true
}

// Clear removes every clip and returns how many were removed.
func (s *MemoryStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.clips)
	s.clips = make(map[string]models.Clip)
	return n
}
