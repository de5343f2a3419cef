package moderation

import (
	"slices"
	"sync"

	"github.com/denmor86/lucky-triple/internal/models"
)

// Selection - отмеченные администратором пользователи.
// Живёт отдельно от списка пользователей и сверяется с ним перед рассылкой.
type Selection struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle - переключает отметку; возвращает новое состояние
func (s *Selection) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *Selection) Select(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Deselect(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.ids, id)
	}
}

func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.ids)
}

func (s *Selection) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// IDs - отмеченные идентификаторы в отсортированном виде
func (s *Selection) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Retain - оставляет только пользователей из текущего списка.
// Возвращает оставшиеся и удалённые идентификаторы.
func (s *Selection) Retain(users []models.User) (kept []string, dropped []string) {
	current := make(map[string]struct{}, len(users))
	for _, u := range users {
		current[u.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.ids {
		if _, ok := current[id]; ok {
			kept = append(kept, id)
			continue
		}
		dropped = append(dropped, id)
		delete(s.ids, id)
	}
	slices.Sort(kept)
	slices.Sort(dropped)
	return kept, dropped
}
