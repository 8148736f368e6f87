package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/atinyakov/useful-links/internal/models"
)

// MemoryStorage keeps links in process memory. It is safe for concurrent use.
type MemoryStorage struct {
	mu    sync.RWMutex
	byID  map[string]models.UsefulLink
	byURL map[string]string
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		byID:  make(map[string]models.UsefulLink),
		byURL: make(map[string]string),
	}, nil
}

func (m *MemoryStorage) Write(_ context.Context, l models.UsefulLink) (*models.UsefulLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.conflicting(l); ok {
		return &existing, ErrConflict
	}

	m.put(l)
	return &l, nil
}

// WriteAll stores every link or none of them.
func (m *MemoryStorage) WriteAll(_ context.Context, ls []models.UsefulLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seenID := make(map[string]struct{}, len(ls))
	seenURL := make(map[string]struct{}, len(ls))
	for _, l := range ls {
		if _, ok := m.conflicting(l); ok {
			return ErrConflict
		}
		if _, ok := seenID[l.ID]; ok {
			return ErrConflict
		}
		if _, ok := seenURL[l.URL]; ok {
			return ErrConflict
		}
		seenID[l.ID] = struct{}{}
		seenURL[l.URL] = struct{}{}
	}

	for _, l := range ls {
		m.put(l)
	}
	return nil
}

// Read returns every link ordered by creation time, then id.
func (m *MemoryStorage) Read(_ context.Context) ([]models.UsefulLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filter(func(models.UsefulLink) bool { return true }), nil
}

func (m *MemoryStorage) FindByID(_ context.Context, id string) (*models.UsefulLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (m *MemoryStorage) FindByAuthor(_ context.Context, authorID string) ([]models.UsefulLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filter(func(l models.UsefulLink) bool { return l.AuthorID == authorID }), nil
}

func (m *MemoryStorage) FindByCategory(_ context.Context, category string) ([]models.UsefulLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filter(func(l models.UsefulLink) bool { return l.Category == category }), nil
}

// DeleteBatch removes links matched by id whose author equals the requested one.
func (m *MemoryStorage) DeleteBatch(_ context.Context, ls []models.UsefulLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range ls {
		stored, ok := m.byID[l.ID]
		if !ok || stored.AuthorID != l.AuthorID {
			continue
		}
		delete(m.byID, stored.ID)
		delete(m.byURL, stored.URL)
	}
	return nil
}

func (m *MemoryStorage) GetStats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	authors := make(map[string]struct{})
	for _, l := range m.byID {
		if l.AuthorID != "" {
			authors[l.AuthorID] = struct{}{}
		}
	}

	return &Stats{Links: len(m.byID), Authors: len(authors)}, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return errors.ErrUnsupported
}

// conflicting must be called with mu held.
func (m *MemoryStorage) conflicting(l models.UsefulLink) (models.UsefulLink, bool) {
	if existing, ok := m.byID[l.ID]; ok {
		return existing, true
	}
	if id, ok := m.byURL[l.URL]; ok {
		return m.byID[id], true
	}
	return models.UsefulLink{}, false
}

func (m *MemoryStorage) put(l models.UsefulLink) {
	m.byID[l.ID] = l
	m.byURL[l.URL] = l.ID
}

func (m *MemoryStorage) filter(keep func(models.UsefulLink) bool) []models.UsefulLink {
	res := make([]models.UsefulLink, 0)
	for _, l := range m.byID {
		if keep(l) {
			res = append(res, l)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt != res[j].CreatedAt {
			return res[i].CreatedAt < res[j].CreatedAt
		}
		return res[i].ID < res[j].ID
	})
	return res
}
