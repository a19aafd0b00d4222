package slots

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
)

var _ repository.SlotStorage = (*MemoryStorage)(nil)

// MemoryStorage slots en memoria del proceso (se pierden al reiniciar).
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage construye un almacenamiento vacío.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (s *MemoryStorage) Set(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(data)
	return nil
}

// Clear elimina un slot (equivale a borrar el almacenamiento local del navegador).
func (s *MemoryStorage) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
