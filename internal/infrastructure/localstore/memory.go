package localstore

import (
	"sync"

	"github.com/jhoicas/admin-console-api/internal/domain/repository"
)

var _ repository.KVStore = (*MemoryStore)(nil)

// MemoryStore implementación en memoria del puerto KVStore (tests y demos).
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory crea un store vacío.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// NewMemoryWith crea un store sembrado con los slots indicados.
func NewMemoryWith(initial map[string]string) *MemoryStore {
	s := NewMemory()
	for k, v := range initial {
		s.data[k] = v
	}
	return s
}

// Get devuelve el valor del slot y si existe.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set escribe el slot.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete elimina el slot.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
