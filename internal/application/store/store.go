// Package store contiene el estado de la aplicación: las dos colecciones en
// memoria son la única fuente de verdad y cada mutación re-serializa la
// colección afectada completa a su slot del KVStore antes de retornar.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/admin-console-api/internal/domain"
	"github.com/jhoicas/admin-console-api/internal/domain/entity"
	"github.com/jhoicas/admin-console-api/internal/domain/repository"
	"github.com/jhoicas/admin-console-api/pkg/logger"
)

// Store contenedor explícito del estado (colecciones de productos y usuarios).
// Ordenamiento: más reciente primero. Los lectores reciben copias.
type Store struct {
	mu       sync.RWMutex
	kv       repository.KVStore
	log      *logger.Logger
	products []entity.Product
	users    []entity.User
}

// Open carga ambas colecciones desde el KVStore. Un slot ausente o corrupto se
// reemplaza por la colección semilla documentada y se persiste de inmediato,
// de forma que el slot nunca queda a medio parsear.
func Open(kv repository.KVStore, log *logger.Logger) (*Store, error) {
	s := &Store{kv: kv, log: log}

	products, err := loadSlot(kv, log, repository.KeyProducts, entity.SeedProducts)
	if err != nil {
		return nil, err
	}
	users, err := loadSlot(kv, log, repository.KeyUsers, entity.SeedUsers)
	if err != nil {
		return nil, err
	}
	s.products = products
	s.users = users
	return s, nil
}

// loadSlot deserializa un slot o cae a la semilla (persistiéndola).
func loadSlot[T any](kv repository.KVStore, log *logger.Logger, key string, seed func() []T) ([]T, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("store: leer slot %s: %w", key, err)
	}
	if ok {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items, nil
		}
		log.Warn().Str("slot", key).Msg("slot corrupto, se aplica la colección semilla")
	}
	items := seed()
	if err := persistSlot(kv, key, items); err != nil {
		return nil, err
	}
	return items, nil
}

func persistSlot[T any](kv repository.KVStore, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: serializar slot %s: %w", key, err)
	}
	if err := kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("store: escribir slot %s: %w", key, err)
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// Products devuelve una copia de la colección (más reciente primero).
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindProduct busca un producto por ID.
func (s *Store) FindProduct(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// PrependProduct inserta el producto al inicio de la colección y persiste.
func (s *Store) PrependProduct(p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]entity.Product, 0, len(s.products)+1)
	next = append(next, p)
	next = append(next, s.products...)
	if err := persistSlot(s.kv, repository.KeyProducts, next); err != nil {
		return err
	}
	s.products = next
	return nil
}

// UpdateProduct aplica apply sobre el producto indicado y persiste.
// Devuelve ErrNotFound si el ID no existe; en ese caso nada cambia.
func (s *Store) UpdateProduct(id string, apply func(*entity.Product)) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entity.Product{}, domain.ErrNotFound
	}
	next := make([]entity.Product, len(s.products))
	copy(next, s.products)
	apply(&next[idx])
	// ID y CreatedAt son inmutables pase lo que pase en apply
	next[idx].ID = s.products[idx].ID
	next[idx].CreatedAt = s.products[idx].CreatedAt
	if err := persistSlot(s.kv, repository.KeyProducts, next); err != nil {
		return entity.Product{}, err
	}
	s.products = next
	return next[idx], nil
}

// DeleteProduct elimina el producto indicado y persiste.
// Devuelve ErrNotFound si el ID no existe; en ese caso nada cambia.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]entity.Product, 0, len(s.products))
	found := false
	for _, p := range s.products {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	if err := persistSlot(s.kv, repository.KeyProducts, next); err != nil {
		return err
	}
	s.products = next
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// Users devuelve una copia de la colección (más reciente primero).
func (s *Store) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out
}

// FindUser busca un usuario por ID.
func (s *Store) FindUser(id string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return entity.User{}, false
}

// PrependUser inserta el usuario al inicio de la colección y persiste.
func (s *Store) PrependUser(u entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]entity.User, 0, len(s.users)+1)
	next = append(next, u)
	next = append(next, s.users...)
	if err := persistSlot(s.kv, repository.KeyUsers, next); err != nil {
		return err
	}
	s.users = next
	return nil
}

// UpdateUser aplica apply sobre el usuario indicado y persiste.
// Devuelve ErrNotFound si el ID no existe; en ese caso nada cambia.
func (s *Store) UpdateUser(id string, apply func(*entity.User)) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, u := range s.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entity.User{}, domain.ErrNotFound
	}
	next := make([]entity.User, len(s.users))
	copy(next, s.users)
	apply(&next[idx])
	next[idx].ID = s.users[idx].ID
	next[idx].CreatedAt = s.users[idx].CreatedAt
	if err := persistSlot(s.kv, repository.KeyUsers, next); err != nil {
		return entity.User{}, err
	}
	s.users = next
	return next[idx], nil
}

// DeleteUser elimina el usuario indicado y persiste.
// Devuelve ErrNotFound si el ID no existe; en ese caso nada cambia.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]entity.User, 0, len(s.users))
	found := false
	for _, u := range s.users {
		if u.ID == id {
			found = true
			continue
		}
		next = append(next, u)
	}
	if !found {
		return domain.ErrNotFound
	}
	if err := persistSlot(s.kv, repository.KeyUsers, next); err != nil {
		return err
	}
	s.users = next
	return nil
}
