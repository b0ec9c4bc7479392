// Package localstore implementa el puerto KVStore sobre un documento JSON en
// disco, al estilo del localStorage de un navegador. Todo el
// mapa se mantiene en memoria y se reescribe en cada mutación.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/admin-console-api/internal/domain/repository"
)

var _ repository.KVStore = (*FileStore)(nil)

// FileStore guarda los slots como un map[string]string serializado a un archivo.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenFile carga (o crea) el archivo de respaldo. Un archivo corrupto no es
// fatal: se descarta y el store arranca vacío, dejando que las capas superiores
// apliquen sus colecciones por defecto.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("localstore: leer %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("archivo de storage corrupto, se descarta")
		s.data = make(map[string]string)
	}
	return s, nil
}

// Get devuelve el valor del slot y si existe.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set escribe el slot y vuelca todo el documento a disco.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

// Delete elimina el slot y vuelca todo el documento a disco.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.flush()
}

// flush reescribe el archivo completo vía archivo temporal + rename para no
// dejar nunca un documento a medio escribir. Llamar con el lock tomado.
func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("localstore: crear directorio: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("localstore: renombrar %s: %w", tmp, err)
	}
	return nil
}
