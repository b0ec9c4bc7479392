package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/admin-console-api/internal/domain/repository"
)

var _ repository.KVStore = (*KVRepo)(nil)

// KVRepo implementación del puerto KVStore sobre PostgreSQL.
// Cada slot es una fila de console_storage; Set reescribe el valor completo.
type KVRepo struct {
	pool *pgxpool.Pool
}

// NewKVRepository construye el adaptador y garantiza el esquema.
func NewKVRepository(ctx context.Context, pool *pgxpool.Pool) (*KVRepo, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS console_storage (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("crear tabla console_storage: %w", err)
	}
	return &KVRepo{pool: pool}, nil
}

// Get devuelve el valor del slot y si existe.
func (r *KVRepo) Get(key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(context.Background(),
		`SELECT value FROM console_storage WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get slot %s: %w", key, err)
	}
	return value, true, nil
}

// Set escribe el slot completo (upsert).
func (r *KVRepo) Set(key, value string) error {
	_, err := r.pool.Exec(context.Background(), `
		INSERT INTO console_storage (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	if err != nil {
		return fmt.Errorf("set slot %s: %w", key, err)
	}
	return nil
}

// Delete elimina el slot; borrar un slot inexistente no es error.
func (r *KVRepo) Delete(key string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM console_storage WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}
