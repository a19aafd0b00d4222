package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
)

var _ repository.SlotStorage = (*SlotStorage)(nil)

// SlotStorage implementa repository.SlotStorage sobre la tabla kv_slots (una fila por slot).
type SlotStorage struct {
	q Querier
}

// NewSlotStorage construye el adaptador. Pasar pool o tx (Querier).
func NewSlotStorage(q Querier) *SlotStorage {
	return &SlotStorage{q: q}
}

// Get devuelve el JSON del slot; found=false si no hay fila.
func (s *SlotStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := s.q.QueryRow(ctx, `SELECT value FROM kv_slots WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get slot: %w", err)
	}
	return data, true, nil
}

// Set inserta o reemplaza el slot completo.
func (s *SlotStorage) Set(ctx context.Context, key string, data []byte) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("set slot: %w", err)
	}
	return nil
}
