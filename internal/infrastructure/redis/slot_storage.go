// Package redis implementa repository.SlotStorage sobre Redis: un string por slot.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
	"github.com/jhoicas/supermercado-dashboard/pkg/config"
)

var _ repository.SlotStorage = (*SlotStorage)(nil)

// SlotStorage guarda cada slot bajo keyPrefix+clave, sin TTL.
type SlotStorage struct {
	client    *goredis.Client
	keyPrefix string
}

// NewSlotStorage conecta con Redis y verifica la conexión.
func NewSlotStorage(cfg config.RedisConfig) (*SlotStorage, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return NewSlotStorageWithClient(client, cfg.KeyPrefix), nil
}

// NewSlotStorageWithClient usa un cliente existente (tests o cliente compartido).
func NewSlotStorageWithClient(client *goredis.Client, keyPrefix string) *SlotStorage {
	return &SlotStorage{client: client, keyPrefix: keyPrefix}
}

// Get devuelve el slot; found=false si la clave no existe.
func (s *SlotStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, true, nil
}

// Set reemplaza el slot.
func (s *SlotStorage) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close cierra el cliente.
func (s *SlotStorage) Close() error {
	return s.client.Close()
}
