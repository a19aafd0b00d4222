// Package storage selecciona el backend de slots según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/jhoicas/supermercado-dashboard/internal/domain"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/redis"
	"github.com/jhoicas/supermercado-dashboard/internal/infrastructure/slots"
	"github.com/jhoicas/supermercado-dashboard/pkg/config"
)

// Backend slots abiertos más la función que libera sus conexiones.
type Backend struct {
	Slots  repository.SlotStorage
	Driver string
	close  func()
}

// Close libera el backend. Seguro de llamar más de una vez.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
		b.close = nil
	}
}

// Open abre el driver configurado. Los fallos de conexión envuelven domain.ErrStorageUnavailable.
func Open(ctx context.Context, cfg *config.Config, fsys afero.Fs) (*Backend, error) {
	if !isKnown(cfg.Storage.Driver) {
		return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Storage.Driver)
	}
	b, err := open(ctx, cfg, fsys)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return b, nil
}

func isKnown(driver string) bool {
	switch driver {
	case "", config.StorageFile, config.StorageMemory, config.StoragePostgres, config.StorageRedis:
		return true
	}
	return false
}

func open(ctx context.Context, cfg *config.Config, fsys afero.Fs) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageFile, "":
		fs, err := slots.NewFileStorage(fsys, cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		return &Backend{Slots: fs, Driver: config.StorageFile}, nil
	case config.StorageMemory:
		return &Backend{Slots: slots.NewMemoryStorage(), Driver: config.StorageMemory}, nil
	case config.StoragePostgres:
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &Backend{Slots: postgres.NewSlotStorage(pool), Driver: config.StoragePostgres, close: pool.Close}, nil
	case config.StorageRedis:
		rs, err := redis.NewSlotStorage(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Backend{Slots: rs, Driver: config.StorageRedis, close: func() { _ = rs.Close() }}, nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Storage.Driver)
}

// OpenOrUnavailable abre el driver configurado; si no se puede, degrada a un backend
// que nunca persiste para que el tablero siga funcionando con los datos por defecto.
func OpenOrUnavailable(ctx context.Context, cfg *config.Config, fsys afero.Fs, log zerolog.Logger) *Backend {
	b, err := Open(ctx, cfg, fsys)
	if err != nil {
		log.Warn().Err(err).Str("driver", cfg.Storage.Driver).
			Msg("almacenamiento no disponible, los cambios no se guardarán")
		return &Backend{Slots: slots.NewUnavailable(log), Driver: "unavailable"}
	}
	return b
}
