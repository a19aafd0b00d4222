package slots

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
)

var _ repository.SlotStorage = (*Unavailable)(nil)

// Unavailable se usa cuando no hay persistencia accesible: todo slot se lee como ausente
// (el almacén devuelve los datos por defecto) y las escrituras se descartan sin error.
type Unavailable struct {
	log zerolog.Logger
}

// NewUnavailable construye el backend degradado. Las escrituras descartadas se registran en debug.
func NewUnavailable(log zerolog.Logger) *Unavailable {
	return &Unavailable{log: log}
}

func (u *Unavailable) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (u *Unavailable) Set(_ context.Context, key string, data []byte) error {
	u.log.Debug().Str("slot", key).Int("bytes", len(data)).Msg("almacenamiento no disponible, escritura descartada")
	return nil
}
