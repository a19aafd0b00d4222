package repository

import "context"

// SlotStorage almacenamiento clave-valor de slots completos (un documento JSON por clave).
// found=false indica que el slot nunca fue escrito.
type SlotStorage interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte) error
}
