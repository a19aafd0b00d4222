package repository

import (
	"context"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update devuelve domain.ErrNotFound si el ID no existe; Delete devuelve false.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]entity.Product, error)
	Add(ctx context.Context, draft entity.ProductDraft) (entity.Product, error)
	Update(ctx context.Context, id string, patch entity.ProductPatch) (entity.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
