package recordstore

import (
	"context"
	"time"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore implementación del puerto ProductRepository sobre un slot JSON.
type ProductStore struct {
	c *collection[entity.Product]
}

// NewProductStore construye el almacén de productos sobre storage.
func NewProductStore(storage repository.SlotStorage, cfg Config) *ProductStore {
	return &ProductStore{c: newCollection(ProductsSlot, storage, cfg, DefaultProducts)}
}

// GetAll devuelve todos los productos en orden de inserción.
func (s *ProductStore) GetAll(ctx context.Context) ([]entity.Product, error) {
	return s.c.getAll(ctx)
}

// Add asigna ID y fechas, agrega el producto y persiste la colección.
func (s *ProductStore) Add(ctx context.Context, draft entity.ProductDraft) (entity.Product, error) {
	return s.c.add(ctx, func(id string, now time.Time) entity.Product {
		return entity.NewProduct(id, draft, now)
	})
}

// Update fusiona el patch y renueva UpdatedAt.
func (s *ProductStore) Update(ctx context.Context, id string, patch entity.ProductPatch) (entity.Product, error) {
	return s.c.update(ctx, id, func(p *entity.Product) {
		patch.Apply(p)
		p.UpdatedAt = s.c.nextUpdate(p.UpdatedAt)
	})
}

// Delete elimina el producto; false si no existía.
func (s *ProductStore) Delete(ctx context.Context, id string) (bool, error) {
	return s.c.remove(ctx, id)
}

// Reset descarta los productos guardados y escribe los datos por defecto.
func (s *ProductStore) Reset(ctx context.Context) ([]entity.Product, error) {
	return s.c.reset(ctx)
}
