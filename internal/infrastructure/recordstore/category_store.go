package recordstore

import (
	"context"
	"time"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryStore)(nil)

// CategoryStore implementación del puerto CategoryRepository sobre un slot JSON.
// Permite borrar categorías referenciadas por productos.
type CategoryStore struct {
	c *collection[entity.Category]
}

// NewCategoryStore construye el almacén de categorías sobre storage.
func NewCategoryStore(storage repository.SlotStorage, cfg Config) *CategoryStore {
	return &CategoryStore{c: newCollection(CategoriesSlot, storage, cfg, DefaultCategories)}
}

// GetAll devuelve todas las categorías en orden de inserción.
func (s *CategoryStore) GetAll(ctx context.Context) ([]entity.Category, error) {
	return s.c.getAll(ctx)
}

// Add asigna ID y fechas, agrega la categoría y persiste la colección.
func (s *CategoryStore) Add(ctx context.Context, draft entity.CategoryDraft) (entity.Category, error) {
	return s.c.add(ctx, func(id string, now time.Time) entity.Category {
		return entity.NewCategory(id, draft, now)
	})
}

// Update fusiona el patch y renueva UpdatedAt.
func (s *CategoryStore) Update(ctx context.Context, id string, patch entity.CategoryPatch) (entity.Category, error) {
	return s.c.update(ctx, id, func(c *entity.Category) {
		patch.Apply(c)
		c.UpdatedAt = s.c.nextUpdate(c.UpdatedAt)
	})
}

// Delete elimina la categoría; false si no existía.
func (s *CategoryStore) Delete(ctx context.Context, id string) (bool, error) {
	return s.c.remove(ctx, id)
}

// Reset descarta los categorías guardados y escribe los datos por defecto.
func (s *CategoryStore) Reset(ctx context.Context) ([]entity.Category, error) {
	return s.c.reset(ctx)
}
