package usecase

import (
	"context"
	"sync"

	"github.com/jhoicas/supermercado-dashboard/internal/application/binding"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

// Catalog agrupa las dos colecciones en memoria que comparten todos los casos de uso.
// Construir con NewCatalog: las copias del valor comparten el mismo candado de referencias.
type Catalog struct {
	Products   *binding.ProductCollection
	Categories *binding.CategoryCollection

	refs *sync.Mutex
}

// NewCatalog agrupa las colecciones sin cargarlas.
func NewCatalog(products *binding.ProductCollection, categories *binding.CategoryCollection) Catalog {
	return Catalog{Products: products, Categories: categories, refs: &sync.Mutex{}}
}

// Load carga ambas colecciones (no-op si ya están cargadas).
func (c Catalog) Load(ctx context.Context) error {
	if err := c.Categories.Load(ctx); err != nil {
		return err
	}
	return c.Products.Load(ctx)
}

// Reload descarta la copia en memoria de ambas colecciones y las relee.
func (c Catalog) Reload(ctx context.Context) error {
	if err := c.Categories.Reload(ctx); err != nil {
		return err
	}
	return c.Products.Reload(ctx)
}

// lockReferences serializa las operaciones que comprueban y luego escriben la relación
// producto → categoría (alta/edición de producto, baja de categoría).
func (c Catalog) lockReferences() (unlock func()) {
	if c.refs == nil {
		return func() {}
	}
	c.refs.Lock()
	return c.refs.Unlock
}

// snapshot carga si hace falta y devuelve copias de ambas colecciones.
func (c Catalog) snapshot(ctx context.Context) ([]entity.Product, []entity.Category, error) {
	if err := c.Load(ctx); err != nil {
		return nil, nil, err
	}
	return c.Products.Items(), c.Categories.Items(), nil
}
