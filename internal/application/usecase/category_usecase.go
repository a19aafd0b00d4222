package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/supermercado-dashboard/internal/application/dto"
	"github.com/jhoicas/supermercado-dashboard/internal/application/form"
	"github.com/jhoicas/supermercado-dashboard/internal/domain"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/inventory"
)

const categoryEntity = "category"

// CategoryUseCase casos de uso de categorías.
// A diferencia del almacén, aquí no se permite borrar una categoría con productos vinculados.
type CategoryUseCase struct {
	catalog  Catalog
	recorder ValidationRecorder
	log      zerolog.Logger
}

// NewCategoryUseCase construye el caso de uso. recorder puede ser nil.
func NewCategoryUseCase(catalog Catalog, recorder ValidationRecorder, log zerolog.Logger) *CategoryUseCase {
	return &CategoryUseCase{catalog: catalog, recorder: recorder, log: log}
}

// List devuelve las categorías en orden de almacenamiento con su conteo de productos.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	products, categories, err := uc.catalog.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	counts := inventory.CountByCategory(products)
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryResponse(c, counts[c.ID]))
	}
	return &dto.CategoryListResponse{Items: items, Total: len(items)}, nil
}

// GetByID devuelve domain.ErrNotFound si la categoría no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	if err := uc.catalog.Load(ctx); err != nil {
		return nil, err
	}
	c, ok := uc.catalog.Categories.Find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toCategoryResponse(c, uc.productCount(id))
	return &out, nil
}

// Create valida y agrega la categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryForm) (*dto.CategoryResponse, error) {
	draft, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	c, err := uc.catalog.Categories.Add(ctx, draft)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", c.ID).Str("name", c.Name).Msg("categoría creada")
	out := toCategoryResponse(c, 0)
	return &out, nil
}

// Update reemplaza los campos editables de la categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryForm) (*dto.CategoryResponse, error) {
	draft, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	if err := uc.catalog.Load(ctx); err != nil {
		return nil, err
	}
	c, err := uc.catalog.Categories.Update(ctx, id, entity.CategoryPatchFromDraft(draft))
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", c.ID).Msg("categoría actualizada")
	out := toCategoryResponse(c, uc.productCount(id))
	return &out, nil
}

// Delete devuelve domain.ErrCategoryInUse si algún producto la referencia
// y domain.ErrNotFound si no existe.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	unlock := uc.catalog.lockReferences()
	defer unlock()
	if err := uc.catalog.Load(ctx); err != nil {
		return err
	}
	if n := uc.productCount(id); n > 0 {
		uc.log.Warn().Str("category_id", id).Int("products", n).Msg("categoría en uso, no se elimina")
		return domain.ErrCategoryInUse
	}
	ok, err := uc.catalog.Categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.log.Info().Str("category_id", id).Msg("categoría eliminada")
	return nil
}

func (uc *CategoryUseCase) productCount(id string) int {
	return inventory.CountByCategory(uc.catalog.Products.Items())[id]
}

func (uc *CategoryUseCase) validate(in dto.CategoryForm) (entity.CategoryDraft, error) {
	draft, fields := form.ValidateCategory(in)
	if !fields.Empty() {
		if uc.recorder != nil {
			uc.recorder.ValidationFailed(categoryEntity)
		}
		return entity.CategoryDraft{}, &ValidationError{Entity: categoryEntity, Fields: fields}
	}
	return draft, nil
}
