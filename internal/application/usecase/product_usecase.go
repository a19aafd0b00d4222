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

const productEntity = "product"

// ProductUseCase casos de uso de productos sobre las colecciones en memoria.
type ProductUseCase struct {
	catalog  Catalog
	recorder ValidationRecorder
	log      zerolog.Logger
}

// NewProductUseCase construye el caso de uso. recorder puede ser nil.
func NewProductUseCase(catalog Catalog, recorder ValidationRecorder, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{catalog: catalog, recorder: recorder, log: log}
}

// List aplica filtro y orden sobre la colección completa.
func (uc *ProductUseCase) List(ctx context.Context, filter inventory.ProductFilter) (*dto.ProductListResponse, error) {
	products, categories, err := uc.catalog.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	list := inventory.FilterProducts(products, filter)
	return &dto.ProductListResponse{
		Items: toProductResponses(list, categoryIndex(categories)),
		Total: len(list),
	}, nil
}

// GetByID devuelve domain.ErrNotFound si el producto no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if err := uc.catalog.Load(ctx); err != nil {
		return nil, err
	}
	p, ok := uc.catalog.Products.Find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p, categoryIndex(uc.catalog.Categories.Items()))
	return &out, nil
}

// Create valida el formulario y agrega el producto. La categoría debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductForm) (*dto.ProductResponse, error) {
	unlock := uc.catalog.lockReferences()
	defer unlock()
	draft, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	p, err := uc.catalog.Products.Add(ctx, draft)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("producto creado")
	return uc.response(p), nil
}

// Update reemplaza todos los campos editables con el formulario; los opcionales vacíos se eliminan.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductForm) (*dto.ProductResponse, error) {
	unlock := uc.catalog.lockReferences()
	defer unlock()
	draft, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	p, err := uc.catalog.Products.Update(ctx, id, entity.PatchFromDraft(draft))
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Msg("producto actualizado")
	return uc.response(p), nil
}

// SetActive activa o desactiva un producto.
func (uc *ProductUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.ProductResponse, error) {
	if err := uc.catalog.Load(ctx); err != nil {
		return nil, err
	}
	p, err := uc.catalog.Products.Update(ctx, id, entity.ProductPatch{Active: &active})
	if err != nil {
		return nil, err
	}
	return uc.response(p), nil
}

// AdjustStock fija el stock actual (actualización parcial).
func (uc *ProductUseCase) AdjustStock(ctx context.Context, id string, stock int) (*dto.ProductResponse, error) {
	if stock < 0 {
		uc.rejected()
		return nil, invalid(productEntity, form.FieldStock, "El stock no puede ser negativo")
	}
	if err := uc.catalog.Load(ctx); err != nil {
		return nil, err
	}
	p, err := uc.catalog.Products.Update(ctx, id, entity.ProductPatch{Stock: &stock})
	if err != nil {
		return nil, err
	}
	if p.IsLowStock() {
		uc.log.Warn().Str("product_id", p.ID).Int("stock", p.Stock).Int("min_stock", p.MinStock).Msg("producto con stock bajo")
	}
	return uc.response(p), nil
}

// Delete elimina el producto; domain.ErrNotFound si no existía.
// No toma el candado de referencias: quitar un producto nunca deja una categoría colgante.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.catalog.Products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

func (uc *ProductUseCase) validate(ctx context.Context, in dto.ProductForm) (entity.ProductDraft, error) {
	draft, fields := form.ValidateProduct(in)
	if !fields.Empty() {
		uc.rejected()
		return entity.ProductDraft{}, &ValidationError{Entity: productEntity, Fields: fields}
	}
	if err := uc.catalog.Load(ctx); err != nil {
		return entity.ProductDraft{}, err
	}
	if _, ok := uc.catalog.Categories.Find(draft.CategoryID); !ok {
		uc.rejected()
		return entity.ProductDraft{}, invalid(productEntity, form.FieldCategoryID, "La categoría seleccionada no existe")
	}
	return draft, nil
}

func (uc *ProductUseCase) rejected() {
	if uc.recorder != nil {
		uc.recorder.ValidationFailed(productEntity)
	}
}

// response requiere el catálogo cargado: con Categories sin cargar toda categoría saldría desconocida.
func (uc *ProductUseCase) response(p entity.Product) *dto.ProductResponse {
	out := toProductResponse(p, categoryIndex(uc.catalog.Categories.Items()))
	return &out
}
