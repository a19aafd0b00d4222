package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del supermercado.
// CategoryID es un identificador simple: el almacenamiento no valida que la categoría exista.
type Product struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      *string             `json:"description,omitempty"`
	Price            decimal.Decimal     `json:"price"`
	PromotionalPrice decimal.NullDecimal `json:"promotionalPrice"`
	CategoryID       string              `json:"categoryId"`
	Code             string              `json:"code"` // SKU o código de barras, sin unicidad
	Stock            int                 `json:"stock"`
	MinStock         int                 `json:"minStock"`
	Unit             Unit                `json:"unit"`
	Brand            *string             `json:"brand,omitempty"`
	Supplier         *string             `json:"supplier,omitempty"`
	Image            *string             `json:"image,omitempty"`
	Active           bool                `json:"active"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// RecordID implementa la restricción de registros del almacén.
func (p Product) RecordID() string { return p.ID }

// IsLowStock indica si el stock está en o por debajo del mínimo.
func (p Product) IsLowStock() bool { return p.Stock <= p.MinStock }

// OnPromotion indica si el producto tiene precio promocional definido.
func (p Product) OnPromotion() bool { return p.PromotionalPrice.Valid }

// EffectivePrice devuelve el precio promocional si existe; si no, el precio normal.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.PromotionalPrice.Valid {
		return p.PromotionalPrice.Decimal
	}
	return p.Price
}

// StockValue devuelve EffectivePrice * Stock.
func (p Product) StockValue() decimal.Decimal {
	return p.EffectivePrice().Mul(decimal.NewFromInt(int64(p.Stock)))
}

// ProductDraft datos de un producto antes de que el almacén asigne ID y fechas.
type ProductDraft struct {
	Name             string
	Description      *string
	Price            decimal.Decimal
	PromotionalPrice decimal.NullDecimal
	CategoryID       string
	Code             string
	Stock            int
	MinStock         int
	Unit             Unit
	Brand            *string
	Supplier         *string
	Image            *string
	Active           bool
}

// NewProduct construye el registro completo a partir del borrador.
func NewProduct(id string, d ProductDraft, now time.Time) Product {
	return Product{
		ID:               id,
		Name:             d.Name,
		Description:      d.Description,
		Price:            d.Price,
		PromotionalPrice: d.PromotionalPrice,
		CategoryID:       d.CategoryID,
		Code:             d.Code,
		Stock:            d.Stock,
		MinStock:         d.MinStock,
		Unit:             d.Unit,
		Brand:            d.Brand,
		Supplier:         d.Supplier,
		Image:            d.Image,
		Active:           d.Active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ProductPatch actualización parcial. nil = sin cambios.
// Un puntero a "" en los campos opcionales los elimina; igual que un NullDecimal inválido en PromotionalPrice.
type ProductPatch struct {
	Name             *string
	Description      *string
	Price            *decimal.Decimal
	PromotionalPrice *decimal.NullDecimal
	CategoryID       *string
	Code             *string
	Stock            *int
	MinStock         *int
	Unit             *Unit
	Brand            *string
	Supplier         *string
	Image            *string
	Active           *bool
}

// PatchFromDraft construye un patch que reemplaza todos los campos editables,
// incluyendo la eliminación de opcionales vacíos.
func PatchFromDraft(d ProductDraft) ProductPatch {
	return ProductPatch{
		Name:             &d.Name,
		Description:      clearable(d.Description),
		Price:            &d.Price,
		PromotionalPrice: &d.PromotionalPrice,
		CategoryID:       &d.CategoryID,
		Code:             &d.Code,
		Stock:            &d.Stock,
		MinStock:         &d.MinStock,
		Unit:             &d.Unit,
		Brand:            clearable(d.Brand),
		Supplier:         clearable(d.Supplier),
		Image:            clearable(d.Image),
		Active:           &d.Active,
	}
}

// Apply fusiona el patch sobre p. No toca ID ni fechas.
func (pt ProductPatch) Apply(p *Product) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Description != nil {
		p.Description = optional(*pt.Description)
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.PromotionalPrice != nil {
		p.PromotionalPrice = *pt.PromotionalPrice
	}
	if pt.CategoryID != nil {
		p.CategoryID = *pt.CategoryID
	}
	if pt.Code != nil {
		p.Code = *pt.Code
	}
	if pt.Stock != nil {
		p.Stock = *pt.Stock
	}
	if pt.MinStock != nil {
		p.MinStock = *pt.MinStock
	}
	if pt.Unit != nil {
		p.Unit = *pt.Unit
	}
	if pt.Brand != nil {
		p.Brand = optional(*pt.Brand)
	}
	if pt.Supplier != nil {
		p.Supplier = optional(*pt.Supplier)
	}
	if pt.Image != nil {
		p.Image = optional(*pt.Image)
	}
	if pt.Active != nil {
		p.Active = *pt.Active
	}
}

// optional convierte "" en ausente.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// clearable convierte un opcional ausente en un puntero a "" (elimina al aplicar).
func clearable(s *string) *string {
	if s == nil {
		empty := ""
		return &empty
	}
	v := *s
	return &v
}
