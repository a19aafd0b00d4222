package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductForm entrada de creación/edición de producto, tal como la tipea el operador.
// Los números llegan como texto y se validan en el paquete form.
type ProductForm struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Price            string `json:"price"`
	PromotionalPrice string `json:"promotional_price"`
	CategoryID       string `json:"category_id"`
	Code             string `json:"code"`
	Stock            string `json:"stock"`
	MinStock         string `json:"min_stock"`
	Unit             string `json:"unit"`
	Brand            string `json:"brand"`
	Supplier         string `json:"supplier"`
	Image            string `json:"image"`
	Active           *bool  `json:"active"` // nil = activo
}

// StockRequest ajuste directo de stock.
type StockRequest struct {
	Stock *int `json:"stock"`
}

// ActiveRequest activa o desactiva un producto.
type ActiveRequest struct {
	Active *bool `json:"active"`
}

// ProductResponse salida de un producto, con los derivados que muestra el tablero.
type ProductResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      *string             `json:"description,omitempty"`
	Price            decimal.Decimal     `json:"price"`
	PromotionalPrice decimal.NullDecimal `json:"promotional_price"`
	EffectivePrice   decimal.Decimal     `json:"effective_price"`
	CategoryID       string              `json:"category_id"`
	CategoryName     string              `json:"category_name"`
	Code             string              `json:"code"`
	Stock            int                 `json:"stock"`
	MinStock         int                 `json:"min_stock"`
	Unit             string              `json:"unit"`
	UnitLabel        string              `json:"unit_label"`
	Brand            *string             `json:"brand,omitempty"`
	Supplier         *string             `json:"supplier,omitempty"`
	Image            *string             `json:"image,omitempty"`
	Active           bool                `json:"active"`
	LowStock         bool                `json:"low_stock"`
	OnPromotion      bool                `json:"on_promotion"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ProductListResponse lista filtrada de productos (sin paginación).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
