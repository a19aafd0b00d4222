// Package form valida los formularios del operador antes de cualquier escritura.
// Un formulario inválido devuelve el mapa campo -> mensaje y ningún borrador: no hay escrituras parciales.
package form

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-dashboard/internal/application/dto"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

// Claves de campo usadas en dto.FieldErrors (coinciden con los nombres JSON del formulario).
const (
	FieldName             = "name"
	FieldDescription      = "description"
	FieldPrice            = "price"
	FieldPromotionalPrice = "promotional_price"
	FieldCategoryID       = "category_id"
	FieldCode             = "code"
	FieldStock            = "stock"
	FieldMinStock         = "min_stock"
	FieldUnit             = "unit"
	FieldColor            = "color"
	FieldIcon             = "icon"
)

// ValidateCategory valida el formulario de categoría. Color e ícono vacíos toman el primero del catálogo.
func ValidateCategory(in dto.CategoryForm) (entity.CategoryDraft, dto.FieldErrors) {
	errs := dto.FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs.Set(FieldName, "El nombre es obligatorio")
	}

	color := strings.ToUpper(strings.TrimSpace(in.Color))
	if color == "" {
		color = entity.CategoryColors[0]
	} else if !entity.IsCategoryColor(color) {
		errs.Set(FieldColor, "Color fuera de la paleta")
	}

	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = entity.CategoryIcons[0]
	} else if !entity.IsCategoryIcon(icon) {
		errs.Set(FieldIcon, "Ícono no reconocido")
	}

	if !errs.Empty() {
		return entity.CategoryDraft{}, errs
	}
	return entity.CategoryDraft{
		Name:        name,
		Description: optional(in.Description),
		Color:       color,
		Icon:        icon,
	}, nil
}

// ValidateProduct valida el formulario de producto y convierte los textos a sus tipos.
func ValidateProduct(in dto.ProductForm) (entity.ProductDraft, dto.FieldErrors) {
	errs := dto.FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs.Set(FieldName, "El nombre es obligatorio")
	}

	price, priceOK := parseMoney(in.Price)
	switch {
	case strings.TrimSpace(in.Price) == "":
		errs.Set(FieldPrice, "El precio es obligatorio")
	case !priceOK:
		errs.Set(FieldPrice, "El precio no es un número válido")
	case !price.IsPositive():
		errs.Set(FieldPrice, "El precio debe ser mayor que cero")
	}

	var promo decimal.NullDecimal
	if strings.TrimSpace(in.PromotionalPrice) != "" {
		v, ok := parseMoney(in.PromotionalPrice)
		switch {
		case !ok:
			errs.Set(FieldPromotionalPrice, "El precio promocional no es un número válido")
		case v.IsNegative():
			errs.Set(FieldPromotionalPrice, "El precio promocional no puede ser negativo")
		case priceOK && v.GreaterThanOrEqual(price):
			errs.Set(FieldPromotionalPrice, "El precio promocional debe ser menor que el precio normal")
		default:
			promo = decimal.NewNullDecimal(v)
		}
	}

	categoryID := strings.TrimSpace(in.CategoryID)
	if categoryID == "" {
		errs.Set(FieldCategoryID, "Seleccione una categoría")
	}

	code := strings.TrimSpace(in.Code)
	if code == "" {
		errs.Set(FieldCode, "El código es obligatorio")
	}

	stock := parseCount(errs, FieldStock, in.Stock, "El stock")
	minStock := parseCount(errs, FieldMinStock, in.MinStock, "El stock mínimo")

	unit := entity.Unit(strings.ToLower(strings.TrimSpace(in.Unit)))
	if unit == "" {
		unit = entity.UnitPiece
	} else if !unit.Valid() {
		errs.Set(FieldUnit, "Unidad de medida no reconocida")
	}

	if !errs.Empty() {
		return entity.ProductDraft{}, errs
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return entity.ProductDraft{
		Name:             name,
		Description:      optional(in.Description),
		Price:            price,
		PromotionalPrice: promo,
		CategoryID:       categoryID,
		Code:             code,
		Stock:            stock,
		MinStock:         minStock,
		Unit:             unit,
		Brand:            optional(in.Brand),
		Supplier:         optional(in.Supplier),
		Image:            optional(in.Image),
		Active:           active,
	}, nil
}

// parseMoney acepta punto o coma como separador decimal ("4,99").
func parseMoney(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseCount valida un entero obligatorio >= 0; registra el error en errs.
func parseCount(errs dto.FieldErrors, field, raw, label string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs.Set(field, label+" es obligatorio")
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Set(field, label+" debe ser un número entero")
		return 0
	}
	if n < 0 {
		errs.Set(field, label+" no puede ser negativo")
		return 0
	}
	return n
}

// optional recorta y convierte "" en ausente.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
