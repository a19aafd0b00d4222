package form_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-dashboard/internal/application/dto"
	"github.com/jhoicas/supermercado-dashboard/internal/application/form"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

func validProduct() dto.ProductForm {
	return dto.ProductForm{
		Name:       "Arroz Tio João 5kg",
		Price:      "10",
		CategoryID: "1",
		Code:       "7891234567890",
		Stock:      "3",
		MinStock:   "1",
	}
}

// ── Producto ──────────────────────────────────────────────────────────────────

func TestValidateProduct_Valido(t *testing.T) {
	draft, errs := form.ValidateProduct(validProduct())
	require.Nil(t, errs)
	assert.Equal(t, "Arroz Tio João 5kg", draft.Name)
	assert.True(t, draft.Price.Equal(decimal.NewFromInt(10)))
	assert.False(t, draft.PromotionalPrice.Valid)
	assert.Equal(t, 3, draft.Stock)
	assert.Equal(t, 1, draft.MinStock)
	assert.Equal(t, entity.UnitPiece, draft.Unit)
	assert.True(t, draft.Active)
}

func TestValidateProduct_PromocionalIgualAlPrecioFalla(t *testing.T) {
	in := validProduct()
	in.PromotionalPrice = "10"
	_, errs := form.ValidateProduct(in)
	require.NotNil(t, errs)
	assert.Contains(t, errs, form.FieldPromotionalPrice)
	assert.Len(t, errs, 1)
}

func TestValidateProduct_PromocionalMenorPasa(t *testing.T) {
	in := validProduct()
	in.PromotionalPrice = "9.99"
	draft, errs := form.ValidateProduct(in)
	require.Nil(t, errs)
	require.True(t, draft.PromotionalPrice.Valid)
	assert.True(t, draft.PromotionalPrice.Decimal.Equal(decimal.RequireFromString("9.99")))
}

func TestValidateProduct_ComaDecimal(t *testing.T) {
	in := validProduct()
	in.Price = "24,90"
	in.PromotionalPrice = "19,90"
	draft, errs := form.ValidateProduct(in)
	require.Nil(t, errs)
	assert.True(t, draft.Price.Equal(decimal.RequireFromString("24.90")))
	assert.True(t, draft.PromotionalPrice.Decimal.Equal(decimal.RequireFromString("19.90")))
}

func TestValidateProduct_RecortaYOpcionalesVaciosAusentes(t *testing.T) {
	in := validProduct()
	in.Name = "  Feijão  "
	in.Code = " 123 "
	in.Description = "   "
	in.Brand = " Camil "
	in.Supplier = ""
	draft, errs := form.ValidateProduct(in)
	require.Nil(t, errs)
	assert.Equal(t, "Feijão", draft.Name)
	assert.Equal(t, "123", draft.Code)
	assert.Nil(t, draft.Description)
	require.NotNil(t, draft.Brand)
	assert.Equal(t, "Camil", *draft.Brand)
	assert.Nil(t, draft.Supplier)
	assert.Nil(t, draft.Image)
}

func TestValidateProduct_CamposObligatorios(t *testing.T) {
	_, errs := form.ValidateProduct(dto.ProductForm{Name: "   ", Code: " "})
	require.NotNil(t, errs)
	assert.Equal(t, []string{
		form.FieldCategoryID, form.FieldCode, form.FieldMinStock,
		form.FieldName, form.FieldPrice, form.FieldStock,
	}, errs.Fields())
}

func TestValidateProduct_ReglasNumericas(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*dto.ProductForm)
		field string
	}{
		{"precio cero", func(f *dto.ProductForm) { f.Price = "0" }, form.FieldPrice},
		{"precio negativo", func(f *dto.ProductForm) { f.Price = "-1" }, form.FieldPrice},
		{"precio no numérico", func(f *dto.ProductForm) { f.Price = "abc" }, form.FieldPrice},
		{"promo no numérica", func(f *dto.ProductForm) { f.PromotionalPrice = "x" }, form.FieldPromotionalPrice},
		{"promo mayor", func(f *dto.ProductForm) { f.PromotionalPrice = "11" }, form.FieldPromotionalPrice},
		{"stock negativo", func(f *dto.ProductForm) { f.Stock = "-1" }, form.FieldStock},
		{"stock decimal", func(f *dto.ProductForm) { f.Stock = "1.5" }, form.FieldStock},
		{"mínimo negativo", func(f *dto.ProductForm) { f.MinStock = "-3" }, form.FieldMinStock},
		{"unidad inválida", func(f *dto.ProductForm) { f.Unit = "ton" }, form.FieldUnit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validProduct()
			tc.edit(&in)
			draft, errs := form.ValidateProduct(in)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tc.field)
			assert.Equal(t, entity.ProductDraft{}, draft)
		})
	}
}

func TestValidateProduct_StockCeroPermitido(t *testing.T) {
	in := validProduct()
	in.Stock = "0"
	in.MinStock = "0"
	in.Unit = "KG"
	inactive := false
	in.Active = &inactive
	draft, errs := form.ValidateProduct(in)
	require.Nil(t, errs)
	assert.Equal(t, 0, draft.Stock)
	assert.Equal(t, entity.UnitKilogram, draft.Unit)
	assert.False(t, draft.Active)
}

// ── Categoría ─────────────────────────────────────────────────────────────────

func TestValidateCategory_NombreObligatorio(t *testing.T) {
	_, errs := form.ValidateCategory(dto.CategoryForm{Name: "  "})
	require.NotNil(t, errs)
	assert.Equal(t, []string{form.FieldName}, errs.Fields())
}

func TestValidateCategory_DefaultsDeCatalogo(t *testing.T) {
	draft, errs := form.ValidateCategory(dto.CategoryForm{Name: " Padaria ", Description: ""})
	require.Nil(t, errs)
	assert.Equal(t, "Padaria", draft.Name)
	assert.Nil(t, draft.Description)
	assert.Equal(t, entity.CategoryColors[0], draft.Color)
	assert.Equal(t, entity.CategoryIcons[0], draft.Icon)
}

func TestValidateCategory_ColorEIconoFueraDeCatalogo(t *testing.T) {
	_, errs := form.ValidateCategory(dto.CategoryForm{Name: "X", Color: "#000000", Icon: "rocket"})
	require.NotNil(t, errs)
	assert.Equal(t, []string{form.FieldColor, form.FieldIcon}, errs.Fields())

	draft, errs := form.ValidateCategory(dto.CategoryForm{Name: "X", Color: "#3b82f6", Icon: "milk"})
	require.Nil(t, errs)
	assert.Equal(t, "#3B82F6", draft.Color)
	assert.Equal(t, "milk", draft.Icon)
}
