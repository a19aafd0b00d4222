package recordstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

// DefaultCategories categorías sembradas la primera vez que se lee un slot vacío.
// Devuelve copias nuevas en cada llamada.
func DefaultCategories(now time.Time) []entity.Category {
	seed := []struct {
		id, name, desc, color, icon string
	}{
		{"1", "Hortifruti", "Frutas, verduras e legumes frescos", "#22C55E", "carrot"},
		{"2", "Laticínios", "Leite, queijos, iogurtes e derivados", "#3B82F6", "milk"},
		{"3", "Carnes", "Carnes bovinas, suínas, aves e peixes", "#EF4444", "beef"},
		{"4", "Bebidas", "Refrigerantes, sucos, águas e bebidas alcoólicas", "#06B6D4", "wine"},
		{"5", "Padaria", "Pães, bolos e produtos de confeitaria", "#F59E0B", "cookie"},
		{"6", "Limpeza", "Produtos de limpeza doméstica", "#8B5CF6", "spray-can"},
		{"7", "Higiene", "Produtos de higiene pessoal", "#EC4899", "shirt"},
		{"8", "Congelados", "Alimentos congelados e sorvetes", "#14B8A6", "snowflake"},
	}
	out := make([]entity.Category, 0, len(seed))
	for _, s := range seed {
		out = append(out, entity.NewCategory(s.id, entity.CategoryDraft{
			Name:        s.name,
			Description: strPtr(s.desc),
			Color:       s.color,
			Icon:        s.icon,
		}, now))
	}
	return out
}

// DefaultProducts productos de ejemplo sembrados la primera vez que se lee un slot vacío.
func DefaultProducts(now time.Time) []entity.Product {
	seed := []struct {
		id    string
		draft entity.ProductDraft
	}{
		{"1", entity.ProductDraft{
			Name: "Leite Integral", Description: strPtr("Leite integral UHT 1L"),
			Price: dec("5.99"), CategoryID: "2", Code: "7891234567890",
			Stock: 150, MinStock: 20, Unit: entity.UnitPiece, Brand: strPtr("Italac"), Active: true,
		}},
		{"2", entity.ProductDraft{
			Name: "Banana Prata", Description: strPtr("Banana prata madura"),
			Price: dec("6.99"), PromotionalPrice: promo("4.99"), CategoryID: "1", Code: "2000000000001",
			Stock: 80, MinStock: 15, Unit: entity.UnitKilogram, Active: true,
		}},
		{"3", entity.ProductDraft{
			Name: "Picanha Bovina", Description: strPtr("Picanha bovina premium"),
			Price: dec("79.9"), CategoryID: "3", Code: "2000000000002",
			Stock: 25, MinStock: 10, Unit: entity.UnitKilogram, Brand: strPtr("Friboi"), Active: true,
		}},
		{"4", entity.ProductDraft{
			Name: "Coca-Cola 2L", Description: strPtr("Refrigerante Coca-Cola 2 litros"),
			Price: dec("10.99"), PromotionalPrice: promo("8.99"), CategoryID: "4", Code: "7891234567891",
			Stock: 200, MinStock: 30, Unit: entity.UnitPiece, Brand: strPtr("Coca-Cola"), Active: true,
		}},
		{"5", entity.ProductDraft{
			Name: "Pão Francês", Description: strPtr("Pão francês fresquinho"),
			Price: dec("14.9"), CategoryID: "5", Code: "2000000000003",
			Stock: 5, MinStock: 10, Unit: entity.UnitKilogram, Active: true,
		}},
		{"6", entity.ProductDraft{
			Name: "Detergente Ypê", Description: strPtr("Detergente líquido neutro 500ml"),
			Price: dec("2.49"), CategoryID: "6", Code: "7891234567892",
			Stock: 300, MinStock: 50, Unit: entity.UnitPiece, Brand: strPtr("Ypê"), Active: true,
		}},
		{"7", entity.ProductDraft{
			Name: "Pizza Congelada", Description: strPtr("Pizza de mussarela congelada 460g"),
			Price: dec("18.9"), PromotionalPrice: promo("14.9"), CategoryID: "8", Code: "7891234567893",
			Stock: 45, MinStock: 15, Unit: entity.UnitPiece, Brand: strPtr("Sadia"), Active: true,
		}},
		{"8", entity.ProductDraft{
			Name: "Sabonete Dove", Description: strPtr("Sabonete Dove original 90g"),
			Price: dec("4.99"), CategoryID: "7", Code: "7891234567894",
			Stock: 8, MinStock: 20, Unit: entity.UnitPiece, Brand: strPtr("Dove"), Active: false,
		}},
	}
	out := make([]entity.Product, 0, len(seed))
	for _, s := range seed {
		out = append(out, entity.NewProduct(s.id, s.draft, now))
	}
	return out
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func promo(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}
