package inventory

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

// Status predicado de estado del listado de productos.
type Status string

const (
	StatusAny       Status = ""
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusLowStock  Status = "low_stock"
	StatusPromotion Status = "promotion"
)

// SortKey criterio de ordenación del listado.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByPrice  SortKey = "price"
	SortByStock  SortKey = "stock"
	SortByRecent SortKey = "recent"
)

// collationTag idioma usado para comparar nombres.
var collationTag = language.BrazilianPortuguese

// ParseStatus acepta los valores del API y sus equivalentes en portugués.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return StatusAny, true
	case "active", "ativo":
		return StatusActive, true
	case "inactive", "inativo":
		return StatusInactive, true
	case "low_stock", "low-stock", "baixo_estoque":
		return StatusLowStock, true
	case "promotion", "on-promotion", "promocao":
		return StatusPromotion, true
	}
	return StatusAny, false
}

// ParseSortKey devuelve SortByName para "" y false para claves desconocidas.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name", "nome":
		return SortByName, true
	case "price", "preco":
		return SortByPrice, true
	case "stock", "estoque":
		return SortByStock, true
	case "recent", "most-recent", "recente":
		return SortByRecent, true
	}
	return SortByName, false
}

// ProductFilter parámetros del listado. Los filtros vacíos no restringen.
type ProductFilter struct {
	Query      string
	CategoryID string
	Status     Status
	Sort       SortKey
}

// FilterProducts aplica búsqueda, categoría y estado (AND) y ordena de forma estable.
// Nunca modifica products; siempre devuelve un slice nuevo.
func FilterProducts(products []entity.Product, f ProductFilter) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	query := strings.ToLower(f.Query)
	for _, p := range products {
		if f.Query != "" && !matchesQuery(p, f.Query, query) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if !matchesStatus(p, f.Status) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f.Sort)
	return out
}

// matchesQuery: nombre y marca sin distinguir mayúsculas; código como substring exacto.
func matchesQuery(p entity.Product, raw, lowered string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowered) {
		return true
	}
	if strings.Contains(p.Code, raw) {
		return true
	}
	return p.Brand != nil && strings.Contains(strings.ToLower(*p.Brand), lowered)
}

func matchesStatus(p entity.Product, s Status) bool {
	switch s {
	case StatusActive:
		return p.Active
	case StatusInactive:
		return !p.Active
	case StatusLowStock:
		return p.IsLowStock()
	case StatusPromotion:
		return p.OnPromotion()
	default:
		return true
	}
}

func sortProducts(list []entity.Product, key SortKey) {
	switch key {
	case SortByPrice:
		slices.SortStableFunc(list, func(a, b entity.Product) int { return a.Price.Cmp(b.Price) })
	case SortByStock:
		slices.SortStableFunc(list, func(a, b entity.Product) int { return a.Stock - b.Stock })
	case SortByRecent:
		slices.SortStableFunc(list, byRecent)
	default:
		// collate.Collator no es seguro para uso concurrente: uno por llamada.
		c := collate.New(collationTag)
		slices.SortStableFunc(list, func(a, b entity.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	}
}

func byRecent(a, b entity.Product) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}
