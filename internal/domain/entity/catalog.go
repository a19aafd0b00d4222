package entity

import "slices"

// Unit unidad de medida del producto.
type Unit string

const (
	UnitPiece      Unit = "un"
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitBox        Unit = "cx"
	UnitPackage    Unit = "pct"
)

// Units en el orden en que se ofrecen en el formulario.
var Units = []Unit{UnitPiece, UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitBox, UnitPackage}

var unitLabels = map[Unit]string{
	UnitPiece:      "Unidade",
	UnitKilogram:   "Quilograma",
	UnitGram:       "Grama",
	UnitLiter:      "Litro",
	UnitMilliliter: "Mililitro",
	UnitBox:        "Caixa",
	UnitPackage:    "Pacote",
}

// Valid indica si u pertenece al conjunto de unidades.
func (u Unit) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

// Label etiqueta legible de la unidad ("" si no es válida).
func (u Unit) Label() string { return unitLabels[u] }

// CategoryColors paleta fija de colores de categoría.
var CategoryColors = []string{
	"#EF4444", // red
	"#F97316", // orange
	"#F59E0B", // amber
	"#84CC16", // lime
	"#22C55E", // green
	"#14B8A6", // teal
	"#06B6D4", // cyan
	"#3B82F6", // blue
	"#6366F1", // indigo
	"#8B5CF6", // violet
	"#A855F7", // purple
	"#EC4899", // pink
}

// CategoryIcons conjunto fijo de íconos de categoría.
var CategoryIcons = []string{
	"shopping-cart", "package", "milk", "beef", "carrot",
	"apple", "cookie", "coffee", "wine", "spray-can",
	"shirt", "baby", "dog", "snowflake", "flame",
}

// IsCategoryColor indica si c está en la paleta.
func IsCategoryColor(c string) bool { return slices.Contains(CategoryColors, c) }

// IsCategoryIcon indica si i está en el conjunto de íconos.
func IsCategoryIcon(i string) bool { return slices.Contains(CategoryIcons, i) }
