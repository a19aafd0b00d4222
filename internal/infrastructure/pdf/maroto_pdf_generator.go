// Package pdf implementa el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  FILTRO: búsqueda / categoría / estado / orden               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: productos, activos, stock bajo, promoción      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Categoría | Precio | Stock | Valor│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor total en stock                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-dashboard/internal/application/usecase"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 5, Green: 150, Blue: 105}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 220, Green: 38, Blue: 38}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.InventoryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(_ context.Context, report usecase.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(filterRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(report.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report usecase.InventoryReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func filterRow(report usecase.InventoryReport) core.Row {
	f := report.Filter
	parts := []string{
		"Busca: " + nonEmpty(f.Query, "—"),
		"Categoria: " + nonEmpty(f.CategoryID, "todas"),
		"Status: " + nonEmpty(string(f.Status), "todos"),
		"Ordem: " + nonEmpty(string(f.Sort), "name"),
	}
	return row.New(7).Add(col.New(12).Add(
		text.New(strings.Join(parts, "   |   "), props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

func statsRow(report usecase.InventoryReport) core.Row {
	s := report.Stats
	cell := func(label string, value int, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color, Top: 5,
			}),
		)
	}
	return row.New(14).Add(
		cell("PRODUTOS", s.TotalProducts, colorPrimary),
		cell("ATIVOS", s.ActiveProducts, colorPrimary),
		cell("ESTOQUE BAIXO", s.LowStockProducts, colorAlert),
		cell("EM PROMOÇÃO", s.PromotionalProducts, colorPrimary),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Produto", 4, align.Left),
		h("Categoria", 2, align.Left),
		h("Preço", 1, align.Right),
		h("Estoque", 1, align.Right),
		h("Valor", 2, align.Right),
	)
}

// tableDetailRows una fila por producto; stock bajo en rojo.
func tableDetailRows(rows []usecase.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		p := r.Product
		stockColor := colorGray
		if p.IsLowStock() {
			stockColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(p.Code, props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(4).Add(text.New(productLabel(p), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.CategoryName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(formatBRL(p.EffectivePrice()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d %s", p.Stock, p.Unit), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: stockColor,
			})),
			col.New(2).Add(text.New(formatBRL(p.StockValue()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(report usecase.InventoryReport) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("VALOR TOTAL EM ESTOQUE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(formatBRL(report.Stats.TotalStockValue), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func productLabel(p entity.Product) string {
	label := p.Name
	if !p.Active {
		label += " (inativo)"
	}
	if p.OnPromotion() {
		label += " *"
	}
	return label
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatBRL formatea en reales: 1234.5 -> "R$ 1.234,50".
func formatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "R$ " + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
