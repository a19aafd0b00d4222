package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/entity"
	"github.com/jhoicas/supermercado-dashboard/internal/domain/inventory"
)

// ValidationRecorder recibe un aviso por cada formulario rechazado (métricas).
type ValidationRecorder interface {
	ValidationFailed(entity string)
}

// InventoryReport datos que consumen los generadores de reportes.
type InventoryReport struct {
	Title       string
	GeneratedAt time.Time
	Filter      inventory.ProductFilter
	Stats       inventory.Stats
	Rows        []ReportRow
}

// ReportRow producto con el nombre de su categoría ya resuelto.
type ReportRow struct {
	Product      entity.Product
	CategoryName string
}

// InventoryPDFGenerator genera el reporte de inventario en PDF.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report InventoryReport) ([]byte, error)
}

// ProductSheetExporter exporta la lista de productos como hoja de cálculo.
type ProductSheetExporter interface {
	ExportProducts(ctx context.Context, report InventoryReport) ([]byte, error)
}
