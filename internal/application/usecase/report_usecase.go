package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/inventory"
)

// ReportUseCase genera reportes descargables sobre la lista filtrada de productos.
type ReportUseCase struct {
	catalog  Catalog
	pdf      InventoryPDFGenerator
	exporter ProductSheetExporter
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando los generadores.
func NewReportUseCase(catalog Catalog, pdf InventoryPDFGenerator, exporter ProductSheetExporter) *ReportUseCase {
	return &ReportUseCase{catalog: catalog, pdf: pdf, exporter: exporter, now: time.Now}
}

// InventoryPDF devuelve el PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context, filter inventory.ProductFilter) ([]byte, string, error) {
	report, err := uc.build(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerateInventoryPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte pdf: %w", err)
	}
	return data, "inventario_" + report.GeneratedAt.Format("20060102_150405") + ".pdf", nil
}

// ProductsXLSX devuelve la hoja de cálculo y el nombre de archivo sugerido.
func (uc *ReportUseCase) ProductsXLSX(ctx context.Context, filter inventory.ProductFilter) ([]byte, string, error) {
	report, err := uc.build(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportProducts(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte xlsx: %w", err)
	}
	return data, "produtos_" + report.GeneratedAt.Format("20060102_150405") + ".xlsx", nil
}

// build los indicadores del reporte se calculan sobre la lista filtrada.
func (uc *ReportUseCase) build(ctx context.Context, filter inventory.ProductFilter) (InventoryReport, error) {
	products, categories, err := uc.catalog.snapshot(ctx)
	if err != nil {
		return InventoryReport{}, err
	}
	idx := categoryIndex(categories)
	list := inventory.FilterProducts(products, filter)
	rows := make([]ReportRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, ReportRow{Product: p, CategoryName: categoryName(idx, p.CategoryID)})
	}
	return InventoryReport{
		Title:       "Relatório de estoque",
		GeneratedAt: uc.now(),
		Filter:      filter,
		Stats:       inventory.ComputeStats(list, categories),
		Rows:        rows,
	}, nil
}
