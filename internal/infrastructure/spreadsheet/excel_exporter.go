// Package spreadsheet exporta productos a XLSX con excelize.
package spreadsheet

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/supermercado-dashboard/internal/application/usecase"
)

const sheetName = "Produtos"

var header = []interface{}{
	"id",
	"código",
	"produto",
	"categoria",
	"marca",
	"fornecedor",
	"unidade",
	"preço",
	"preço promocional",
	"estoque",
	"estoque mínimo",
	"ativo",
	"valor em estoque",
}

// ExcelExporter implementa usecase.ProductSheetExporter.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// ExportProducts una fila por producto más una fila final con el valor total.
func (e *ExcelExporter) ExportProducts(_ context.Context, report usecase.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	// Precios como números (no texto) para que la planilla pueda sumarlos.
	row := 2
	for _, r := range report.Rows {
		p := r.Product
		var promo interface{} = ""
		if p.OnPromotion() {
			promo = p.PromotionalPrice.Decimal.InexactFloat64()
		}
		excelRow := []interface{}{
			p.ID,
			p.Code,
			p.Name,
			r.CategoryName,
			deref(p.Brand),
			deref(p.Supplier),
			string(p.Unit),
			p.Price.InexactFloat64(),
			promo,
			p.Stock,
			p.MinStock,
			p.Active,
			p.StockValue().InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", row, err)
		}
		row++
	}

	totalLabel, _ := excelize.CoordinatesToCellName(len(header)-1, row)
	totalCell, _ := excelize.CoordinatesToCellName(len(header), row)
	if err := f.SetCellValue(sheetName, totalLabel, "total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, totalCell, report.Stats.TotalStockValue.InexactFloat64()); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, totalLabel, totalCell, bold); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
