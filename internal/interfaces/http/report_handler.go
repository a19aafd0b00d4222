package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-dashboard/internal/application/usecase"
)

// ReportHandler descargas de reportes. Acepta los mismos filtros que GET /api/products.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	filter, bad := parseFilter(c)
	if bad != nil {
		return c.Status(fiber.StatusBadRequest).JSON(bad)
	}
	data, filename, err := h.uc.InventoryPDF(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	return c.Send(data)
}

// ProductsXLSX godoc
// @Summary      Exportar productos a XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/reports/products.xlsx [get]
func (h *ReportHandler) ProductsXLSX(c *fiber.Ctx) error {
	filter, bad := parseFilter(c)
	if bad != nil {
		return c.Status(fiber.StatusBadRequest).JSON(bad)
	}
	data, filename, err := h.uc.ProductsXLSX(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	return c.Send(data)
}
