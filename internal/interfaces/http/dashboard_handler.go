package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-dashboard/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve indicadores, alertas de stock bajo, últimos productos y conteo por categoría.
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// Reload descarta la copia en memoria, relee el almacenamiento y devuelve el resumen nuevo.
// POST /api/reload
func (h *DashboardHandler) Reload(c *fiber.Ctx) error {
	summary, err := h.uc.Reload(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
