package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Herramientas-api/internal/application/history"
)

// HistoryHandler maneja las consultas del historial de custodia a nivel
// empresa (protegido).
type HistoryHandler struct {
	uc *history.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *history.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Recent godoc
// @Summary      Últimos movimientos de la empresa (todas las herramientas)
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200    {object}  dto.HistoryListResponse
// @Router       /api/history [get]
func (h *HistoryHandler) Recent(c *fiber.Ctx) error {
	limit, _ := pageParams(c)
	out, err := h.uc.RecentByCompany(GetCompanyID(c), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
