package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Herramientas-api/internal/application/custody"
	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/application/history"
	"github.com/jhoicas/Herramientas-api/internal/application/usecase"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ToolHandler maneja las peticiones HTTP para Tool (protegido), incluidas
// las transiciones de custodia (transfer/checkin/assign/return).
type ToolHandler struct {
	uc        *usecase.ToolUseCase
	custodyUC *custody.CustodyUseCase
	historyUC *history.HistoryUseCase
}

// NewToolHandler construye el handler.
func NewToolHandler(uc *usecase.ToolUseCase, custodyUC *custody.CustodyUseCase, historyUC *history.HistoryUseCase) *ToolHandler {
	return &ToolHandler{uc: uc, custodyUC: custodyUC, historyUC: historyUC}
}

// Create godoc
// @Summary      Crear herramienta
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateToolRequest  true  "Datos de la herramienta"
// @Success      201   {object}  dto.ToolResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tools [post]
func (h *ToolHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateToolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.SerialNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y serial_number son requeridos"})
	}
	if in.Price.LessThan(decimal.Zero) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price no puede ser negativo"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener herramienta por ID
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la herramienta"
// @Success      200  {object}  dto.ToolResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tools/{id} [get]
func (h *ToolHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar herramienta (la custodia no se toca por aquí)
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la herramienta"
// @Param        body  body  dto.UpdateToolRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ToolResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tools/{id} [put]
func (h *ToolHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateToolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar herramientas
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ToolListResponse
// @Router       /api/tools [get]
func (h *ToolHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetCompanyID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar herramienta (no puede estar en manos de un usuario)
// @Tags         tools
// @Security     Bearer
// @Param        id  path  string  true  "ID de la herramienta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tools/{id} [delete]
func (h *ToolHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transfer godoc
// @Summary      Trasladar herramienta (exactamente un destino: usuario o bodega)
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la herramienta"
// @Param        body  body  dto.TransferToolRequest  true  "Destino del traslado"
// @Success      200   {object}  dto.ToolResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tools/{id}/transfer [post]
func (h *ToolHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferToolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tool, err := h.custodyUC.Transfer(c.Context(), custody.TransferInput{
		ToolID:        c.Params("id"),
		ToUserID:      in.ToUserID,
		ToWarehouseID: in.ToWarehouseID,
		ActorID:       GetUserID(c),
		CompanyID:     GetCompanyID(c),
		Notes:         in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toToolResponse(tool))
}

// CheckIn godoc
// @Summary      Devolver herramienta a bodega (explícita o por defecto)
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la herramienta"
// @Param        body  body  dto.CheckInToolRequest  true  "Bodega destino (opcional)"
// @Success      200   {object}  dto.ToolResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tools/{id}/checkin [post]
func (h *ToolHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInToolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tool, err := h.custodyUC.CheckIn(c.Context(), custody.CheckInInput{
		ToolID:      c.Params("id"),
		ActorID:     GetUserID(c),
		CompanyID:   GetCompanyID(c),
		WarehouseID: in.WarehouseID,
		Notes:       in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toToolResponse(tool))
}

// Assign godoc
// @Summary      Asignar herramienta disponible a un usuario
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la herramienta"
// @Param        body  body  dto.AssignToolRequest  true  "Usuario destino"
// @Success      200   {object}  dto.ToolResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tools/{id}/assign [post]
func (h *ToolHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignToolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ToUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to_user_id es requerido"})
	}
	tool, err := h.custodyUC.Assign(c.Context(), custody.AssignInput{
		ToolID:    c.Params("id"),
		ToUserID:  in.ToUserID,
		ActorID:   GetUserID(c),
		CompanyID: GetCompanyID(c),
		Notes:     in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toToolResponse(tool))
}

// Return godoc
// @Summary      Devolver una herramienta que el caller tiene en custodia
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la herramienta"
// @Param        body  body  dto.ReturnToolRequest  true  "Bodega destino (opcional)"
// @Success      200   {object}  dto.ToolResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tools/{id}/return [post]
func (h *ToolHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnToolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tool, err := h.custodyUC.Return(c.Context(), custody.ReturnInput{
		ToolID:      c.Params("id"),
		CallerID:    GetUserID(c),
		CompanyID:   GetCompanyID(c),
		WarehouseID: in.WarehouseID,
		Notes:       in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toToolResponse(tool))
}

// History godoc
// @Summary      Historial de custodia de una herramienta (más reciente primero)
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la herramienta"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.HistoryListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/tools/{id}/history [get]
func (h *ToolHandler) History(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.historyUC.ByTool(GetCompanyID(c), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// toToolResponse arma la respuesta desde la entidad (la custodia devuelve
// entidades, no DTOs, porque vive debajo de esta capa).
func toToolResponse(t *entity.Tool) *dto.ToolResponse {
	if t == nil {
		return nil
	}
	return &dto.ToolResponse{
		ID:            t.ID,
		CompanyID:     t.CompanyID,
		CategoryID:    t.CategoryID,
		SerialNumber:  t.SerialNumber,
		Name:          t.Name,
		Description:   t.Description,
		ImageURL:      t.ImageURL,
		Price:         t.Price,
		Status:        t.Status(),
		CurrentUserID: t.CurrentUserID,
		WarehouseID:   t.WarehouseID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
