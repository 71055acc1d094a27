package history

import (
	"fmt"

	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
	"github.com/jhoicas/Herramientas-api/internal/domain/tenant"
)

// HistoryUseCase consultas sobre el historial de custodia. El historial es
// inmutable; la descripción legible se arma en la lectura combinando los
// nombres resueltos, nunca se almacena.
type HistoryUseCase struct {
	repo     repository.ToolHistoryRepository
	toolRepo repository.ToolRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.ToolHistoryRepository, toolRepo repository.ToolRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, toolRepo: toolRepo}
}

// ByTool devuelve el historial de una herramienta de la empresa del caller,
// más reciente primero.
func (uc *HistoryUseCase) ByTool(companyID, toolID string, limit, offset int) (*dto.HistoryListResponse, error) {
	tool, err := uc.toolRepo.GetByID(toolID)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(tool, companyID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByTool(toolID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toHistoryList(list, limit, offset), nil
}

// RecentByCompany devuelve los últimos movimientos de la empresa, cruzando
// todas las herramientas, más reciente primero.
func (uc *HistoryUseCase) RecentByCompany(companyID string, limit int) (*dto.HistoryListResponse, error) {
	list, err := uc.repo.ListRecentByCompany(companyID, limit)
	if err != nil {
		return nil, err
	}
	return toHistoryList(list, limit, 0), nil
}

func toHistoryList(list []*entity.ToolHistoryDetail, limit, offset int) *dto.HistoryListResponse {
	items := make([]dto.HistoryEntryResponse, 0, len(list))
	for _, h := range list {
		items = append(items, toHistoryEntry(h))
	}
	return &dto.HistoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toHistoryEntry(h *entity.ToolHistoryDetail) dto.HistoryEntryResponse {
	from := holderLabel(h.FromUserName, h.FromWarehouseName)
	to := holderLabel(h.ToUserName, h.ToWarehouseName)
	return dto.HistoryEntryResponse{
		ID:          h.ID,
		ToolID:      h.ToolID,
		ToolName:    h.ToolName,
		Action:      h.Action,
		ActorID:     h.ActorID,
		ActorName:   h.ActorName,
		From:        from,
		To:          to,
		Description: Describe(h),
		Notes:       h.Notes,
		CreatedAt:   h.CreatedAt,
	}
}

// Describe arma la descripción legible de un registro.
func Describe(h *entity.ToolHistoryDetail) string {
	actor := h.ActorName
	if actor == "" {
		actor = "alguien"
	}
	tool := h.ToolName
	if tool == "" {
		tool = "la herramienta"
	}
	switch h.Action {
	case entity.HistoryActionCheckIn:
		return fmt.Sprintf("%s devolvió %s a %s", actor, tool, holderLabel(h.ToUserName, h.ToWarehouseName))
	default: // TRANSFER
		return fmt.Sprintf("%s trasladó %s de %s a %s",
			actor, tool,
			holderLabel(h.FromUserName, h.FromWarehouseName),
			holderLabel(h.ToUserName, h.ToWarehouseName))
	}
}

// holderLabel nombra un lado de la custodia: usuario, bodega o sin ubicación
// (el lado "from" de una herramienta creada sin bodega).
func holderLabel(userName, warehouseName string) string {
	switch {
	case userName != "":
		return userName
	case warehouseName != "":
		return "la bodega " + warehouseName
	default:
		return "sin ubicación"
	}
}
