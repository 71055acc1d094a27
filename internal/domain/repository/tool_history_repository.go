package repository

import "github.com/jhoicas/Herramientas-api/internal/domain/entity"

// ToolHistoryRepository define el puerto del historial de custodia.
// El historial es append-only: no hay Update ni Delete.
type ToolHistoryRepository interface {
	Create(record *entity.ToolHistory) error
	// ListByTool devuelve el historial de una herramienta, más reciente primero,
	// con nombres de actor/origen/destino resueltos al momento de la consulta.
	ListByTool(toolID string, limit, offset int) ([]*entity.ToolHistoryDetail, error)
	// ListRecentByCompany devuelve los últimos movimientos de la empresa,
	// cruzando todas las herramientas, más reciente primero.
	ListRecentByCompany(companyID string, limit int) ([]*entity.ToolHistoryDetail, error)
}
