package memory

import (
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.ToolHistoryRepository = (*ToolHistoryRepo)(nil)

// ToolHistoryRepo implementación en memoria de ToolHistoryRepository.
// Append-only, igual que la versión de PostgreSQL.
type ToolHistoryRepo struct {
	s *Store
}

func NewToolHistoryRepository(s *Store) *ToolHistoryRepo { return &ToolHistoryRepo{s: s} }

func (r *ToolHistoryRepo) Create(record *entity.ToolHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.history = append(r.s.history, cloneHistory(record))
	return nil
}

// detail resuelve los nombres igual que el LEFT JOIN de la versión postgres.
// Debe llamarse con el mutex tomado.
func (r *ToolHistoryRepo) detail(h *entity.ToolHistory) *entity.ToolHistoryDetail {
	d := entity.ToolHistoryDetail{ToolHistory: *h}
	if t, ok := r.s.tools[h.ToolID]; ok {
		d.ToolName = t.Name
	}
	if u, ok := r.s.users[h.ActorID]; ok {
		d.ActorName = u.Name
	}
	if u, ok := r.s.users[h.FromUserID]; ok {
		d.FromUserName = u.Name
	}
	if w, ok := r.s.warehouses[h.FromWarehouseID]; ok {
		d.FromWarehouseName = w.Name
	}
	if u, ok := r.s.users[h.ToUserID]; ok {
		d.ToUserName = u.Name
	}
	if w, ok := r.s.warehouses[h.ToWarehouseID]; ok {
		d.ToWarehouseName = w.Name
	}
	return &d
}

func (r *ToolHistoryRepo) ListByTool(toolID string, limit, offset int) ([]*entity.ToolHistoryDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ToolHistoryDetail
	// más reciente primero: el historial se guarda en orden de inserción
	for i := len(r.s.history) - 1; i >= 0; i-- {
		if r.s.history[i].ToolID == toolID {
			list = append(list, r.detail(r.s.history[i]))
		}
	}
	return page(list, limit, offset), nil
}

func (r *ToolHistoryRepo) ListRecentByCompany(companyID string, limit int) ([]*entity.ToolHistoryDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ToolHistoryDetail
	for i := len(r.s.history) - 1; i >= 0; i-- {
		if r.s.history[i].CompanyID == companyID {
			list = append(list, r.detail(r.s.history[i]))
		}
	}
	return page(list, limit, 0), nil
}
