package memory

import (
	"sort"

	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.ToolRepository = (*ToolRepo)(nil)

// ToolRepo implementación en memoria de ToolRepository.
type ToolRepo struct {
	s *Store
}

func NewToolRepository(s *Store) *ToolRepo { return &ToolRepo{s: s} }

func (r *ToolRepo) Create(tool *entity.Tool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tools {
		if t.CompanyID == tool.CompanyID && t.SerialNumber == tool.SerialNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.tools[tool.ID] = cloneTool(tool)
	return nil
}

func (r *ToolRepo) GetByID(id string) (*entity.Tool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tools[id]
	if !ok {
		return nil, nil
	}
	return cloneTool(t), nil
}

// GetForUpdate no bloquea nada en memoria; las pruebas son secuenciales.
func (r *ToolRepo) GetForUpdate(id string) (*entity.Tool, error) {
	return r.GetByID(id)
}

func (r *ToolRepo) GetByCompanyAndSerial(companyID, serialNumber string) (*entity.Tool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tools {
		if t.CompanyID == companyID && t.SerialNumber == serialNumber {
			return cloneTool(t), nil
		}
	}
	return nil, nil
}

func (r *ToolRepo) Update(tool *entity.Tool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tools[tool.ID] = cloneTool(tool)
	return nil
}

func (r *ToolRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Tool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Tool
	for _, t := range r.s.tools {
		if t.CompanyID == companyID {
			list = append(list, cloneTool(t))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}

func (r *ToolRepo) ListByUser(userID string) ([]*entity.Tool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Tool
	for _, t := range r.s.tools {
		if t.CurrentUserID == userID {
			list = append(list, cloneTool(t))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	return list, nil
}

func (r *ToolRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.tools, id)
	return nil
}

func (r *ToolRepo) CountByWarehouse(warehouseID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, t := range r.s.tools {
		if t.WarehouseID == warehouseID {
			count++
		}
	}
	return count, nil
}

func (r *ToolRepo) CountByCategory(categoryID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, t := range r.s.tools {
		if t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *ToolRepo) CountByUser(userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, t := range r.s.tools {
		if t.CurrentUserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *ToolRepo) ClearCategory(categoryID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tools {
		if t.CategoryID == categoryID {
			t.CategoryID = ""
		}
	}
	return nil
}
