package memory

import (
	"sort"

	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación en memoria de RoleRepository.
type RoleRepo struct {
	s *Store
}

func NewRoleRepository(s *Store) *RoleRepo { return &RoleRepo{s: s} }

func (r *RoleRepo) Create(role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.roles {
		if existing.CompanyID == role.CompanyID && existing.Name == role.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.roles[role.ID] = cloneRole(role)
	return nil
}

func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.roles[id]
	if !ok {
		return nil, nil
	}
	return cloneRole(role), nil
}

func (r *RoleRepo) GetByCompanyAndName(companyID, name string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, role := range r.s.roles {
		if role.CompanyID == companyID && role.Name == name {
			return cloneRole(role), nil
		}
	}
	return nil, nil
}

func (r *RoleRepo) Update(role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.roles[role.ID] = cloneRole(role)
	return nil
}

func (r *RoleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Role
	for _, role := range r.s.roles {
		if role.CompanyID == companyID {
			list = append(list, cloneRole(role))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func (r *RoleRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.roles, id)
	return nil
}
