package repository

import "github.com/jhoicas/Herramientas-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByCompanyAndName(companyID, name string) (*entity.Role, error)
	Update(role *entity.Role) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Role, error)
	Delete(id string) error
}
