package repository

import "github.com/jhoicas/Herramientas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail busca global: el email es único en todo el sistema.
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
	// CountByRole cuenta usuarios con el rol dado (bloquea la eliminación del rol).
	CountByRole(roleID string) (int, error)
}
