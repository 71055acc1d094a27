package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
	"github.com/jhoicas/Herramientas-api/internal/domain/tenant"
)

// UserUseCase casos de uso para usuarios de la empresa.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
	toolRepo repository.ToolRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository, toolRepo repository.ToolRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo, toolRepo: toolRepo}
}

// GetByID obtiene un usuario de la empresa del caller.
func (uc *UserUseCase) GetByID(companyID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(user, companyID); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista usuarios por empresa con paginación.
func (uc *UserUseCase) List(companyID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AssignRole asigna un rol (de la misma empresa) a un usuario.
func (uc *UserUseCase) AssignRole(companyID, userID, roleID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(user, companyID); err != nil {
		return nil, err
	}
	role, err := uc.roleRepo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(role, companyID); err != nil {
		return nil, err
	}
	user.RoleID = role.ID
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Tools lista las herramientas en custodia de un usuario de la empresa.
func (uc *UserUseCase) Tools(companyID, userID string) (*dto.ToolListResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(user, companyID); err != nil {
		return nil, err
	}
	list, err := uc.toolRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ToolResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toToolResponse(t))
	}
	return &dto.ToolListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// Delete elimina un usuario. Se rechaza si su rol es boss o si todavía
// tiene herramientas en custodia (deben devolverse primero).
func (uc *UserUseCase) Delete(companyID, id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := tenant.Authorize(user, companyID); err != nil {
		return err
	}
	if user.RoleID != "" {
		role, err := uc.roleRepo.GetByID(user.RoleID)
		if err != nil {
			return err
		}
		if role != nil && role.IsBoss {
			return fmt.Errorf("no se puede eliminar al usuario con rol boss: %w", domain.ErrConflict)
		}
	}
	held, err := uc.toolRepo.CountByUser(id)
	if err != nil {
		return err
	}
	if held > 0 {
		return fmt.Errorf("el usuario tiene %d herramienta(s) en custodia: %w", held, domain.ErrConflict)
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		RoleID:    u.RoleID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
