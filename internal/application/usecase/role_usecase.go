package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
	"github.com/jhoicas/Herramientas-api/internal/domain/tenant"
)

// RoleUseCase casos de uso para roles. Toda la gestión de roles se protege
// en la capa HTTP por el flag IsBoss del caller, no por tokens de capacidad:
// un rol no-boss no puede concederse derechos de gestión de roles.
type RoleUseCase struct {
	repo     repository.RoleRepository
	userRepo repository.UserRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, userRepo repository.UserRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo, userRepo: userRepo}
}

// Create crea un rol. Los tokens se validan contra el registro cerrado;
// IsBoss nunca se concede por esta vía.
func (uc *RoleUseCase) Create(companyID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	perms, err := permission.ParseAll(in.Permissions)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe un rol llamado %q: %w", in.Name, domain.ErrDuplicate)
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Permissions: perms,
		IsBoss:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// GetByID obtiene un rol de la empresa del caller.
func (uc *RoleUseCase) GetByID(companyID, id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(role, companyID); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Update actualiza un rol. Los roles boss son inmutables.
func (uc *RoleUseCase) Update(companyID, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(role, companyID); err != nil {
		return nil, err
	}
	if role.IsBoss {
		return nil, fmt.Errorf("el rol boss es inmutable: %w", domain.ErrConflict)
	}
	if in.Name != nil && *in.Name != role.Name {
		existing, err := uc.repo.GetByCompanyAndName(companyID, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("ya existe un rol llamado %q: %w", *in.Name, domain.ErrDuplicate)
		}
		role.Name = *in.Name
	}
	if in.Permissions != nil {
		perms, err := permission.ParseAll(in.Permissions)
		if err != nil {
			return nil, err
		}
		role.Permissions = perms
	}
	role.UpdatedAt = time.Now()
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// List lista roles por empresa con paginación.
func (uc *RoleUseCase) List(companyID string, limit, offset int) (*dto.RoleListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un rol. Se rechaza si es boss o si tiene usuarios asignados.
func (uc *RoleUseCase) Delete(companyID, id string) error {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := tenant.Authorize(role, companyID); err != nil {
		return err
	}
	if role.IsBoss {
		return fmt.Errorf("el rol boss no puede eliminarse: %w", domain.ErrConflict)
	}
	count, err := uc.userRepo.CountByRole(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("el rol tiene %d usuario(s) asignado(s): %w", count, domain.ErrConflict)
	}
	return uc.repo.Delete(id)
}

// Permissions expone el catálogo de tokens conocidos.
func (uc *RoleUseCase) Permissions() []string {
	return permission.Strings(permission.All())
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Permissions: permission.Strings(r.Permissions),
		IsBoss:      r.IsBoss,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
