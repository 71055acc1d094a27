package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
	"github.com/jhoicas/Herramientas-api/internal/domain/tenant"
)

// CategoryUseCase casos de uso para categorías. Son puramente
// clasificatorias: eliminarlas no toca la custodia de las herramientas.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	txRunner EntityTxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, txRunner EntityTxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una categoría (Name único por empresa).
func (uc *CategoryUseCase) Create(companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe una categoría llamada %q: %w", in.Name, domain.ErrDuplicate)
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría de la empresa del caller.
func (uc *CategoryUseCase) GetByID(companyID, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(category, companyID); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(companyID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(category, companyID); err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, err := uc.repo.GetByCompanyAndName(companyID, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("ya existe una categoría llamada %q: %w", *in.Name, domain.ErrDuplicate)
		}
		category.Name = *in.Name
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías por empresa con paginación.
func (uc *CategoryUseCase) List(companyID string, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina la categoría desasociándola de sus herramientas en la misma
// transacción (no destructivo: las herramientas quedan sin categoría).
func (uc *CategoryUseCase) Delete(ctx context.Context, companyID, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := tenant.Authorize(category, companyID); err != nil {
		return err
	}
	return uc.txRunner.RunEntities(ctx, func(
		_ repository.WarehouseRepository,
		categoryRepo repository.CategoryRepository,
		toolRepo repository.ToolRepository,
	) error {
		if err := toolRepo.ClearCategory(id); err != nil {
			return err
		}
		return categoryRepo.Delete(id)
	})
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
