package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
	"github.com/jhoicas/Herramientas-api/internal/domain/tenant"
)

// ToolUseCase casos de uso CRUD para herramientas. La custodia no se muta
// por aquí: eso es territorio exclusivo de custody.CustodyUseCase.
type ToolUseCase struct {
	repo          repository.ToolRepository
	warehouseRepo repository.WarehouseRepository
	categoryRepo  repository.CategoryRepository
}

// NewToolUseCase construye el caso de uso.
func NewToolUseCase(repo repository.ToolRepository, warehouseRepo repository.WarehouseRepository, categoryRepo repository.CategoryRepository) *ToolUseCase {
	return &ToolUseCase{repo: repo, warehouseRepo: warehouseRepo, categoryRepo: categoryRepo}
}

// Create crea una herramienta. SerialNumber es único por empresa (pre-chequeo
// amable + constraint de la DB bajo concurrencia). La bodega se resuelve:
// explícita (validada contra la empresa) → bodega por defecto → sin custodia
// (estado transitorio permitido solo en la creación).
func (uc *ToolUseCase) Create(companyID string, in dto.CreateToolRequest) (*dto.ToolResponse, error) {
	existing, err := uc.repo.GetByCompanyAndSerial(companyID, in.SerialNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe una herramienta con serial %q: %w", in.SerialNumber, domain.ErrDuplicate)
	}

	warehouseID := ""
	if in.WarehouseID != "" {
		wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if err := tenant.Authorize(wh, companyID); err != nil {
			return nil, err
		}
		warehouseID = wh.ID
	} else {
		wh, err := uc.warehouseRepo.GetDefaultByCompany(companyID)
		if err != nil {
			return nil, err
		}
		if wh != nil {
			warehouseID = wh.ID
		}
	}

	if in.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if err := tenant.Authorize(cat, companyID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	tool := &entity.Tool{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		CategoryID:   in.CategoryID,
		SerialNumber: in.SerialNumber,
		Name:         in.Name,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Price:        in.Price,
		WarehouseID:  warehouseID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(tool); err != nil {
		return nil, err
	}
	return toToolResponse(tool), nil
}

// GetByID obtiene una herramienta de la empresa del caller.
func (uc *ToolUseCase) GetByID(companyID, id string) (*dto.ToolResponse, error) {
	tool, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(tool, companyID); err != nil {
		return nil, err
	}
	return toToolResponse(tool), nil
}

// Update actualiza los datos descriptivos de una herramienta.
func (uc *ToolUseCase) Update(companyID, id string, in dto.UpdateToolRequest) (*dto.ToolResponse, error) {
	tool, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(tool, companyID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		tool.Name = *in.Name
	}
	if in.Description != nil {
		tool.Description = *in.Description
	}
	if in.ImageURL != nil {
		tool.ImageURL = *in.ImageURL
	}
	if in.Price != nil {
		tool.Price = *in.Price
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			cat, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if err := tenant.Authorize(cat, companyID); err != nil {
				return nil, err
			}
		}
		tool.CategoryID = *in.CategoryID
	}
	tool.UpdatedAt = time.Now()
	if err := uc.repo.Update(tool); err != nil {
		return nil, err
	}
	return toToolResponse(tool), nil
}

// List lista herramientas por empresa con paginación.
func (uc *ToolUseCase) List(companyID string, limit, offset int) (*dto.ToolListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ToolResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toToolResponse(t))
	}
	return &dto.ToolListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina el registro de la herramienta. Se rechaza mientras esté en
// manos de un usuario (debe devolverse primero).
func (uc *ToolUseCase) Delete(companyID, id string) error {
	tool, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := tenant.Authorize(tool, companyID); err != nil {
		return err
	}
	if tool.HeldByUser() {
		return fmt.Errorf("la herramienta está en custodia de un usuario: %w", domain.ErrConflict)
	}
	return uc.repo.Delete(id)
}

func toToolResponse(t *entity.Tool) *dto.ToolResponse {
	if t == nil {
		return nil
	}
	return &dto.ToolResponse{
		ID:            t.ID,
		CompanyID:     t.CompanyID,
		CategoryID:    t.CategoryID,
		SerialNumber:  t.SerialNumber,
		Name:          t.Name,
		Description:   t.Description,
		ImageURL:      t.ImageURL,
		Price:         t.Price,
		Status:        t.Status(),
		CurrentUserID: t.CurrentUserID,
		WarehouseID:   t.WarehouseID,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
