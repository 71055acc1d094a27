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

// WarehouseUseCase casos de uso para bodegas. El cambio de bodega por
// defecto es transaccional: nunca hay una ventana con dos defaults.
type WarehouseUseCase struct {
	repo     repository.WarehouseRepository
	toolRepo repository.ToolRepository
	txRunner EntityTxRunner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, toolRepo repository.ToolRepository, txRunner EntityTxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, toolRepo: toolRepo, txRunner: txRunner}
}

// Create crea una bodega. Name es único por empresa (pre-chequeo amable;
// el constraint de la DB respalda bajo concurrencia).
func (uc *WarehouseUseCase) Create(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("ya existe una bodega llamada %q: %w", in.Name, domain.ErrDuplicate)
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		IsDefault: in.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if in.IsDefault {
		// Limpiar la default anterior y crear la nueva en la misma tx.
		err = uc.txRunner.RunEntities(ctx, func(
			warehouseRepo repository.WarehouseRepository,
			_ repository.CategoryRepository,
			_ repository.ToolRepository,
		) error {
			if err := warehouseRepo.ClearDefault(companyID); err != nil {
				return err
			}
			return warehouseRepo.Create(warehouse)
		})
	} else {
		err = uc.repo.Create(warehouse)
	}
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega de la empresa del caller.
func (uc *WarehouseUseCase) GetByID(companyID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(warehouse, companyID); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza una bodega. Marcar IsDefault=true desmarca la anterior
// dentro de la misma transacción.
func (uc *WarehouseUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := tenant.Authorize(warehouse, companyID); err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name != warehouse.Name {
		existing, err := uc.repo.GetByCompanyAndName(companyID, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("ya existe una bodega llamada %q: %w", *in.Name, domain.ErrDuplicate)
		}
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}

	becomesDefault := in.IsDefault != nil && *in.IsDefault && !warehouse.IsDefault
	if in.IsDefault != nil {
		warehouse.IsDefault = *in.IsDefault
	}
	warehouse.UpdatedAt = time.Now()

	if becomesDefault {
		err = uc.txRunner.RunEntities(ctx, func(
			warehouseRepo repository.WarehouseRepository,
			_ repository.CategoryRepository,
			_ repository.ToolRepository,
		) error {
			if err := warehouseRepo.ClearDefault(companyID); err != nil {
				return err
			}
			return warehouseRepo.Update(warehouse)
		})
	} else {
		err = uc.repo.Update(warehouse)
	}
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas por empresa con paginación.
func (uc *WarehouseUseCase) List(companyID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una bodega. Se rechaza si es la default o si almacena
// herramientas; no hay borrado en cascada ni flag de fuerza.
func (uc *WarehouseUseCase) Delete(companyID, id string) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := tenant.Authorize(warehouse, companyID); err != nil {
		return err
	}
	if warehouse.IsDefault {
		return fmt.Errorf("no se puede eliminar la bodega por defecto: %w", domain.ErrConflict)
	}
	count, err := uc.toolRepo.CountByWarehouse(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("la bodega almacena %d herramienta(s): %w", count, domain.ErrConflict)
	}
	return uc.repo.Delete(id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Address:   w.Address,
		IsDefault: w.IsDefault,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
