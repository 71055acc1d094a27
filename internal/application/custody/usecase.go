package custody

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
	"github.com/jhoicas/Herramientas-api/internal/domain/tenant"
)

// Errores de precondición de la máquina de custodia. Todos envuelven
// domain.ErrConflict para el mapeo en la capa HTTP.
var (
	ErrAmbiguousTarget    = fmt.Errorf("destino ambiguo: usuario y bodega a la vez: %w", domain.ErrConflict)
	ErrNoTarget           = fmt.Errorf("traslado sin destino: %w", domain.ErrConflict)
	ErrNotHeldByUser      = fmt.Errorf("la herramienta ya está en bodega: %w", domain.ErrConflict)
	ErrNoDefaultWarehouse = fmt.Errorf("la empresa no tiene bodega por defecto: %w", domain.ErrConflict)
	ErrNotAvailable       = fmt.Errorf("la herramienta no está disponible: %w", domain.ErrConflict)
	ErrNotOwner           = fmt.Errorf("la herramienta no está en tu custodia: %w", domain.ErrConflict)
)

// CustodyUseCase es la máquina de estados de custodia de herramientas.
// Estados: AtWarehouse(warehouseID) | WithUser(userID). Cada transición
// bloquea la fila de la herramienta (SELECT FOR UPDATE), re-verifica tenant
// y precondición contra el estado confirmado, muta la custodia y agrega
// exactamente un registro de historial, todo en una transacción.
//
// Invariante: reproducir el historial desde la creación siempre reconstruye
// la custodia actual de la herramienta.
type CustodyUseCase struct {
	txRunner TxRunner
}

// NewCustodyUseCase construye el caso de uso.
func NewCustodyUseCase(txRunner TxRunner) *CustodyUseCase {
	return &CustodyUseCase{txRunner: txRunner}
}

// TransferInput entrada para un traslado. Exactamente uno de ToUserID /
// ToWarehouseID debe estar asignado.
type TransferInput struct {
	ToolID        string
	ToUserID      string
	ToWarehouseID string
	ActorID       string
	CompanyID     string
	Notes         string
}

// Transfer traslada la herramienta al usuario o bodega destino. El lado
// contrario de la custodia se limpia atómicamente y se registra un TRANSFER
// con el tenedor anterior y el nuevo.
func (uc *CustodyUseCase) Transfer(ctx context.Context, in TransferInput) (*entity.Tool, error) {
	// Validación de destino antes de tocar la BD (fail fast, sin escrituras parciales).
	if in.ToUserID != "" && in.ToWarehouseID != "" {
		return nil, ErrAmbiguousTarget
	}
	if in.ToUserID == "" && in.ToWarehouseID == "" {
		return nil, ErrNoTarget
	}

	var out *entity.Tool
	err := uc.txRunner.RunCustody(ctx, func(
		toolRepo repository.ToolRepository,
		historyRepo repository.ToolHistoryRepository,
		userRepo repository.UserRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		tool, err := lockTool(toolRepo, in.ToolID, in.CompanyID)
		if err != nil {
			return err
		}

		// El destino debe existir y ser de la misma empresa.
		if in.ToUserID != "" {
			target, err := userRepo.GetByID(in.ToUserID)
			if err != nil {
				return err
			}
			if err := tenant.Authorize(target, in.CompanyID); err != nil {
				return err
			}
		} else {
			target, err := warehouseRepo.GetByID(in.ToWarehouseID)
			if err != nil {
				return err
			}
			if err := tenant.Authorize(target, in.CompanyID); err != nil {
				return err
			}
		}

		now := time.Now()
		rec := newHistory(tool, entity.HistoryActionTransfer, in.ActorID, in.Notes, now)
		rec.ToUserID = in.ToUserID
		rec.ToWarehouseID = in.ToWarehouseID

		tool.CurrentUserID = in.ToUserID
		tool.WarehouseID = in.ToWarehouseID
		tool.UpdatedAt = now

		if err := toolRepo.Update(tool); err != nil {
			return err
		}
		if err := historyRepo.Create(rec); err != nil {
			return err
		}
		out = tool
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckInInput entrada para una devolución a bodega.
type CheckInInput struct {
	ToolID      string
	ActorID     string
	CompanyID   string
	WarehouseID string // vacío = bodega por defecto de la empresa
	Notes       string
}

// CheckIn devuelve a bodega una herramienta que está en manos de un usuario.
// La bodega se resuelve: explícita → por defecto de la empresa → error.
// Una herramienta que ya está en bodega no puede devolverse de nuevo.
func (uc *CustodyUseCase) CheckIn(ctx context.Context, in CheckInInput) (*entity.Tool, error) {
	var out *entity.Tool
	err := uc.txRunner.RunCustody(ctx, func(
		toolRepo repository.ToolRepository,
		historyRepo repository.ToolHistoryRepository,
		_ repository.UserRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		tool, err := lockTool(toolRepo, in.ToolID, in.CompanyID)
		if err != nil {
			return err
		}
		if !tool.HeldByUser() {
			return ErrNotHeldByUser
		}

		wh, err := resolveWarehouse(warehouseRepo, in.CompanyID, in.WarehouseID)
		if err != nil {
			return err
		}

		now := time.Now()
		rec := newHistory(tool, entity.HistoryActionCheckIn, in.ActorID, in.Notes, now)
		rec.ToWarehouseID = wh.ID

		tool.CurrentUserID = ""
		tool.WarehouseID = wh.ID
		tool.UpdatedAt = now

		if err := toolRepo.Update(tool); err != nil {
			return err
		}
		if err := historyRepo.Create(rec); err != nil {
			return err
		}
		out = tool
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssignInput entrada para la asignación directa bodega → usuario.
type AssignInput struct {
	ToolID    string
	ToUserID  string
	ActorID   string
	CompanyID string
	Notes     string
}

// Assign entrega una herramienta disponible (en bodega) a un usuario.
// Es el camino de asignación simple: exige estado AVAILABLE y reutiliza la
// transición de traslado, con las notas adjuntas al registro de historial.
func (uc *CustodyUseCase) Assign(ctx context.Context, in AssignInput) (*entity.Tool, error) {
	if in.ToUserID == "" {
		return nil, ErrNoTarget
	}

	var out *entity.Tool
	err := uc.txRunner.RunCustody(ctx, func(
		toolRepo repository.ToolRepository,
		historyRepo repository.ToolHistoryRepository,
		userRepo repository.UserRepository,
		_ repository.WarehouseRepository,
	) error {
		tool, err := lockTool(toolRepo, in.ToolID, in.CompanyID)
		if err != nil {
			return err
		}
		if tool.Status() != entity.ToolStatusAvailable {
			return ErrNotAvailable
		}
		target, err := userRepo.GetByID(in.ToUserID)
		if err != nil {
			return err
		}
		if err := tenant.Authorize(target, in.CompanyID); err != nil {
			return err
		}

		now := time.Now()
		rec := newHistory(tool, entity.HistoryActionTransfer, in.ActorID, in.Notes, now)
		rec.ToUserID = in.ToUserID

		tool.CurrentUserID = in.ToUserID
		tool.WarehouseID = ""
		tool.UpdatedAt = now

		if err := toolRepo.Update(tool); err != nil {
			return err
		}
		if err := historyRepo.Create(rec); err != nil {
			return err
		}
		out = tool
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReturnInput entrada para la devolución por parte del tenedor actual.
type ReturnInput struct {
	ToolID      string
	CallerID    string
	CompanyID   string
	WarehouseID string // vacío = bodega por defecto
	Notes       string
}

// Return devuelve la herramienta a bodega, validando que quien la devuelve
// sea el tenedor actual.
func (uc *CustodyUseCase) Return(ctx context.Context, in ReturnInput) (*entity.Tool, error) {
	var out *entity.Tool
	err := uc.txRunner.RunCustody(ctx, func(
		toolRepo repository.ToolRepository,
		historyRepo repository.ToolHistoryRepository,
		_ repository.UserRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		tool, err := lockTool(toolRepo, in.ToolID, in.CompanyID)
		if err != nil {
			return err
		}
		if !tool.HeldByUser() {
			return ErrNotHeldByUser
		}
		if tool.CurrentUserID != in.CallerID {
			return ErrNotOwner
		}

		wh, err := resolveWarehouse(warehouseRepo, in.CompanyID, in.WarehouseID)
		if err != nil {
			return err
		}

		now := time.Now()
		rec := newHistory(tool, entity.HistoryActionCheckIn, in.CallerID, in.Notes, now)
		rec.ToWarehouseID = wh.ID

		tool.CurrentUserID = ""
		tool.WarehouseID = wh.ID
		tool.UpdatedAt = now

		if err := toolRepo.Update(tool); err != nil {
			return err
		}
		if err := historyRepo.Create(rec); err != nil {
			return err
		}
		out = tool
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// lockTool obtiene la herramienta con la fila bloqueada y re-verifica tenant
// dentro de la transacción (no se confía en chequeos previos a la tx).
func lockTool(toolRepo repository.ToolRepository, toolID, companyID string) (*entity.Tool, error) {
	tool, err := toolRepo.GetForUpdate(toolID)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	if err := tenant.Authorize(tool, companyID); err != nil {
		return nil, err
	}
	return tool, nil
}

// resolveWarehouse resuelve la bodega destino de una devolución:
// explícita (validada contra la empresa) → bodega por defecto → error.
func resolveWarehouse(warehouseRepo repository.WarehouseRepository, companyID, warehouseID string) (*entity.Warehouse, error) {
	if warehouseID != "" {
		wh, err := warehouseRepo.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if err := tenant.Authorize(wh, companyID); err != nil {
			return nil, err
		}
		return wh, nil
	}
	wh, err := warehouseRepo.GetDefaultByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, ErrNoDefaultWarehouse
	}
	return wh, nil
}

// newHistory arma el registro con el lado "from" tomado del estado actual de
// la herramienta, antes de mutarla.
func newHistory(tool *entity.Tool, action, actorID, notes string, now time.Time) *entity.ToolHistory {
	return &entity.ToolHistory{
		ID:              uuid.New().String(),
		CompanyID:       tool.CompanyID,
		ToolID:          tool.ID,
		Action:          action,
		ActorID:         actorID,
		FromUserID:      tool.CurrentUserID,
		FromWarehouseID: tool.WarehouseID,
		Notes:           notes,
		CreatedAt:       now,
	}
}
