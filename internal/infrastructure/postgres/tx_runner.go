package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Herramientas-api/internal/application/auth"
	"github.com/jhoicas/Herramientas-api/internal/application/custody"
	"github.com/jhoicas/Herramientas-api/internal/application/usecase"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

// Un único runner implementa los tres puertos transaccionales.
var (
	_ custody.TxRunner       = (*TxRunner)(nil)
	_ auth.TxRunner          = (*TxRunner)(nil)
	_ usecase.EntityTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, pasando
// repositorios atados a la tx. Commit si fn devuelve nil, Rollback si no.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCustody transacción de la máquina de custodia: herramienta + historial
// + validación de destino, todo o nada.
func (r *TxRunner) RunCustody(ctx context.Context, fn func(
	toolRepo repository.ToolRepository,
	historyRepo repository.ToolHistoryRepository,
	userRepo repository.UserRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewToolRepository(tx),
		NewToolHistoryRepository(tx),
		NewUserRepository(tx),
		NewWarehouseRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOnboarding transacción del registro: empresa + rol boss + bodega por
// defecto + usuario, o usuario + consumo de invitación.
func (r *TxRunner) RunOnboarding(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	roleRepo repository.RoleRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
	invitationRepo repository.InvitationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewCompanyRepository(tx),
		NewRoleRepository(tx),
		NewWarehouseRepository(tx),
		NewUserRepository(tx),
		NewInvitationRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunEntities transacción de mantenimiento de entidades: cambio de bodega
// por defecto y borrado de categoría.
func (r *TxRunner) RunEntities(ctx context.Context, fn func(
	warehouseRepo repository.WarehouseRepository,
	categoryRepo repository.CategoryRepository,
	toolRepo repository.ToolRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewWarehouseRepository(tx),
		NewCategoryRepository(tx),
		NewToolRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
