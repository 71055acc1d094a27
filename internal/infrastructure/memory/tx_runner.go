package memory

import (
	"context"

	"github.com/jhoicas/Herramientas-api/internal/application/auth"
	"github.com/jhoicas/Herramientas-api/internal/application/custody"
	"github.com/jhoicas/Herramientas-api/internal/application/usecase"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var (
	_ custody.TxRunner       = (*TxRunner)(nil)
	_ auth.TxRunner          = (*TxRunner)(nil)
	_ usecase.EntityTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta los callbacks transaccionales contra el mismo Store.
// No simula rollback: las pruebas que lo usan verifican la lógica de los
// casos de uso, no la atomicidad de la base de datos.
type TxRunner struct {
	s *Store
}

func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (t *TxRunner) RunCustody(ctx context.Context, fn func(
	toolRepo repository.ToolRepository,
	historyRepo repository.ToolHistoryRepository,
	userRepo repository.UserRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error {
	return fn(
		NewToolRepository(t.s),
		NewToolHistoryRepository(t.s),
		NewUserRepository(t.s),
		NewWarehouseRepository(t.s),
	)
}

func (t *TxRunner) RunOnboarding(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	roleRepo repository.RoleRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
	invitationRepo repository.InvitationRepository,
) error) error {
	return fn(
		NewCompanyRepository(t.s),
		NewRoleRepository(t.s),
		NewWarehouseRepository(t.s),
		NewUserRepository(t.s),
		NewInvitationRepository(t.s),
	)
}

func (t *TxRunner) RunEntities(ctx context.Context, fn func(
	warehouseRepo repository.WarehouseRepository,
	categoryRepo repository.CategoryRepository,
	toolRepo repository.ToolRepository,
) error) error {
	return fn(
		NewWarehouseRepository(t.s),
		NewCategoryRepository(t.s),
		NewToolRepository(t.s),
	)
}
