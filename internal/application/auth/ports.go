package auth

import (
	"context"

	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

// TxRunner ejecuta el onboarding dentro de una transacción de BD.
// El registro de empresa crea empresa + rol boss + bodega por defecto +
// usuario fundador juntos; el registro con invitación crea el usuario y
// marca la invitación como usada juntos. Ninguna de las dos secuencias
// puede quedar a medias tras un crash.
type TxRunner interface {
	RunOnboarding(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		roleRepo repository.RoleRepository,
		warehouseRepo repository.WarehouseRepository,
		userRepo repository.UserRepository,
		invitationRepo repository.InvitationRepository,
	) error) error
}
