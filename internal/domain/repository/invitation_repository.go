package repository

import (
	"time"

	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
)

// InvitationRepository define el puerto de persistencia para Invitation (DIP).
type InvitationRepository interface {
	Create(invitation *entity.Invitation) error
	GetByToken(token string) (*entity.Invitation, error)
	// GetByTokenForUpdate bloquea la fila de la invitación (SELECT FOR UPDATE)
	// para que dos registros concurrentes con el mismo token no la consuman dos veces.
	GetByTokenForUpdate(token string) (*entity.Invitation, error)
	// GetActiveByEmailAndCompany devuelve la invitación sin usar y no expirada
	// para (email, empresa), o nil si no hay ninguna.
	GetActiveByEmailAndCompany(email, companyID string, now time.Time) (*entity.Invitation, error)
	// MarkUsed marca la invitación como consumida. Debe ejecutarse en la misma
	// transacción que crea el usuario.
	MarkUsed(id string, usedAt time.Time) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invitation, error)
}
