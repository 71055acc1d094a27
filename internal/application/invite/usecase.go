package invite

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
	"github.com/jhoicas/Herramientas-api/internal/domain/tenant"
)

// ErrAlreadyUsed la invitación ya fue consumida.
var ErrAlreadyUsed = fmt.Errorf("la invitación ya fue usada: %w", domain.ErrConflict)

// DefaultTTL vigencia por defecto de una invitación.
const DefaultTTL = 7 * 24 * time.Hour

// InviteUseCase crea y lista invitaciones. El consumo vive en auth
// (registro con invitación) porque debe ser transaccional con la creación
// del usuario.
type InviteUseCase struct {
	repo     repository.InvitationRepository
	roleRepo repository.RoleRepository
	ttl      time.Duration
}

// NewInviteUseCase construye el caso de uso. ttl <= 0 usa DefaultTTL.
func NewInviteUseCase(repo repository.InvitationRepository, roleRepo repository.RoleRepository, ttl time.Duration) *InviteUseCase {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InviteUseCase{repo: repo, roleRepo: roleRepo, ttl: ttl}
}

// Create crea una invitación para (email, empresa). Idempotente por diseño:
// si ya existe una activa (sin usar, no expirada) se devuelve sin cambios,
// en lugar de acuñar otro token.
func (uc *InviteUseCase) Create(companyID string, in dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	now := time.Now()
	existing, err := uc.repo.GetActiveByEmailAndCompany(in.Email, companyID, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toInvitationResponse(existing), nil
	}

	if in.RoleID != "" {
		role, err := uc.roleRepo.GetByID(in.RoleID)
		if err != nil {
			return nil, err
		}
		if err := tenant.Authorize(role, companyID); err != nil {
			return nil, err
		}
	}

	token, err := mintToken()
	if err != nil {
		return nil, err
	}
	invitation := &entity.Invitation{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Email:     in.Email,
		RoleID:    in.RoleID,
		Token:     token,
		ExpiresAt: now.Add(uc.ttl),
		CreatedAt: now,
	}
	if err := uc.repo.Create(invitation); err != nil {
		return nil, err
	}
	return toInvitationResponse(invitation), nil
}

// List lista invitaciones por empresa con paginación.
func (uc *InviteUseCase) List(companyID string, limit, offset int) (*dto.InvitationListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvitationResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInvitationResponse(i))
	}
	return &dto.InvitationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// mintToken acuña un token no adivinable (256 bits, base64url).
func mintToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func toInvitationResponse(i *entity.Invitation) *dto.InvitationResponse {
	if i == nil {
		return nil
	}
	return &dto.InvitationResponse{
		ID:        i.ID,
		CompanyID: i.CompanyID,
		Email:     i.Email,
		RoleID:    i.RoleID,
		Token:     i.Token,
		ExpiresAt: i.ExpiresAt,
		UsedAt:    i.UsedAt,
		CreatedAt: i.CreatedAt,
	}
}
