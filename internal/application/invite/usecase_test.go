package invite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/application/invite"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/infrastructure/memory"
)

const testCompany = "ca000000-0000-0000-0000-000000000001"

func newInviteUC(store *memory.Store, ttl time.Duration) *invite.InviteUseCase {
	return invite.NewInviteUseCase(
		memory.NewInvitationRepository(store),
		memory.NewRoleRepository(store),
		ttl,
	)
}

// Caso 1: Crear acuña un token no vacío con la vigencia configurada.
func TestInvite_Crear(t *testing.T) {
	store := memory.NewStore()
	uc := newInviteUC(store, 48*time.Hour)

	out, err := uc.Create(testCompany, dto.CreateInvitationRequest{Email: "ana@acme.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Nil(t, out.UsedAt)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), out.ExpiresAt, time.Minute)
}

// Caso 2: Crear es idempotente mientras haya una invitación activa para el
// mismo email: se devuelve la existente sin acuñar otro token.
func TestInvite_CrearIdempotente(t *testing.T) {
	store := memory.NewStore()
	uc := newInviteUC(store, 0)

	first, err := uc.Create(testCompany, dto.CreateInvitationRequest{Email: "ana@acme.com"})
	require.NoError(t, err)
	second, err := uc.Create(testCompany, dto.CreateInvitationRequest{Email: "ana@acme.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Token, second.Token, "no debe acuñarse un segundo token")

	// El mismo email en otra empresa recibe su propia invitación.
	other, err := uc.Create("cb000000-0000-0000-0000-000000000001", dto.CreateInvitationRequest{Email: "ana@acme.com"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, other.Token)
}

// Caso 3: Un rol de otra empresa no se puede adjuntar a la invitación.
func TestInvite_RolAjeno(t *testing.T) {
	store := memory.NewStore()
	uc := newInviteUC(store, 0)

	now := time.Now()
	require.NoError(t, memory.NewRoleRepository(store).Create(&entity.Role{
		ID: "r-ajeno", CompanyID: "cb000000-0000-0000-0000-000000000001", Name: "Bodeguero",
		CreatedAt: now, UpdatedAt: now,
	}))

	_, err := uc.Create(testCompany, dto.CreateInvitationRequest{Email: "ana@acme.com", RoleID: "r-ajeno"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 4: Una invitación expirada no bloquea: se acuña una nueva.
func TestInvite_ExpiradaNoBloquea(t *testing.T) {
	store := memory.NewStore()
	uc := newInviteUC(store, 0)

	now := time.Now()
	require.NoError(t, memory.NewInvitationRepository(store).Create(&entity.Invitation{
		ID: "i-vieja", CompanyID: testCompany, Email: "ana@acme.com",
		Token: "token-viejo", ExpiresAt: now.Add(-time.Hour), CreatedAt: now.Add(-8 * 24 * time.Hour),
	}))

	out, err := uc.Create(testCompany, dto.CreateInvitationRequest{Email: "ana@acme.com"})
	require.NoError(t, err)
	assert.NotEqual(t, "token-viejo", out.Token)
}

// Caso 5: Una invitación consumida tampoco bloquea una nueva.
func TestInvite_UsadaNoBloquea(t *testing.T) {
	store := memory.NewStore()
	uc := newInviteUC(store, 0)

	first, err := uc.Create(testCompany, dto.CreateInvitationRequest{Email: "ana@acme.com"})
	require.NoError(t, err)
	require.NoError(t, memory.NewInvitationRepository(store).MarkUsed(first.ID, time.Now()))

	second, err := uc.Create(testCompany, dto.CreateInvitationRequest{Email: "ana@acme.com"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
}
