package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Herramientas-api/internal/application/auth"
	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/application/invite"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
	"github.com/jhoicas/Herramientas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Herramientas-api/pkg/jwt"
)

const jwtSecret = "secreto-de-pruebas"

func newAuthUC(store *memory.Store) *auth.AuthUseCase {
	return auth.NewAuthUseCase(
		memory.NewTxRunner(store),
		memory.NewUserRepository(store),
		memory.NewRoleRepository(store),
		auth.JWTConfig{Secret: jwtSecret, ExpMinutes: 60, Issuer: "herramientas-api"},
	)
}

// Caso 1: Registrar una empresa crea en una sola operación la empresa, el rol
// boss con todos los permisos, la bodega por defecto y el fundador.
func TestAuth_RegistrarEmpresa(t *testing.T) {
	store := memory.NewStore()
	uc := newAuthUC(store)

	out, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "ACME", NIT: "900123456", Email: "dueno@acme.com",
		Password: "superclave", Name: "Ana Dueña",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACME", out.Company.Name)
	assert.Equal(t, "active", out.User.Status)
	require.NotEmpty(t, out.User.RoleID)

	role, err := memory.NewRoleRepository(store).GetByID(out.User.RoleID)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.True(t, role.IsBoss)
	assert.Equal(t, auth.BossRoleName, role.Name)
	assert.ElementsMatch(t, permission.All(), role.Permissions,
		"el rol boss nace con el registro completo de permisos")

	def, err := memory.NewWarehouseRepository(store).GetDefaultByCompany(out.Company.ID)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, auth.DefaultWarehouseName, def.Name)

	claims, err := jwt.Parse(jwtSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, out.Company.ID, claims.CompanyID)
	assert.True(t, claims.IsBoss)
}

// Caso 2: Un email ya registrado rechaza el registro de empresa.
func TestAuth_RegistrarEmailDuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := newAuthUC(store)

	req := dto.RegisterCompanyRequest{CompanyName: "ACME", Email: "dueno@acme.com", Password: "superclave"}
	_, err := uc.RegisterCompany(context.Background(), req)
	require.NoError(t, err)

	req.CompanyName = "Otra"
	_, err = uc.RegisterCompany(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Caso 3: Registrarse con invitación consume el token: el usuario nace con el
// rol de la invitación y el token no sirve una segunda vez.
func TestAuth_RegistrarConInvitacion(t *testing.T) {
	store := memory.NewStore()
	uc := newAuthUC(store)

	boss, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "ACME", Email: "dueno@acme.com", Password: "superclave",
	})
	require.NoError(t, err)

	inviteUC := invite.NewInviteUseCase(memory.NewInvitationRepository(store), memory.NewRoleRepository(store), 0)
	inv, err := inviteUC.Create(boss.Company.ID, dto.CreateInvitationRequest{
		Email: "beto@acme.com", RoleID: boss.User.RoleID,
	})
	require.NoError(t, err)

	out, err := uc.RegisterWithInvitation(context.Background(), dto.RegisterInviteRequest{
		Token: inv.Token, Name: "Beto", Password: "otraclave",
	})
	require.NoError(t, err)
	assert.Equal(t, boss.Company.ID, out.User.CompanyID)
	assert.Equal(t, "beto@acme.com", out.User.Email)
	assert.Equal(t, boss.User.RoleID, out.User.RoleID)

	_, err = uc.RegisterWithInvitation(context.Background(), dto.RegisterInviteRequest{
		Token: inv.Token, Password: "dacapo",
	})
	assert.ErrorIs(t, err, invite.ErrAlreadyUsed)
}

// Caso 4: Invitación expirada y token desconocido fallan con errores
// distintos.
func TestAuth_InvitacionExpiradaODesconocida(t *testing.T) {
	store := memory.NewStore()
	uc := newAuthUC(store)

	now := time.Now()
	require.NoError(t, memory.NewInvitationRepository(store).Create(&entity.Invitation{
		ID: "i1", CompanyID: "ca000000-0000-0000-0000-000000000001", Email: "tarde@acme.com",
		Token: "token-vencido", ExpiresAt: now.Add(-time.Hour), CreatedAt: now.Add(-8 * 24 * time.Hour),
	}))

	_, err := uc.RegisterWithInvitation(context.Background(), dto.RegisterInviteRequest{
		Token: "token-vencido", Password: "superclave",
	})
	assert.ErrorIs(t, err, domain.ErrExpired)

	_, err = uc.RegisterWithInvitation(context.Background(), dto.RegisterInviteRequest{
		Token: "no-existe", Password: "superclave",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 5: Un email ya registrado en OTRA empresa también rechaza el registro
// por invitación: el email es único global porque el login resuelve al
// usuario solo por email, y la invitación queda sin consumir.
func TestAuth_InvitacionConEmailDeOtraEmpresa(t *testing.T) {
	store := memory.NewStore()
	uc := newAuthUC(store)

	_, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "ACME", Email: "ana@acme.com", Password: "superclave",
	})
	require.NoError(t, err)

	now := time.Now()
	invitations := memory.NewInvitationRepository(store)
	require.NoError(t, invitations.Create(&entity.Invitation{
		ID: "i-otra", CompanyID: "cb000000-0000-0000-0000-000000000001", Email: "ana@acme.com",
		Token: "token-otra-empresa", ExpiresAt: now.Add(24 * time.Hour), CreatedAt: now,
	}))

	_, err = uc.RegisterWithInvitation(context.Background(), dto.RegisterInviteRequest{
		Token: "token-otra-empresa", Password: "otraclave",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	inv, err := invitations.GetByToken("token-otra-empresa")
	require.NoError(t, err)
	assert.False(t, inv.Used(), "la invitación no debe consumirse si el registro falla")
}

// Caso 6: Login feliz, clave incorrecta, email desconocido y cuenta inactiva.
func TestAuth_Login(t *testing.T) {
	store := memory.NewStore()
	uc := newAuthUC(store)

	reg, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyRequest{
		CompanyName: "ACME", Email: "dueno@acme.com", Password: "superclave",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "dueno@acme.com", Password: "superclave"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(dto.LoginRequest{Email: "dueno@acme.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@acme.com", Password: "superclave"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	users := memory.NewUserRepository(store)
	user, err := users.GetByEmail("dueno@acme.com")
	require.NoError(t, err)
	user.Status = "inactive"
	require.NoError(t, users.Update(user))

	_, err = uc.Login(dto.LoginRequest{Email: "dueno@acme.com", Password: "superclave"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
