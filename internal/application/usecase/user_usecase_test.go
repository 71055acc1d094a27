package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Herramientas-api/internal/application/usecase"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/infrastructure/memory"
)

func newUserUC(store *memory.Store) *usecase.UserUseCase {
	return usecase.NewUserUseCase(
		memory.NewUserRepository(store),
		memory.NewRoleRepository(store),
		memory.NewToolRepository(store),
	)
}

func seedUser(t *testing.T, store *memory.Store, id, companyID, roleID string) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID: id, CompanyID: companyID, RoleID: roleID,
		Email: id + "@acme.com", Name: "Usuario " + id, Status: "active",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, memory.NewUserRepository(store).Create(u))
	return u
}

// Caso 1: Asignar un rol de la misma empresa.
func TestUser_AsignarRol(t *testing.T) {
	store := memory.NewStore()
	uc := newUserUC(store)
	seedUser(t, store, "u1", testCompany, "")

	now := time.Now()
	require.NoError(t, memory.NewRoleRepository(store).Create(&entity.Role{
		ID: "r1", CompanyID: testCompany, Name: "Bodeguero", CreatedAt: now, UpdatedAt: now,
	}))

	out, err := uc.AssignRole(testCompany, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", out.RoleID)
}

// Caso 2: Un rol de otra empresa no se puede asignar.
func TestUser_AsignarRolAjeno(t *testing.T) {
	store := memory.NewStore()
	uc := newUserUC(store)
	seedUser(t, store, "u1", testCompany, "")

	now := time.Now()
	require.NoError(t, memory.NewRoleRepository(store).Create(&entity.Role{
		ID: "r-ajeno", CompanyID: "cb000000-0000-0000-0000-000000000001", Name: "Bodeguero",
		CreatedAt: now, UpdatedAt: now,
	}))

	_, err := uc.AssignRole(testCompany, "u1", "r-ajeno")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 3: El usuario con rol boss no se elimina.
func TestUser_NoEliminarBoss(t *testing.T) {
	store := memory.NewStore()
	uc := newUserUC(store)

	now := time.Now()
	require.NoError(t, memory.NewRoleRepository(store).Create(&entity.Role{
		ID: "r-boss", CompanyID: testCompany, Name: "Administrador", IsBoss: true,
		CreatedAt: now, UpdatedAt: now,
	}))
	seedUser(t, store, "u1", testCompany, "r-boss")

	err := uc.Delete(testCompany, "u1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Caso 4: Un usuario con herramientas en custodia no se elimina.
func TestUser_NoEliminarConCustodia(t *testing.T) {
	store := memory.NewStore()
	uc := newUserUC(store)
	seedUser(t, store, "u1", testCompany, "")

	now := time.Now()
	require.NoError(t, memory.NewToolRepository(store).Create(&entity.Tool{
		ID: "t1", CompanyID: testCompany, SerialNumber: "SN-001", Name: "Taladro",
		CurrentUserID: "u1", CreatedAt: now, UpdatedAt: now,
	}))

	err := uc.Delete(testCompany, "u1")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"las herramientas deben devolverse antes de eliminar al usuario")

	// Tras devolverla, el borrado procede.
	tool, _ := memory.NewToolRepository(store).GetByID("t1")
	tool.CurrentUserID = ""
	tool.WarehouseID = "w1"
	require.NoError(t, memory.NewToolRepository(store).Update(tool))
	assert.NoError(t, uc.Delete(testCompany, "u1"))
}

// Caso 5: Las herramientas en custodia de un usuario se listan.
func TestUser_HerramientasEnCustodia(t *testing.T) {
	store := memory.NewStore()
	uc := newUserUC(store)
	seedUser(t, store, "u1", testCompany, "")

	now := time.Now()
	tools := memory.NewToolRepository(store)
	require.NoError(t, tools.Create(&entity.Tool{ID: "t1", CompanyID: testCompany, SerialNumber: "SN-1", Name: "Taladro", CurrentUserID: "u1", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, tools.Create(&entity.Tool{ID: "t2", CompanyID: testCompany, SerialNumber: "SN-2", Name: "Sierra", WarehouseID: "w1", CreatedAt: now, UpdatedAt: now}))

	out, err := uc.Tools(testCompany, "u1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "t1", out.Items[0].ID)
	assert.Equal(t, entity.ToolStatusInUse, out.Items[0].Status)
}
