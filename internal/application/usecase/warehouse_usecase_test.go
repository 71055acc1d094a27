package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/application/usecase"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/infrastructure/memory"
)

const testCompany = "ca000000-0000-0000-0000-000000000001"

func newWarehouseUC(store *memory.Store) *usecase.WarehouseUseCase {
	return usecase.NewWarehouseUseCase(
		memory.NewWarehouseRepository(store),
		memory.NewToolRepository(store),
		memory.NewTxRunner(store),
	)
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

// Caso 1: Crear una bodega como default desmarca la anterior en la misma
// operación: nunca hay dos defaults.
func TestWarehouse_CrearDefaultDesmarcaAnterior(t *testing.T) {
	store := memory.NewStore()
	uc := newWarehouseUC(store)
	ctx := context.Background()

	a, err := uc.Create(ctx, testCompany, dto.CreateWarehouseRequest{Name: "Principal", IsDefault: true})
	require.NoError(t, err)
	b, err := uc.Create(ctx, testCompany, dto.CreateWarehouseRequest{Name: "Taller", IsDefault: true})
	require.NoError(t, err)

	repo := memory.NewWarehouseRepository(store)
	def, err := repo.GetDefaultByCompany(testCompany)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, b.ID, def.ID, "la última marcada debe ser la default")

	old, err := repo.GetByID(a.ID)
	require.NoError(t, err)
	assert.False(t, old.IsDefault, "la anterior debe quedar desmarcada")
}

// Caso 2: Marcar default por Update también hace el intercambio.
func TestWarehouse_UpdateIntercambiaDefault(t *testing.T) {
	store := memory.NewStore()
	uc := newWarehouseUC(store)
	ctx := context.Background()

	a, err := uc.Create(ctx, testCompany, dto.CreateWarehouseRequest{Name: "Principal", IsDefault: true})
	require.NoError(t, err)
	b, err := uc.Create(ctx, testCompany, dto.CreateWarehouseRequest{Name: "Taller"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, testCompany, b.ID, dto.UpdateWarehouseRequest{IsDefault: boolptr(true)})
	require.NoError(t, err)

	repo := memory.NewWarehouseRepository(store)
	def, _ := repo.GetDefaultByCompany(testCompany)
	assert.Equal(t, b.ID, def.ID)
	old, _ := repo.GetByID(a.ID)
	assert.False(t, old.IsDefault)
}

// Caso 3: Nombre duplicado dentro de la empresa se rechaza; el mismo nombre
// en otra empresa es válido.
func TestWarehouse_NombreDuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := newWarehouseUC(store)
	ctx := context.Background()

	_, err := uc.Create(ctx, testCompany, dto.CreateWarehouseRequest{Name: "Principal"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, testCompany, dto.CreateWarehouseRequest{Name: "Principal"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, "cb000000-0000-0000-0000-000000000001", dto.CreateWarehouseRequest{Name: "Principal"})
	assert.NoError(t, err, "el nombre es único por empresa, no global")
}

// Caso 4: La bodega default no se elimina.
func TestWarehouse_NoEliminarDefault(t *testing.T) {
	store := memory.NewStore()
	uc := newWarehouseUC(store)

	w, err := uc.Create(context.Background(), testCompany, dto.CreateWarehouseRequest{Name: "Principal", IsDefault: true})
	require.NoError(t, err)

	err = uc.Delete(testCompany, w.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Caso 5: Una bodega con herramientas almacenadas no se elimina.
func TestWarehouse_NoEliminarConHerramientas(t *testing.T) {
	store := memory.NewStore()
	uc := newWarehouseUC(store)

	w, err := uc.Create(context.Background(), testCompany, dto.CreateWarehouseRequest{Name: "Taller"})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, memory.NewToolRepository(store).Create(&entity.Tool{
		ID: "t1", CompanyID: testCompany, SerialNumber: "SN-1", Name: "Taladro",
		WarehouseID: w.ID, CreatedAt: now, UpdatedAt: now,
	}))

	err = uc.Delete(testCompany, w.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"las herramientas deben trasladarse antes de eliminar la bodega")
}

// Caso 6: Una bodega de otra empresa es invisible (not found, no forbidden).
func TestWarehouse_CrossTenantInvisible(t *testing.T) {
	store := memory.NewStore()
	uc := newWarehouseUC(store)

	w, err := uc.Create(context.Background(), testCompany, dto.CreateWarehouseRequest{Name: "Principal"})
	require.NoError(t, err)

	_, err = uc.GetByID("cb000000-0000-0000-0000-000000000001", w.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(context.Background(), "cb000000-0000-0000-0000-000000000001", w.ID, dto.UpdateWarehouseRequest{Name: strptr("Robada")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
