package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/application/usecase"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/infrastructure/memory"
)

func newToolUC(store *memory.Store) *usecase.ToolUseCase {
	return usecase.NewToolUseCase(
		memory.NewToolRepository(store),
		memory.NewWarehouseRepository(store),
		memory.NewCategoryRepository(store),
	)
}

func seedDefaultWarehouse(t *testing.T, store *memory.Store, companyID string) *entity.Warehouse {
	t.Helper()
	now := time.Now()
	w := &entity.Warehouse{
		ID: "w-" + companyID[:8], CompanyID: companyID, Name: "Bodega principal",
		IsDefault: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, memory.NewWarehouseRepository(store).Create(w))
	return w
}

// Caso 1: Crear sin bodega explícita resuelve la default de la empresa.
func TestTool_CrearResuelveDefault(t *testing.T) {
	store := memory.NewStore()
	uc := newToolUC(store)
	w := seedDefaultWarehouse(t, store, testCompany)

	out, err := uc.Create(testCompany, dto.CreateToolRequest{
		Name: "Taladro", SerialNumber: "SN-001", Price: decimal.RequireFromString("199.90"),
	})
	require.NoError(t, err)
	assert.Equal(t, w.ID, out.WarehouseID, "sin bodega explícita debe ir a la default")
	assert.Equal(t, entity.ToolStatusAvailable, out.Status)
}

// Caso 2: Sin bodega explícita ni default, la herramienta nace sin custodia
// (estado transitorio permitido solo aquí).
func TestTool_CrearSinBodegas(t *testing.T) {
	store := memory.NewStore()
	uc := newToolUC(store)

	out, err := uc.Create(testCompany, dto.CreateToolRequest{Name: "Taladro", SerialNumber: "SN-001"})
	require.NoError(t, err)
	assert.Empty(t, out.WarehouseID)
	assert.Empty(t, out.CurrentUserID)
	assert.Equal(t, entity.ToolStatusAvailable, out.Status)
}

// Caso 3: Serial duplicado dentro de la empresa se rechaza.
func TestTool_SerialDuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := newToolUC(store)

	_, err := uc.Create(testCompany, dto.CreateToolRequest{Name: "Taladro", SerialNumber: "SN-001"})
	require.NoError(t, err)
	_, err = uc.Create(testCompany, dto.CreateToolRequest{Name: "Otro taladro", SerialNumber: "SN-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// En otra empresa el mismo serial es válido.
	_, err = uc.Create("cb000000-0000-0000-0000-000000000001", dto.CreateToolRequest{Name: "Taladro", SerialNumber: "SN-001"})
	assert.NoError(t, err)
}

// Caso 4: Una bodega explícita de otra empresa se rechaza como inexistente.
func TestTool_CrearConBodegaAjena(t *testing.T) {
	store := memory.NewStore()
	uc := newToolUC(store)
	ajena := seedDefaultWarehouse(t, store, "cb000000-0000-0000-0000-000000000001")

	_, err := uc.Create(testCompany, dto.CreateToolRequest{
		Name: "Taladro", SerialNumber: "SN-001", WarehouseID: ajena.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 5: Una herramienta en manos de un usuario no se elimina.
func TestTool_NoEliminarEnUso(t *testing.T) {
	store := memory.NewStore()
	uc := newToolUC(store)

	now := time.Now()
	require.NoError(t, memory.NewToolRepository(store).Create(&entity.Tool{
		ID: "t1", CompanyID: testCompany, SerialNumber: "SN-001", Name: "Taladro",
		CurrentUserID: "u1", CreatedAt: now, UpdatedAt: now,
	}))

	err := uc.Delete(testCompany, "t1")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"debe devolverse a bodega antes de eliminarla")
}

// Caso 6: Update no toca la custodia: solo la máquina de traslados lo hace.
func TestTool_UpdateNoTocaCustodia(t *testing.T) {
	store := memory.NewStore()
	uc := newToolUC(store)

	now := time.Now()
	require.NoError(t, memory.NewToolRepository(store).Create(&entity.Tool{
		ID: "t1", CompanyID: testCompany, SerialNumber: "SN-001", Name: "Taladro",
		CurrentUserID: "u1", CreatedAt: now, UpdatedAt: now,
	}))

	out, err := uc.Update(testCompany, "t1", dto.UpdateToolRequest{Name: strptr("Taladro percutor")})
	require.NoError(t, err)
	assert.Equal(t, "Taladro percutor", out.Name)
	assert.Equal(t, "u1", out.CurrentUserID, "la custodia debe quedar intacta")
}

// Caso 7: Eliminar una categoría desasocia sus herramientas sin tocarlas.
func TestCategory_EliminarDesasocia(t *testing.T) {
	store := memory.NewStore()
	catUC := usecase.NewCategoryUseCase(memory.NewCategoryRepository(store), memory.NewTxRunner(store))

	cat, err := catUC.Create(testCompany, dto.CreateCategoryRequest{Name: "Eléctricas"})
	require.NoError(t, err)

	now := time.Now()
	tools := memory.NewToolRepository(store)
	require.NoError(t, tools.Create(&entity.Tool{
		ID: "t1", CompanyID: testCompany, CategoryID: cat.ID, SerialNumber: "SN-001",
		Name: "Taladro", WarehouseID: "w1", CreatedAt: now, UpdatedAt: now,
	}))

	require.NoError(t, catUC.Delete(context.Background(), testCompany, cat.ID))

	tool, err := tools.GetByID("t1")
	require.NoError(t, err)
	assert.Empty(t, tool.CategoryID, "la herramienta queda sin categoría")
	assert.Equal(t, "w1", tool.WarehouseID, "la custodia no se toca")

	gone, err := memory.NewCategoryRepository(store).GetByID(cat.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
