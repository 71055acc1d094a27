package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Herramientas-api/internal/application/history"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/infrastructure/memory"
)

const testCompany = "ca000000-0000-0000-0000-000000000001"

// seedHistory arma una empresa con una herramienta que pasó por dos
// movimientos: bodega→Ana (TRANSFER) y Ana→bodega (CHECK_IN).
func seedHistory(t *testing.T, store *memory.Store) {
	t.Helper()
	now := time.Now()

	require.NoError(t, memory.NewUserRepository(store).Create(&entity.User{
		ID: "u-ana", CompanyID: testCompany, Email: "ana@acme.com", Name: "Ana",
		Status: "active", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, memory.NewWarehouseRepository(store).Create(&entity.Warehouse{
		ID: "w-main", CompanyID: testCompany, Name: "Principal", IsDefault: true,
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, memory.NewToolRepository(store).Create(&entity.Tool{
		ID: "t-drill", CompanyID: testCompany, SerialNumber: "SN-1", Name: "Taladro",
		WarehouseID: "w-main", CreatedAt: now, UpdatedAt: now,
	}))

	hist := memory.NewToolHistoryRepository(store)
	require.NoError(t, hist.Create(&entity.ToolHistory{
		ID: "h1", CompanyID: testCompany, ToolID: "t-drill",
		Action: entity.HistoryActionTransfer, ActorID: "u-ana",
		FromWarehouseID: "w-main", ToUserID: "u-ana",
		CreatedAt: now.Add(-2 * time.Hour),
	}))
	require.NoError(t, hist.Create(&entity.ToolHistory{
		ID: "h2", CompanyID: testCompany, ToolID: "t-drill",
		Action: entity.HistoryActionCheckIn, ActorID: "u-ana",
		FromUserID: "u-ana", ToWarehouseID: "w-main",
		CreatedAt: now.Add(-time.Hour),
	}))
}

func newHistoryUC(store *memory.Store) *history.HistoryUseCase {
	return history.NewHistoryUseCase(
		memory.NewToolHistoryRepository(store),
		memory.NewToolRepository(store),
	)
}

// Caso 1: El historial de una herramienta llega más reciente primero, con los
// nombres resueltos y la descripción armada en la lectura.
func TestHistory_PorHerramienta(t *testing.T) {
	store := memory.NewStore()
	seedHistory(t, store)
	uc := newHistoryUC(store)

	out, err := uc.ByTool(testCompany, "t-drill", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	assert.Equal(t, "h2", out.Items[0].ID, "más reciente primero")
	assert.Equal(t, "Ana devolvió Taladro a la bodega Principal", out.Items[0].Description)
	assert.Equal(t, "h1", out.Items[1].ID)
	assert.Equal(t, "Ana trasladó Taladro de la bodega Principal a Ana", out.Items[1].Description)
	assert.Equal(t, "Taladro", out.Items[1].ToolName)
	assert.Equal(t, "Ana", out.Items[1].ActorName)
}

// Caso 2: El historial de una herramienta ajena es invisible.
func TestHistory_CrossTenant(t *testing.T) {
	store := memory.NewStore()
	seedHistory(t, store)
	uc := newHistoryUC(store)

	_, err := uc.ByTool("cb000000-0000-0000-0000-000000000001", "t-drill", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 3: Los movimientos recientes de la empresa cruzan herramientas y
// respetan el límite.
func TestHistory_RecientesDeEmpresa(t *testing.T) {
	store := memory.NewStore()
	seedHistory(t, store)
	uc := newHistoryUC(store)

	out, err := uc.RecentByCompany(testCompany, 1)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "h2", out.Items[0].ID)
}

// Caso 4: Describe degrada con gracia cuando los nombres ya no resuelven
// (actor o herramienta eliminados, lado sin ubicación).
func TestHistory_DescribeSinNombres(t *testing.T) {
	d := &entity.ToolHistoryDetail{
		ToolHistory: entity.ToolHistory{Action: entity.HistoryActionTransfer},
		ToUserName:  "Beto",
	}
	assert.Equal(t, "alguien trasladó la herramienta de sin ubicación a Beto", history.Describe(d))

	d = &entity.ToolHistoryDetail{
		ToolHistory:     entity.ToolHistory{Action: entity.HistoryActionCheckIn},
		ActorName:       "Ana",
		ToolName:        "Sierra",
		ToWarehouseName: "Taller",
	}
	assert.Equal(t, "Ana devolvió Sierra a la bodega Taller", history.Describe(d))
}
