package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
)

// Caso 1: El estado se deriva de la custodia, nunca se almacena.
func TestTool_StatusDerivado(t *testing.T) {
	enBodega := &entity.Tool{WarehouseID: "w1"}
	assert.Equal(t, entity.ToolStatusAvailable, enBodega.Status())
	assert.False(t, enBodega.HeldByUser())

	enManos := &entity.Tool{CurrentUserID: "u1"}
	assert.Equal(t, entity.ToolStatusInUse, enManos.Status())
	assert.True(t, enManos.HeldByUser())

	// Sin custodia (transitorio al crear sin bodega por defecto): disponible.
	sinCustodia := &entity.Tool{}
	assert.Equal(t, entity.ToolStatusAvailable, sinCustodia.Status())
}

// Caso 2: El invariante de custodia rechaza usuario y bodega a la vez.
func TestTool_CustodyValid(t *testing.T) {
	assert.True(t, (&entity.Tool{WarehouseID: "w1"}).CustodyValid())
	assert.True(t, (&entity.Tool{CurrentUserID: "u1"}).CustodyValid())
	assert.True(t, (&entity.Tool{}).CustodyValid())
	assert.False(t, (&entity.Tool{CurrentUserID: "u1", WarehouseID: "w1"}).CustodyValid(),
		"usuario y bodega a la vez nunca es custodia válida")
}

// Caso 3: Un rol nil no pasa ningún chequeo de permisos (usuario sin rol).
func TestRole_NilSeguroEnPermisos(t *testing.T) {
	var r *entity.Role
	assert.False(t, r.HasPermission(permission.ToolCreate))
	assert.False(t, r.HasAnyPermission(permission.ToolCreate, permission.ToolDelete))
}

// Caso 4: Ciclo de vida de una invitación: activa → usada / expirada.
func TestInvitation_Activa(t *testing.T) {
	now := time.Now()
	inv := &entity.Invitation{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, inv.Active(now))

	usada := *inv
	at := now
	usada.UsedAt = &at
	assert.True(t, usada.Used())
	assert.False(t, usada.Active(now))

	vencida := &entity.Invitation{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, vencida.Expired(now))
	assert.False(t, vencida.Active(now))
}
