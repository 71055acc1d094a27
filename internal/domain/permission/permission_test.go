package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
)

// Caso 1: Un token conocido se parsea a su constante.
func TestParse_TokenConocido(t *testing.T) {
	p, err := permission.Parse("TOOL_TRANSFER")
	require.NoError(t, err)
	assert.Equal(t, permission.ToolTransfer, p)
}

// Caso 2: Un token desconocido se rechaza con ErrInvalidInput — el registro
// es cerrado, nada de permisos inventados.
func TestParse_TokenDesconocido(t *testing.T) {
	_, err := permission.Parse("TOOL_FLY")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un permiso desconocido debe rechazarse como entrada inválida")
}

// Caso 3: ParseAll deduplica preservando el orden de la primera aparición.
func TestParseAll_Deduplica(t *testing.T) {
	ps, err := permission.ParseAll([]string{"TOOL_CREATE", "TOOL_DELETE", "TOOL_CREATE"})
	require.NoError(t, err)
	assert.Equal(t, []permission.Permission{permission.ToolCreate, permission.ToolDelete}, ps)
}

// Caso 4: ParseAll falla completo si cualquier token es inválido.
func TestParseAll_FallaConUnoInvalido(t *testing.T) {
	_, err := permission.ParseAll([]string{"TOOL_CREATE", "NO_EXISTE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 5: All devuelve el catálogo completo en orden estable.
func TestAll_CatalogoEstable(t *testing.T) {
	a := permission.All()
	b := permission.All()
	require.Equal(t, a, b, "el orden del catálogo debe ser estable entre llamadas")
	assert.Len(t, a, 15)
	for _, p := range a {
		assert.True(t, p.Valid(), "todo permiso del catálogo debe ser válido: %s", p)
	}
}
