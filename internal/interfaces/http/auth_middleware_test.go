package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
	"github.com/jhoicas/Herramientas-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Herramientas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Herramientas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "herramientas-api-test"
	testExpMin    = 60
)

// seedRole crea un rol en el store en memoria y lo devuelve.
func seedRole(t *testing.T, store *memory.Store, companyID string, isBoss bool, perms ...permission.Permission) *entity.Role {
	t.Helper()
	now := time.Now()
	role := &entity.Role{
		ID: "r-" + companyID[:8], CompanyID: companyID, Name: "Rol de prueba",
		Permissions: perms, IsBoss: isBoss, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, memory.NewRoleRepository(store).Create(role))
	return role
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - El middleware de autorización recibido (nil = solo auth)
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(authz fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if authz != nil {
		handlers = append(handlers, authz)
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":      true,
			"user_id": apphttp.GetUserID(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenFor genera un JWT con el rol indicado.
func tokenFor(t *testing.T, roleID string, isBoss bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, roleID, isBoss, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Un token válido pasa y los claims quedan en locals.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp(nil)
	resp := doRequest(t, app, tokenFor(t, "", false))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeError(t, resp)
	assert.Equal(t, testUserID, out["user_id"])
}

// Caso 2: Sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(nil)
	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp)["code"])
}

// Caso 3: Header sin el esquema Bearer → 401 INVALID_TOKEN.
func TestAuthMiddleware_EsquemaIncorrecto(t *testing.T) {
	app := buildTestApp(nil)
	resp := doRequest(t, app, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp)["code"])
}

// Caso 4: Token firmado con otro secreto → 401.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, testCompanyID, "", false, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(nil)
	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp)["code"])
}

// Caso 5: Token expirado → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "", false, testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp(nil)
	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission / RequireBoss
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: El rol tiene el permiso requerido → 200.
func TestRequirePermission_ConPermiso(t *testing.T) {
	store := memory.NewStore()
	role := seedRole(t, store, testCompanyID, false, permission.ToolTransfer)
	app := buildTestApp(apphttp.RequirePermission(permission.ToolTransfer, memory.NewRoleRepository(store)))

	resp := doRequest(t, app, tokenFor(t, role.ID, false))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 7: El rol existe pero no tiene el permiso → 403.
func TestRequirePermission_SinPermiso(t *testing.T) {
	store := memory.NewStore()
	role := seedRole(t, store, testCompanyID, false, permission.ToolCheckIn)
	app := buildTestApp(apphttp.RequirePermission(permission.ToolTransfer, memory.NewRoleRepository(store)))

	resp := doRequest(t, app, tokenFor(t, role.ID, false))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeError(t, resp)["code"])
}

// Caso 8: Usuario sin rol asignado → 403.
func TestRequirePermission_SinRol(t *testing.T) {
	store := memory.NewStore()
	app := buildTestApp(apphttp.RequirePermission(permission.ToolTransfer, memory.NewRoleRepository(store)))

	resp := doRequest(t, app, tokenFor(t, "", false))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 9: El rol es de otra empresa → 403, aunque el permiso exista.
func TestRequirePermission_RolDeOtraEmpresa(t *testing.T) {
	store := memory.NewStore()
	ajeno := seedRole(t, store, "99999999-0000-0000-0000-000000000009", false, permission.ToolTransfer)
	app := buildTestApp(apphttp.RequirePermission(permission.ToolTransfer, memory.NewRoleRepository(store)))

	resp := doRequest(t, app, tokenFor(t, ajeno.ID, false))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 10: La revocación surte efecto sin reemitir el token: el permiso se
// verifica contra la DB, no contra el claim.
func TestRequirePermission_RevocacionInmediata(t *testing.T) {
	store := memory.NewStore()
	role := seedRole(t, store, testCompanyID, false, permission.ToolTransfer)
	roleRepo := memory.NewRoleRepository(store)
	app := buildTestApp(apphttp.RequirePermission(permission.ToolTransfer, roleRepo))
	token := tokenFor(t, role.ID, false)

	resp := doRequest(t, app, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	role.Permissions = nil
	require.NoError(t, roleRepo.Update(role))

	resp = doRequest(t, app, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el mismo token debe dejar de servir tras revocar el permiso")
}

// Caso 11: RequireBoss solo deja pasar al rol boss; el claim is_boss del
// token no cuenta.
func TestRequireBoss(t *testing.T) {
	store := memory.NewStore()
	boss := seedRole(t, store, testCompanyID, true)
	app := buildTestApp(apphttp.RequireBoss(memory.NewRoleRepository(store)))

	resp := doRequest(t, app, tokenFor(t, boss.ID, true))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	store2 := memory.NewStore()
	normal := seedRole(t, store2, testCompanyID, false, permission.ToolTransfer)
	app2 := buildTestApp(apphttp.RequireBoss(memory.NewRoleRepository(store2)))

	// is_boss=true en el token no basta: manda lo que diga la DB.
	resp = doRequest(t, app2, tokenFor(t, normal.ID, true))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
