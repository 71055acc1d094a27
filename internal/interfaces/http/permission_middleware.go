package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

// RequirePermission devuelve un middleware que exige el token de capacidad
// dado. Debe usarse DESPUÉS de AuthMiddleware.
//
// El rol se recarga desde la DB en cada petición: revocar un permiso surte
// efecto de inmediato, sin esperar a que expire el JWT. Un usuario sin rol
// no pasa ningún chequeo.
//
// Comportamiento:
//   - 403 Forbidden → sin rol, rol de otra empresa, o rol sin el permiso.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequirePermission(p permission.Permission, roleRepo repository.RoleRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id no encontrado en el token",
			})
		}
		roleID := GetRoleID(c)
		if roleID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el usuario no tiene rol asignado",
			})
		}
		role, err := roleRepo.GetByID(roleID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}
		if role == nil || role.CompanyID != companyID || !role.HasPermission(p) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol no tiene el permiso '" + p.String() + "'",
			})
		}
		return c.Next()
	}
}

// RequireBoss devuelve un middleware que exige el rol boss de la empresa.
// Protege la gestión de roles: esas operaciones no usan tokens de capacidad,
// para que un rol no-boss no pueda concederse derechos equivalentes.
func RequireBoss(roleRepo repository.RoleRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id no encontrado en el token",
			})
		}
		roleID := GetRoleID(c)
		if roleID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "solo el rol administrador puede hacer esto",
			})
		}
		role, err := roleRepo.GetByID(roleID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}
		if role == nil || role.CompanyID != companyID || !role.IsBoss {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "solo el rol administrador puede hacer esto",
			})
		}
		return c.Next()
	}
}
