package entity

import (
	"time"

	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
)

// Role representa un rol con permisos dentro de una empresa.
// Name es único por empresa. IsBoss marca el rol del fundador: inmutable,
// no eliminable, y exento de los chequeos por token en la gestión de roles.
// La gestión de roles se protege por IsBoss y no por un token de capacidad,
// para que un rol no-boss no pueda concederse a sí mismo derechos equivalentes.
type Role struct {
	ID          string
	CompanyID   string
	Name        string
	Permissions []permission.Permission
	IsBoss      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TenantID implementa tenant.Owned.
func (r *Role) TenantID() string {
	if r == nil {
		return ""
	}
	return r.CompanyID
}

// HasPermission indica si el rol tiene el token exacto.
// Un rol nil evalúa siempre a false (usuario sin rol), nunca panic.
func (r *Role) HasPermission(p permission.Permission) bool {
	if r == nil {
		return false
	}
	for _, have := range r.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// HasAnyPermission indica si la intersección con los tokens dados es no vacía.
func (r *Role) HasAnyPermission(ps ...permission.Permission) bool {
	if r == nil {
		return false
	}
	for _, p := range ps {
		if r.HasPermission(p) {
			return true
		}
	}
	return false
}
