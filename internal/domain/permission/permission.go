package permission

import (
	"fmt"

	"github.com/jhoicas/Herramientas-api/internal/domain"
)

// Permission es un token de capacidad cerrado: solo los valores declarados
// abajo son válidos. Un token desconocido falla en Parse, nunca se evalúa
// silenciosamente como false.
type Permission string

// Tokens de capacidad conocidos.
const (
	ToolCreate   Permission = "TOOL_CREATE"
	ToolUpdate   Permission = "TOOL_UPDATE"
	ToolDelete   Permission = "TOOL_DELETE"
	ToolTransfer Permission = "TOOL_TRANSFER"
	ToolCheckIn  Permission = "TOOL_CHECKIN"

	WarehouseCreate Permission = "WAREHOUSE_CREATE"
	WarehouseUpdate Permission = "WAREHOUSE_UPDATE"
	WarehouseDelete Permission = "WAREHOUSE_DELETE"

	CategoryCreate Permission = "CATEGORY_CREATE"
	CategoryUpdate Permission = "CATEGORY_UPDATE"
	CategoryDelete Permission = "CATEGORY_DELETE"

	UserInvite     Permission = "USER_INVITE"
	UserDelete     Permission = "USER_DELETE"
	UserAssignRole Permission = "USER_ASSIGN_ROLE"

	HistoryView Permission = "HISTORY_VIEW"
)

var registry = map[Permission]struct{}{
	ToolCreate:      {},
	ToolUpdate:      {},
	ToolDelete:      {},
	ToolTransfer:    {},
	ToolCheckIn:     {},
	WarehouseCreate: {},
	WarehouseUpdate: {},
	WarehouseDelete: {},
	CategoryCreate:  {},
	CategoryUpdate:  {},
	CategoryDelete:  {},
	UserInvite:      {},
	UserDelete:      {},
	UserAssignRole:  {},
	HistoryView:     {},
}

// Valid indica si el token pertenece al registro.
func (p Permission) Valid() bool {
	_, ok := registry[p]
	return ok
}

// String implementa fmt.Stringer.
func (p Permission) String() string { return string(p) }

// Parse convierte un string en Permission. Token desconocido => ErrInvalidInput.
func Parse(s string) (Permission, error) {
	p := Permission(s)
	if !p.Valid() {
		return "", fmt.Errorf("permiso desconocido %q: %w", s, domain.ErrInvalidInput)
	}
	return p, nil
}

// ParseAll convierte una lista de strings (ej. al cargar un rol desde la DB o
// desde un request). Colapsa duplicados preservando el orden de aparición.
func ParseAll(ss []string) ([]Permission, error) {
	seen := make(map[Permission]struct{}, len(ss))
	out := make([]Permission, 0, len(ss))
	for _, s := range ss {
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

// All devuelve el registro completo (para validación y para exponer el
// catálogo de permisos en la API). El orden es estable.
func All() []Permission {
	return []Permission{
		ToolCreate, ToolUpdate, ToolDelete, ToolTransfer, ToolCheckIn,
		WarehouseCreate, WarehouseUpdate, WarehouseDelete,
		CategoryCreate, CategoryUpdate, CategoryDelete,
		UserInvite, UserDelete, UserAssignRole,
		HistoryView,
	}
}

// Strings convierte una lista de permisos a []string (para persistencia text[]).
func Strings(ps []Permission) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}
