package entity

import "time"

// Invitation representa una invitación para unirse a una empresa.
// Token es único y no adivinable. RoleID puede estar vacío (el usuario se
// crea sin rol). A lo sumo una invitación activa (sin usar, no expirada)
// por (email, empresa): crear otra devuelve la existente.
type Invitation struct {
	ID        string
	CompanyID string
	Email     string
	RoleID    string // vacío = sin rol asignado al registrarse
	Token     string
	ExpiresAt time.Time
	UsedAt    *time.Time // nil hasta consumirse
	CreatedAt time.Time
}

// TenantID implementa tenant.Owned.
func (i *Invitation) TenantID() string {
	if i == nil {
		return ""
	}
	return i.CompanyID
}

// Used indica si la invitación ya fue consumida.
func (i *Invitation) Used() bool { return i.UsedAt != nil }

// Expired indica si la invitación venció respecto a now.
func (i *Invitation) Expired(now time.Time) bool { return now.After(i.ExpiresAt) }

// Active indica si la invitación puede consumirse todavía.
func (i *Invitation) Active(now time.Time) bool { return !i.Used() && !i.Expired(now) }
