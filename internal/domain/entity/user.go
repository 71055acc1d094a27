package entity

import "time"

// User representa un usuario del sistema (pertenece a una Company).
// RoleID puede estar vacío: un usuario sin rol no pasa ningún chequeo de permisos.
type User struct {
	ID           string
	CompanyID    string
	RoleID       string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TenantID implementa tenant.Owned.
func (u *User) TenantID() string {
	if u == nil {
		return ""
	}
	return u.CompanyID
}
