package entity

import "time"

// Company representa una organización/tenant del sistema. Es la raíz del
// agregado: usuarios, roles, bodegas, categorías, herramientas e invitaciones
// pertenecen exactamente a una empresa y nunca se acceden a través de otra.
type Company struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria (opcional)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
