package entity

import "time"

// Warehouse representa una bodega donde se almacenan herramientas.
// Name es único por empresa. Invariante: a lo sumo una bodega con
// IsDefault=true por empresa; el cambio de default se hace en una sola
// transacción (limpiar la anterior + marcar la nueva).
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TenantID implementa tenant.Owned.
func (w *Warehouse) TenantID() string {
	if w == nil {
		return ""
	}
	return w.CompanyID
}
