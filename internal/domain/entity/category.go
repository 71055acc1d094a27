package entity

import "time"

// Category representa una categoría de herramientas (clasificación, sin rol
// en la máquina de custodia). Name es único por empresa. Al eliminarla, las
// herramientas que la referencian quedan sin categoría (no se eliminan).
type Category struct {
	ID        string
	CompanyID string
	Name      string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TenantID implementa tenant.Owned.
func (c *Category) TenantID() string {
	if c == nil {
		return ""
	}
	return c.CompanyID
}
