package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de una herramienta según su custodia.
const (
	ToolStatusAvailable = "AVAILABLE" // en bodega
	ToolStatusInUse     = "IN_USE"    // en manos de un usuario
)

// Tool representa una herramienta o activo del inventario.
// SerialNumber es único por empresa.
//
// Custodia: a lo sumo uno de CurrentUserID / WarehouseID está asignado.
// Ambos vacíos solo es un estado transitorio permitido al crear la
// herramienta cuando la empresa no tiene bodega por defecto; cualquier
// traslado posterior lo corrige. Ambos asignados nunca es válido.
type Tool struct {
	ID            string
	CompanyID     string
	CategoryID    string // vacío si no tiene categoría
	SerialNumber  string
	Name          string
	Description   string
	ImageURL      string
	Price         decimal.Decimal
	CurrentUserID string // custodia: exclusivo con WarehouseID
	WarehouseID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TenantID implementa tenant.Owned.
func (t *Tool) TenantID() string {
	if t == nil {
		return ""
	}
	return t.CompanyID
}

// Status deriva el estado de la custodia actual: IN_USE si un usuario la
// tiene, AVAILABLE en cualquier otro caso. No se almacena.
func (t *Tool) Status() string {
	if t.CurrentUserID != "" {
		return ToolStatusInUse
	}
	return ToolStatusAvailable
}

// HeldByUser indica si la herramienta está en manos de un usuario.
func (t *Tool) HeldByUser() bool { return t.CurrentUserID != "" }

// CustodyValid verifica el invariante de custodia: nunca usuario y bodega
// a la vez.
func (t *Tool) CustodyValid() bool {
	return t.CurrentUserID == "" || t.WarehouseID == ""
}
