package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateToolRequest entrada para crear una herramienta.
// WarehouseID vacío = la bodega por defecto de la empresa, si existe.
type CreateToolRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	SerialNumber string          `json:"serial_number" validate:"required,min=1,max=100"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"image_url"`
	Price        decimal.Decimal `json:"price"`
	WarehouseID  string          `json:"warehouse_id"`
	CategoryID   string          `json:"category_id"`
}

// UpdateToolRequest entrada para actualizar una herramienta (la custodia no
// se toca por aquí: solo por la máquina de traslados).
type UpdateToolRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"image_url"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category_id"`
}

// TransferToolRequest entrada para un traslado. Exactamente uno de
// to_user_id / to_warehouse_id.
type TransferToolRequest struct {
	ToUserID      string `json:"to_user_id"`
	ToWarehouseID string `json:"to_warehouse_id"`
	Notes         string `json:"notes"`
}

// CheckInToolRequest entrada para devolver a bodega.
type CheckInToolRequest struct {
	WarehouseID string `json:"warehouse_id"`
	Notes       string `json:"notes"`
}

// AssignToolRequest entrada para asignar una herramienta disponible.
type AssignToolRequest struct {
	ToUserID string `json:"to_user_id" validate:"required"`
	Notes    string `json:"notes"`
}

// ReturnToolRequest entrada para que el tenedor actual devuelva la herramienta.
type ReturnToolRequest struct {
	WarehouseID string `json:"warehouse_id"`
	Notes       string `json:"notes"`
}

// ToolResponse salida de una herramienta. Status es derivado de la custodia.
type ToolResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	CategoryID    string          `json:"category_id,omitempty"`
	SerialNumber  string          `json:"serial_number"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Status        string          `json:"status"`
	CurrentUserID string          `json:"current_user_id,omitempty"`
	WarehouseID   string          `json:"warehouse_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToolListResponse lista paginada de herramientas.
type ToolListResponse struct {
	Items []ToolResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
