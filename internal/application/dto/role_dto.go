package dto

import "time"

// CreateRoleRequest entrada para crear un rol.
// Permissions son tokens de capacidad del registro cerrado; un token
// desconocido rechaza la petición completa.
type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Permissions []string `json:"permissions"`
}

// UpdateRoleRequest entrada para actualizar un rol (no aplica a roles boss).
type UpdateRoleRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Permissions []string `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	IsBoss      bool      `json:"is_boss"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleListResponse lista paginada de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// AssignRoleRequest entrada para asignar un rol a un usuario.
type AssignRoleRequest struct {
	RoleID string `json:"role_id" validate:"required"`
}
