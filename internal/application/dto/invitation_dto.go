package dto

import "time"

// CreateInvitationRequest entrada para invitar a un email a la empresa.
type CreateInvitationRequest struct {
	Email  string `json:"email" validate:"required,email"`
	RoleID string `json:"role_id"`
}

// InvitationResponse salida de una invitación.
type InvitationResponse struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Email     string     `json:"email"`
	RoleID    string     `json:"role_id,omitempty"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// InvitationListResponse lista paginada de invitaciones.
type InvitationListResponse struct {
	Items []InvitationResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
