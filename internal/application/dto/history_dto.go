package dto

import "time"

// HistoryEntryResponse un registro del historial de custodia, con los
// nombres resueltos y una descripción legible armada al momento de la lectura.
type HistoryEntryResponse struct {
	ID          string    `json:"id"`
	ToolID      string    `json:"tool_id"`
	ToolName    string    `json:"tool_name"`
	Action      string    `json:"action"`
	ActorID     string    `json:"actor_id"`
	ActorName   string    `json:"actor_name"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryListResponse lista del historial, más reciente primero.
type HistoryListResponse struct {
	Items []HistoryEntryResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
