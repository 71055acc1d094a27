package entity

import "time"

// Acciones registradas en el historial de custodia.
const (
	HistoryActionTransfer = "TRANSFER"
	HistoryActionCheckIn  = "CHECK_IN"
)

// ToolHistory es un registro inmutable (append-only) de una transición de
// custodia. En cada lado (from/to) a lo sumo uno de usuario/bodega está
// asignado, espejo del estado de la herramienta antes y después. Nunca se
// actualiza ni se elimina.
type ToolHistory struct {
	ID              string
	CompanyID       string
	ToolID          string
	Action          string // TRANSFER, CHECK_IN
	ActorID         string // usuario que ejecutó la operación
	FromUserID      string
	FromWarehouseID string
	ToUserID        string
	ToWarehouseID   string
	Notes           string
	CreatedAt       time.Time
}

// TenantID implementa tenant.Owned.
func (h *ToolHistory) TenantID() string {
	if h == nil {
		return ""
	}
	return h.CompanyID
}

// ToolHistoryDetail es el modelo de lectura del historial: el registro más
// los nombres resueltos en el momento de la consulta (nunca almacenados).
type ToolHistoryDetail struct {
	ToolHistory
	ToolName          string
	ActorName         string
	FromUserName      string
	FromWarehouseName string
	ToUserName        string
	ToWarehouseName   string
}
