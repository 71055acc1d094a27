package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.ToolHistoryRepository = (*ToolHistoryRepo)(nil)

// ToolHistoryRepo implementación del puerto ToolHistoryRepository sobre
// PostgreSQL. Append-only: no hay UPDATE ni DELETE sobre tool_history.
type ToolHistoryRepo struct {
	q Querier
}

// NewToolHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewToolHistoryRepository(q Querier) *ToolHistoryRepo {
	return &ToolHistoryRepo{q: q}
}

// Create agrega un registro al historial. Se invoca siempre dentro de la
// misma transacción que muta la custodia de la herramienta.
func (r *ToolHistoryRepo) Create(record *entity.ToolHistory) error {
	query := `
		INSERT INTO tool_history (id, company_id, tool_id, action, actor_id,
			from_user_id, from_warehouse_id, to_user_id, to_warehouse_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, NULLIF($7, '')::uuid,
			NULLIF($8, '')::uuid, NULLIF($9, '')::uuid, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.CompanyID, record.ToolID, record.Action, record.ActorID,
		record.FromUserID, record.FromWarehouseID, record.ToUserID,
		record.ToWarehouseID, record.Notes, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tool history: %w", err)
	}
	return nil
}

// historySelect resuelve los nombres de actor/origen/destino con LEFT JOIN
// en el momento de la lectura; nada de esto se almacena en el registro.
const historySelect = `
	SELECT h.id, h.company_id, h.tool_id, h.action, h.actor_id,
		COALESCE(h.from_user_id::text, ''), COALESCE(h.from_warehouse_id::text, ''),
		COALESCE(h.to_user_id::text, ''), COALESCE(h.to_warehouse_id::text, ''),
		h.notes, h.created_at,
		COALESCE(t.name, ''), COALESCE(actor.name, ''),
		COALESCE(fu.name, ''), COALESCE(fw.name, ''),
		COALESCE(tu.name, ''), COALESCE(tw.name, '')
	FROM tool_history h
	LEFT JOIN tools t ON t.id = h.tool_id
	LEFT JOIN users actor ON actor.id = h.actor_id
	LEFT JOIN users fu ON fu.id = h.from_user_id
	LEFT JOIN warehouses fw ON fw.id = h.from_warehouse_id
	LEFT JOIN users tu ON tu.id = h.to_user_id
	LEFT JOIN warehouses tw ON tw.id = h.to_warehouse_id`

func scanHistoryDetail(rows pgx.Rows) (*entity.ToolHistoryDetail, error) {
	var d entity.ToolHistoryDetail
	err := rows.Scan(&d.ID, &d.CompanyID, &d.ToolID, &d.Action, &d.ActorID,
		&d.FromUserID, &d.FromWarehouseID, &d.ToUserID, &d.ToWarehouseID,
		&d.Notes, &d.CreatedAt,
		&d.ToolName, &d.ActorName,
		&d.FromUserName, &d.FromWarehouseName,
		&d.ToUserName, &d.ToWarehouseName)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByTool historial de una herramienta, más reciente primero.
func (r *ToolHistoryRepo) ListByTool(toolID string, limit, offset int) ([]*entity.ToolHistoryDetail, error) {
	query := historySelect + `
	WHERE h.tool_id = $1
	ORDER BY h.created_at DESC
	LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, toolID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tool history: %w", err)
	}
	defer rows.Close()
	var list []*entity.ToolHistoryDetail
	for rows.Next() {
		d, err := scanHistoryDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool history: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ListRecentByCompany últimos movimientos de la empresa, cruzando todas las
// herramientas, más reciente primero.
func (r *ToolHistoryRepo) ListRecentByCompany(companyID string, limit int) ([]*entity.ToolHistoryDetail, error) {
	query := historySelect + `
	WHERE h.company_id = $1
	ORDER BY h.created_at DESC
	LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent history: %w", err)
	}
	defer rows.Close()
	var list []*entity.ToolHistoryDetail
	for rows.Next() {
		d, err := scanHistoryDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool history: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
