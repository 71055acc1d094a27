package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.ToolRepository = (*ToolRepo)(nil)

// ToolRepo implementación del puerto ToolRepository sobre PostgreSQL.
// El par de custodia (current_user_id, warehouse_id) está respaldado por un
// CHECK en la tabla: nunca ambos a la vez.
type ToolRepo struct {
	q Querier
}

// NewToolRepository construye el adaptador. Pasar pool o tx (Querier).
func NewToolRepository(q Querier) *ToolRepo {
	return &ToolRepo{q: q}
}

const toolColumns = `id, company_id, COALESCE(category_id::text, ''), serial_number, name,
	description, image_url, price, COALESCE(current_user_id::text, ''),
	COALESCE(warehouse_id::text, ''), created_at, updated_at`

func scanTool(row pgx.Row) (*entity.Tool, error) {
	var t entity.Tool
	err := row.Scan(&t.ID, &t.CompanyID, &t.CategoryID, &t.SerialNumber, &t.Name,
		&t.Description, &t.ImageURL, &t.Price, &t.CurrentUserID, &t.WarehouseID,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una nueva herramienta.
func (r *ToolRepo) Create(tool *entity.Tool) error {
	query := `
		INSERT INTO tools (id, company_id, category_id, serial_number, name, description,
			image_url, price, current_user_id, warehouse_id, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8,
			NULLIF($9, '')::uuid, NULLIF($10, '')::uuid, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		tool.ID, tool.CompanyID, tool.CategoryID, tool.SerialNumber, tool.Name,
		tool.Description, tool.ImageURL, tool.Price, tool.CurrentUserID,
		tool.WarehouseID, tool.CreatedAt, tool.UpdatedAt,
	)
	if err != nil {
		return mapUnique(fmt.Errorf("insert tool: %w", err), "número de serie ya existe")
	}
	return nil
}

// GetByID obtiene una herramienta por ID.
func (r *ToolRepo) GetByID(id string) (*entity.Tool, error) {
	t, err := scanTool(r.q.QueryRow(context.Background(),
		`SELECT `+toolColumns+` FROM tools WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool: %w", err)
	}
	return t, nil
}

// GetForUpdate obtiene la herramienta bloqueando la fila (SELECT FOR UPDATE).
// Dentro de una transacción serializa los traslados concurrentes: el segundo
// en llegar espera el commit del primero y relee el estado ya confirmado.
func (r *ToolRepo) GetForUpdate(id string) (*entity.Tool, error) {
	t, err := scanTool(r.q.QueryRow(context.Background(),
		`SELECT `+toolColumns+` FROM tools WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool for update: %w", err)
	}
	return t, nil
}

// GetByCompanyAndSerial obtiene una herramienta por número de serie dentro
// de una empresa.
func (r *ToolRepo) GetByCompanyAndSerial(companyID, serialNumber string) (*entity.Tool, error) {
	t, err := scanTool(r.q.QueryRow(context.Background(),
		`SELECT `+toolColumns+` FROM tools WHERE company_id = $1 AND serial_number = $2`,
		companyID, serialNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool by serial: %w", err)
	}
	return t, nil
}

// Update actualiza una herramienta existente (incluida su custodia).
func (r *ToolRepo) Update(tool *entity.Tool) error {
	query := `
		UPDATE tools SET category_id = NULLIF($2, '')::uuid, name = $3, description = $4,
			image_url = $5, price = $6, current_user_id = NULLIF($7, '')::uuid,
			warehouse_id = NULLIF($8, '')::uuid, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tool.ID, tool.CategoryID, tool.Name, tool.Description, tool.ImageURL,
		tool.Price, tool.CurrentUserID, tool.WarehouseID, tool.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tool: %w", err)
	}
	return nil
}

// ListByCompany lista herramientas por empresa con paginación.
func (r *ToolRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Tool, error) {
	query := `SELECT ` + toolColumns + `
		FROM tools WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListByUser lista las herramientas en custodia de un usuario.
func (r *ToolRepo) ListByUser(userID string) ([]*entity.Tool, error) {
	query := `SELECT ` + toolColumns + `
		FROM tools WHERE current_user_id = $1 ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tools by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete elimina una herramienta por ID.
func (r *ToolRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}

// CountByWarehouse cuenta herramientas almacenadas en una bodega.
func (r *ToolRepo) CountByWarehouse(warehouseID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tools WHERE warehouse_id = $1`, warehouseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tools by warehouse: %w", err)
	}
	return count, nil
}

// CountByCategory cuenta herramientas con una categoría.
func (r *ToolRepo) CountByCategory(categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tools WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tools by category: %w", err)
	}
	return count, nil
}

// CountByUser cuenta herramientas en custodia de un usuario.
func (r *ToolRepo) CountByUser(userID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tools WHERE current_user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count tools by user: %w", err)
	}
	return count, nil
}

// ClearCategory desasocia la categoría de todas sus herramientas.
func (r *ToolRepo) ClearCategory(categoryID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tools SET category_id = NULL WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("clear category on tools: %w", err)
	}
	return nil
}
