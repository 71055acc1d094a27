package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(&w.ID, &w.CompanyID, &w.Name, &w.Address, &w.IsDefault,
		&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

const warehouseColumns = `id, company_id, name, address, is_default, created_at, updated_at`

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, company_id, name, address, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.CompanyID, warehouse.Name, warehouse.Address,
		warehouse.IsDefault, warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		return mapUnique(fmt.Errorf("insert warehouse: %w", err), "nombre de bodega ya existe")
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(context.Background(),
		`SELECT `+warehouseColumns+` FROM warehouses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// GetByCompanyAndName obtiene una bodega por nombre dentro de una empresa.
func (r *WarehouseRepo) GetByCompanyAndName(companyID, name string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(context.Background(),
		`SELECT `+warehouseColumns+` FROM warehouses WHERE company_id = $1 AND name = $2`,
		companyID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by name: %w", err)
	}
	return w, nil
}

// GetDefaultByCompany obtiene la bodega por defecto de la empresa, o nil.
func (r *WarehouseRepo) GetDefaultByCompany(companyID string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(context.Background(),
		`SELECT `+warehouseColumns+` FROM warehouses WHERE company_id = $1 AND is_default`,
		companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get default warehouse: %w", err)
	}
	return w, nil
}

// ClearDefault desmarca is_default en todas las bodegas de la empresa.
func (r *WarehouseRepo) ClearDefault(companyID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE warehouses SET is_default = false WHERE company_id = $1 AND is_default`,
		companyID)
	if err != nil {
		return fmt.Errorf("clear default warehouse: %w", err)
	}
	return nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2, address = $3, is_default = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.IsDefault,
		warehouse.UpdatedAt,
	)
	if err != nil {
		return mapUnique(fmt.Errorf("update warehouse: %w", err), "nombre de bodega ya existe")
	}
	return nil
}

// ListByCompany lista bodegas por empresa con paginación.
func (r *WarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + `
		FROM warehouses WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Delete elimina una bodega por ID.
func (r *WarehouseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
