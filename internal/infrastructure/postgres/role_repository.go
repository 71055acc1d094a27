package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Permissions se almacena como text[]; al cargar se valida contra el
// registro cerrado (un token desconocido en la DB es un error, no un
// permiso que falla en silencio).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func scanRole(row pgx.Row) (*entity.Role, error) {
	var r entity.Role
	var perms []string
	err := row.Scan(&r.ID, &r.CompanyID, &r.Name, &perms, &r.IsBoss, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.Permissions, err = permission.ParseAll(perms)
	if err != nil {
		return nil, fmt.Errorf("cargar permisos del rol %s: %w", r.ID, err)
	}
	return &r, nil
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, company_id, name, permissions, is_boss, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.CompanyID, role.Name, permission.Strings(role.Permissions),
		role.IsBoss, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		return mapUnique(fmt.Errorf("insert role: %w", err), "nombre de rol ya existe")
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	role, err := scanRole(r.q.QueryRow(context.Background(), `
		SELECT id, company_id, name, permissions, is_boss, created_at, updated_at
		FROM roles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

// GetByCompanyAndName obtiene un rol por nombre dentro de una empresa.
func (r *RoleRepo) GetByCompanyAndName(companyID, name string) (*entity.Role, error) {
	role, err := scanRole(r.q.QueryRow(context.Background(), `
		SELECT id, company_id, name, permissions, is_boss, created_at, updated_at
		FROM roles WHERE company_id = $1 AND name = $2`, companyID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return role, nil
}

// Update actualiza un rol existente.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, permissions = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Name, permission.Strings(role.Permissions), role.UpdatedAt,
	)
	if err != nil {
		return mapUnique(fmt.Errorf("update role: %w", err), "nombre de rol ya existe")
	}
	return nil
}

// ListByCompany lista roles por empresa con paginación.
func (r *RoleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Role, error) {
	query := `
		SELECT id, company_id, name, permissions, is_boss, created_at, updated_at
		FROM roles WHERE company_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// Delete elimina un rol por ID.
func (r *RoleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
