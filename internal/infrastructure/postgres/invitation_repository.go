package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación del puerto InvitationRepository sobre PostgreSQL.
type InvitationRepo struct {
	q Querier
}

// NewInvitationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvitationRepository(q Querier) *InvitationRepo {
	return &InvitationRepo{q: q}
}

const invitationColumns = `id, company_id, email, COALESCE(role_id::text, ''), token, expires_at, used_at, created_at`

func scanInvitation(row pgx.Row) (*entity.Invitation, error) {
	var i entity.Invitation
	err := row.Scan(&i.ID, &i.CompanyID, &i.Email, &i.RoleID, &i.Token,
		&i.ExpiresAt, &i.UsedAt, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste una nueva invitación.
func (r *InvitationRepo) Create(invitation *entity.Invitation) error {
	query := `
		INSERT INTO invitations (id, company_id, email, role_id, token, expires_at, used_at, created_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		invitation.ID, invitation.CompanyID, invitation.Email, invitation.RoleID,
		invitation.Token, invitation.ExpiresAt, invitation.UsedAt, invitation.CreatedAt,
	)
	if err != nil {
		return mapUnique(fmt.Errorf("insert invitation: %w", err), "colisión de token de invitación")
	}
	return nil
}

// GetByToken obtiene una invitación por token.
func (r *InvitationRepo) GetByToken(token string) (*entity.Invitation, error) {
	i, err := scanInvitation(r.q.QueryRow(context.Background(),
		`SELECT `+invitationColumns+` FROM invitations WHERE token = $1`, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return i, nil
}

// GetByTokenForUpdate obtiene la invitación bloqueando la fila, para que
// dos registros concurrentes no consuman el mismo token.
func (r *InvitationRepo) GetByTokenForUpdate(token string) (*entity.Invitation, error) {
	i, err := scanInvitation(r.q.QueryRow(context.Background(),
		`SELECT `+invitationColumns+` FROM invitations WHERE token = $1 FOR UPDATE`, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation for update: %w", err)
	}
	return i, nil
}

// GetActiveByEmailAndCompany obtiene la invitación activa (sin usar, no
// expirada) para (email, empresa), o nil.
func (r *InvitationRepo) GetActiveByEmailAndCompany(email, companyID string, now time.Time) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + `
		FROM invitations
		WHERE email = $1 AND company_id = $2 AND used_at IS NULL AND expires_at > $3
		ORDER BY created_at DESC LIMIT 1`
	i, err := scanInvitation(r.q.QueryRow(context.Background(), query, email, companyID, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active invitation: %w", err)
	}
	return i, nil
}

// MarkUsed marca la invitación como consumida.
func (r *InvitationRepo) MarkUsed(id string, usedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE invitations SET used_at = $2 WHERE id = $1`, id, usedAt)
	if err != nil {
		return fmt.Errorf("mark invitation used: %w", err)
	}
	return nil
}

// ListByCompany lista invitaciones por empresa con paginación.
func (r *InvitationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + `
		FROM invitations WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invitation
	for rows.Next() {
		i, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}
