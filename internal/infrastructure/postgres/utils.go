package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Herramientas-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (23505). Es el respaldo de los pre-chequeos de unicidad de la capa
// de aplicación bajo creación concurrente.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// mapUnique traduce una violación de unicidad al error de dominio.
func mapUnique(err error, what string) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", what, domain.ErrDuplicate)
	}
	return err
}
