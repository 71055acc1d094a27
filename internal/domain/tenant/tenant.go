package tenant

import "github.com/jhoicas/Herramientas-api/internal/domain"

// Owned es cualquier entidad perteneciente a una empresa.
type Owned interface {
	TenantID() string
}

// Authorize verifica que el recurso exista y pertenezca a la empresa del caller.
// Un recurso nil o de otra empresa devuelve ErrNotFound: el contrato no
// distingue "no existe" de "existe pero no es tuyo".
// Debe invocarse en cada sitio de acceso, y re-invocarse dentro de una
// transacción después de releer la fila (no cachear el resultado).
func Authorize(res Owned, companyID string) error {
	if res == nil || companyID == "" || res.TenantID() != companyID {
		return domain.ErrNotFound
	}
	return nil
}
