package usecase

import (
	"context"

	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

// EntityTxRunner ejecuta operaciones de entidad que tocan varias tablas en
// una sola transacción: el cambio de bodega por defecto (limpiar la anterior
// + marcar la nueva sin ventana con cero o dos defaults) y el borrado de
// categoría (desasociar herramientas + eliminar).
type EntityTxRunner interface {
	RunEntities(ctx context.Context, fn func(
		warehouseRepo repository.WarehouseRepository,
		categoryRepo repository.CategoryRepository,
		toolRepo repository.ToolRepository,
	) error) error
}
