package custody

import (
	"context"

	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la única frontera de atomicidad de la
// máquina de custodia: la mutación de la herramienta y su registro de
// historial se confirman o deshacen juntos, nunca por separado.
type TxRunner interface {
	RunCustody(ctx context.Context, fn func(
		toolRepo repository.ToolRepository,
		historyRepo repository.ToolHistoryRepository,
		userRepo repository.UserRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error
}
