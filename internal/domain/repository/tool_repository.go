package repository

import "github.com/jhoicas/Herramientas-api/internal/domain/entity"

// ToolRepository define el puerto de persistencia para Tool (DIP).
type ToolRepository interface {
	Create(tool *entity.Tool) error
	GetByID(id string) (*entity.Tool, error)
	// GetForUpdate obtiene la herramienta bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción; la máquina de custodia la
	// usa para serializar traslados concurrentes sobre la misma herramienta.
	GetForUpdate(id string) (*entity.Tool, error)
	GetByCompanyAndSerial(companyID, serialNumber string) (*entity.Tool, error)
	Update(tool *entity.Tool) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Tool, error)
	ListByUser(userID string) ([]*entity.Tool, error)
	Delete(id string) error
	// Contadores para precondiciones de borrado (bodega/categoría en uso).
	CountByWarehouse(warehouseID string) (int, error)
	CountByCategory(categoryID string) (int, error)
	CountByUser(userID string) (int, error)
	// ClearCategory desasocia la categoría de todas sus herramientas
	// (el borrado de categoría no es destructivo).
	ClearCategory(categoryID string) error
}
