package repository

import "github.com/jhoicas/Herramientas-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByCompanyAndName(companyID, name string) (*entity.Warehouse, error)
	// GetDefaultByCompany devuelve la bodega por defecto de la empresa, o nil.
	GetDefaultByCompany(companyID string) (*entity.Warehouse, error)
	// ClearDefault desmarca IsDefault en todas las bodegas de la empresa.
	// Debe ejecutarse en la misma transacción que marca la nueva default.
	ClearDefault(companyID string) error
	Update(warehouse *entity.Warehouse) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error)
	Delete(id string) error
}
