// Package memory ofrece implementaciones en memoria de los puertos de
// repositorio, para pruebas de casos de uso sin base de datos. Los datos
// viven en mapas protegidos por un mutex; cada lectura y escritura clona
// las entidades para evitar aliasing con el código bajo prueba.
package memory

import (
	"sync"

	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
)

// Store contiene el estado compartido por todos los repositorios en memoria.
type Store struct {
	mu          sync.Mutex
	companies   map[string]*entity.Company
	users       map[string]*entity.User
	roles       map[string]*entity.Role
	warehouses  map[string]*entity.Warehouse
	categories  map[string]*entity.Category
	tools       map[string]*entity.Tool
	invitations map[string]*entity.Invitation
	history     []*entity.ToolHistory // orden de inserción
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		companies:   make(map[string]*entity.Company),
		users:       make(map[string]*entity.User),
		roles:       make(map[string]*entity.Role),
		warehouses:  make(map[string]*entity.Warehouse),
		categories:  make(map[string]*entity.Category),
		tools:       make(map[string]*entity.Tool),
		invitations: make(map[string]*entity.Invitation),
	}
}

func cloneCompany(c *entity.Company) *entity.Company {
	cp := *c
	return &cp
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func cloneRole(r *entity.Role) *entity.Role {
	cp := *r
	cp.Permissions = append([]permission.Permission(nil), r.Permissions...)
	return &cp
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	cp := *w
	return &cp
}

func cloneCategory(c *entity.Category) *entity.Category {
	cp := *c
	return &cp
}

func cloneTool(t *entity.Tool) *entity.Tool {
	cp := *t
	return &cp
}

func cloneInvitation(i *entity.Invitation) *entity.Invitation {
	cp := *i
	if i.UsedAt != nil {
		at := *i.UsedAt
		cp.UsedAt = &at
	}
	return &cp
}

func cloneHistory(h *entity.ToolHistory) *entity.ToolHistory {
	cp := *h
	return &cp
}

// page aplica limit/offset sobre una lista ya ordenada.
func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
