package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Herramientas-api/internal/application/auth"
	"github.com/jhoicas/Herramientas-api/internal/application/custody"
	"github.com/jhoicas/Herramientas-api/internal/application/history"
	"github.com/jhoicas/Herramientas-api/internal/application/invite"
	"github.com/jhoicas/Herramientas-api/internal/application/usecase"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	CategoryUC   *usecase.CategoryUseCase
	RoleUC       *usecase.RoleUseCase
	UserUC       *usecase.UserUseCase
	ToolUC       *usecase.ToolUseCase
	CustodyUC    *custody.CustodyUseCase
	HistoryUC    *history.HistoryUseCase
	InviteUC     *invite.InviteUseCase
	RoleRepo     repository.RoleRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// Las lecturas exigen solo un token válido (el tenant sale del claim); las
// mutaciones exigen además el token de capacidad correspondiente, recargando
// el rol desde la DB. La gestión de roles y de la empresa es boss-only.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.RegisterCompany)
	authGroup.Post("/register-invite", authHandler.RegisterWithInvitation)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	perm := func(p permission.Permission) fiber.Handler {
		return RequirePermission(p, deps.RoleRepo)
	}
	boss := RequireBoss(deps.RoleRepo)

	// Company (la propia; actualizarla es boss-only)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", boss, companyHandler.Update)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", perm(permission.WarehouseCreate), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", perm(permission.WarehouseUpdate), warehouseHandler.Update)
	warehouses.Delete("/:id", perm(permission.WarehouseDelete), warehouseHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", perm(permission.CategoryCreate), categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", perm(permission.CategoryUpdate), categoryHandler.Update)
	categories.Delete("/:id", perm(permission.CategoryDelete), categoryHandler.Delete)

	// Roles (mutaciones boss-only; sin tokens de capacidad aquí para que un
	// rol no-boss no pueda concederse derechos a sí mismo)
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/permissions", roleHandler.Permissions)
	roles.Post("/", boss, roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", boss, roleHandler.Update)
	roles.Delete("/:id", boss, roleHandler.Delete)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Get("/:id/tools", userHandler.Tools)
	users.Put("/:id/role", perm(permission.UserAssignRole), userHandler.AssignRole)
	users.Delete("/:id", perm(permission.UserDelete), userHandler.Delete)

	// Tools y custodia
	tools := protected.Group("/tools")
	toolHandler := NewToolHandler(deps.ToolUC, deps.CustodyUC, deps.HistoryUC)
	tools.Post("/", perm(permission.ToolCreate), toolHandler.Create)
	tools.Get("/", toolHandler.List)
	tools.Get("/:id", toolHandler.GetByID)
	tools.Put("/:id", perm(permission.ToolUpdate), toolHandler.Update)
	tools.Delete("/:id", perm(permission.ToolDelete), toolHandler.Delete)
	tools.Post("/:id/transfer", perm(permission.ToolTransfer), toolHandler.Transfer)
	tools.Post("/:id/checkin", perm(permission.ToolCheckIn), toolHandler.CheckIn)
	tools.Post("/:id/assign", perm(permission.ToolTransfer), toolHandler.Assign)
	// Return no exige token: el caso de uso valida que el caller sea el tenedor.
	tools.Post("/:id/return", toolHandler.Return)
	tools.Get("/:id/history", perm(permission.HistoryView), toolHandler.History)

	// Historial a nivel empresa
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	protected.Get("/history", perm(permission.HistoryView), historyHandler.Recent)

	// Invitations
	invitations := protected.Group("/invitations")
	invitationHandler := NewInvitationHandler(deps.InviteUC)
	invitations.Post("/", perm(permission.UserInvite), invitationHandler.Create)
	invitations.Get("/", perm(permission.UserInvite), invitationHandler.List)
}
