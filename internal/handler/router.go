package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/pkg/middleware"
)

// RouterConfig bundles the handlers and middleware the HTTP router mounts
type RouterConfig struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Company   *CompanyHandler
	Venue     *VenueHandler
	Inventory *InventoryHandler
	POS       *POSHandler
	Finance   *FinanceHandler
	Dashboard *DashboardHandler

	JWT          gin.HandlerFunc
	CompanyScope gin.HandlerFunc
	Audit        gin.HandlerFunc
}

// RegisterRoutes mounts all API routes on the given engine.
//
// Route groups:
//   - /health is public
//   - /api/v1/auth/register and /login are public, everything else needs a token
//   - /api/v1/companies is the platform directory, superadmin only
//   - everything company scoped goes through the scoping middleware, which
//     decides the effective company before any handler runs
func RegisterRoutes(r *gin.Engine, cfg *RouterConfig) {
	r.GET("/health/live", cfg.Health.Live)
	r.GET("/health/ready", cfg.Health.Ready)

	v1 := r.Group("/api/v1")

	// Public auth endpoints
	v1.POST("/auth/register", cfg.Auth.Register)
	v1.POST("/auth/login", cfg.Auth.Login)

	authed := v1.Group("")
	authed.Use(cfg.JWT)
	if cfg.Audit != nil {
		authed.Use(cfg.Audit)
	}

	// Own profile
	authed.GET("/auth/me", cfg.Auth.Me)
	authed.PUT("/auth/me", cfg.Auth.UpdateMe)

	// Platform company directory
	companies := authed.Group("/companies")
	companies.Use(middleware.RequireRole(domain.RoleSuperadmin))
	{
		companies.POST("", cfg.Company.Create)
		companies.GET("", cfg.Company.List)
		companies.GET("/:id", cfg.Company.GetByID)
		companies.GET("/slug/:slug", cfg.Company.GetBySlug)
		companies.PUT("/:id", cfg.Company.Update)
		companies.DELETE("/:id", cfg.Company.Delete)
		companies.DELETE("/:id/purge", cfg.Company.HardDelete)
		companies.POST("/select", cfg.Company.Select)
		companies.DELETE("/select", cfg.Company.ClearSelection)
	}

	// Company scoped endpoints
	scoped := authed.Group("")
	scoped.Use(cfg.CompanyScope)
	{
		staff := middleware.RequireRole(domain.RoleStaff)
		admin := middleware.RequireRole(domain.RoleAdmin)

		scoped.GET("/venues", cfg.Venue.List)
		scoped.GET("/venues/:id", cfg.Venue.GetByID)
		scoped.POST("/venues", admin, cfg.Venue.Create)
		scoped.PUT("/venues/:id", admin, cfg.Venue.Update)
		scoped.DELETE("/venues/:id", admin, cfg.Venue.Delete)
		scoped.GET("/venues/:id/tables", cfg.Venue.ListTables)
		scoped.POST("/venues/:id/tables", admin, cfg.Venue.CreateTable)
		scoped.PUT("/tables/:id/status", staff, cfg.Venue.UpdateTableStatus)

		scoped.GET("/products", staff, cfg.Inventory.List)
		scoped.GET("/products/:id", staff, cfg.Inventory.GetByID)
		scoped.POST("/products", admin, cfg.Inventory.Create)
		scoped.PUT("/products/:id", admin, cfg.Inventory.Update)
		scoped.DELETE("/products/:id", admin, cfg.Inventory.Delete)
		scoped.POST("/products/:id/stock", staff, cfg.Inventory.AdjustStock)

		scoped.POST("/orders", staff, cfg.POS.Open)
		scoped.GET("/orders", staff, cfg.POS.List)
		scoped.GET("/orders/:id", staff, cfg.POS.GetByID)
		scoped.POST("/orders/:id/items", staff, cfg.POS.AddItem)
		scoped.POST("/orders/:id/settle", staff, cfg.POS.Settle)
		scoped.POST("/orders/:id/cancel", staff, cfg.POS.Cancel)

		scoped.POST("/transactions", staff, cfg.Finance.Create)
		scoped.GET("/transactions", admin, cfg.Finance.List)
		scoped.GET("/transactions/summary", admin, cfg.Finance.Summary)
		scoped.GET("/transactions/:id", admin, cfg.Finance.GetByID)

		scoped.GET("/dashboard", staff, cfg.Dashboard.Snapshot)

		scoped.GET("/profiles", admin, cfg.Auth.ListProfiles)
		scoped.PUT("/profiles/:id/role", admin, cfg.Auth.AssignRole)
		scoped.DELETE("/profiles/:id", admin, cfg.Auth.Deactivate)
	}
}
