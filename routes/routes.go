package routes

import (
	"github.com/Sanjanabonagiri16/Tabletrack/configs"
	"github.com/Sanjanabonagiri16/Tabletrack/controllers"
	"github.com/Sanjanabonagiri16/Tabletrack/entity"
	"github.com/Sanjanabonagiri16/Tabletrack/middlewares"
	"github.com/Sanjanabonagiri16/Tabletrack/repository"
	"github.com/Sanjanabonagiri16/Tabletrack/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	tableSvc := services.NewTableService(db, tableRepo)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, menuRepo)
	statsSvc := services.NewStatsService(orderRepo, tableRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(statsSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Staff (waiter or admin)
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleWaiter, entity.RoleAdmin))
	{
		staff.GET("/tables", tableCtrl.List)
		staff.GET("/menu-items", menuCtrl.List)
		staff.POST("/orders", orderCtrl.Create)
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/:id", orderCtrl.Detail)
	}

	// Admin only
	admin := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.PUT("/orders", orderCtrl.UpdateStatus)
		admin.PUT("/tables", tableCtrl.Update)
		admin.POST("/menu-items", menuCtrl.Create)
		admin.GET("/admin/stats", adminCtrl.Dashboard)
	}
}
