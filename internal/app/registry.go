package app

import (
	"database/sql"
	"os"

	"go-laundry/internal/auth"
	"go-laundry/internal/catalog"
	"go-laundry/internal/dashboard"
	"go-laundry/internal/middleware"
	"go-laundry/internal/order"
	"go-laundry/internal/role"
	"go-laundry/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	roleRepo := role.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	catalogRepo := catalog.NewRepository(gormDB)
	orderRepo := order.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(userRepo, roleRepo)
	userService := user.NewService(userRepo)
	catalogService := catalog.NewService(db, catalogRepo, rdb)
	orderService := order.NewService(db, orderRepo, catalogRepo, order.Options{
		StrictTransitions: os.Getenv("ORDER_STRICT_TRANSITIONS") == "true",
	})
	dashboardService := dashboard.NewService(dashboardRepo, catalogRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	catalogHandler := catalog.NewHandler(catalogService)
	orderHandler := order.NewHandler(orderService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		order.RegisterRoutes(api, orderHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}
