package app

import (
	"context"
	"os"

	"go-laundry/internal/bootstrap"
	"go-laundry/internal/catalog"
	"go-laundry/internal/order"
	"go-laundry/internal/role"
	"go-laundry/internal/shared/connection"
	"go-laundry/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates and seeds the schema,
// and registers every module's routes on the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := gormDB.AutoMigrate(
		&role.Role{},
		&user.User{},
		&catalog.LaundryService{},
		&order.Order{},
	); err != nil {
		return err
	}

	if err := bootstrap.Seed(context.Background(), gormDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		// Caching is an optimization, not a requirement.
		zap.L().Warn("redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		zap.L().Info("redis connection established")
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	return registerModules(router, db, gormDB, redisClient)
}
