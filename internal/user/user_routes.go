package user

import (
	"go-laundry/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	customers := r.Group("/customers")
	customers.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
	{
		customers.GET("", handler.ListCustomers)
	}
}
