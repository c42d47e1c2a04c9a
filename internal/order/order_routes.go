package order

import (
	"go-laundry/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", handler.List)
		orders.GET("/:id", handler.GetById)
		orders.POST("", handler.Create)
		orders.POST("/:id/cancel", handler.Cancel)
		orders.PUT("/:id/status", middleware.StaffOnly(), handler.UpdateStatus)
	}
}
