package dashboard

import (
	"go-laundry/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
	{
		dashboard.GET("/stats", handler.Stats)
	}
}
