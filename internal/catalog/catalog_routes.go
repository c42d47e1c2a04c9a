package catalog

import (
	"go-laundry/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	services := r.Group("/services")
	{
		// public catalog
		services.GET("", handler.ListActive)
		services.GET("/:id", handler.GetById)

		// staff management
		staff := services.Group("")
		staff.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
		{
			staff.GET("/all", handler.ListAll)
			staff.POST("", handler.Create)
			staff.PUT("/:id", handler.Update)
			staff.DELETE("/:id", handler.Delete)
		}
	}
}
