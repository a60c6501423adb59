package attendance

import (
	"github.com/chsatyam09/HRMS/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("",
			middleware.RateLimitByIP(2, 10),
			handler.Mark,
		)
		attendance.GET("/:employeeId", handler.GetByEmployee)
	}
}
