package leave

import (
	"github.com/chsatyam09/HRMS/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)

		leaves.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Apply,
		)

		leaves.PATCH("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.UpdateStatus,
		)
	}
}
