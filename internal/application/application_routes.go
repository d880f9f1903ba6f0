package application

import (
	"github.com/mexanik619/College-Placement-Website/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	applications := r.Group("/applications")
	{
		applications.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)

		// Recruiter dashboard polls this list.
		applications.GET("/details",
			middleware.RateLimitByIP(2, 10),
			handler.GetDetails,
		)

		applications.PATCH("/:id/status",
			middleware.RateLimitByIP(1, 5),
			handler.UpdateStatus,
		)
	}
}
