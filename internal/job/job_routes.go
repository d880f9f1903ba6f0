package job

import (
	"github.com/mexanik619/College-Placement-Website/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	jobs := r.Group("/jobs")
	{
		// Portal landing page fetches the full listing.
		jobs.GET("",
			middleware.RateLimitByIP(2, 10),
			handler.GetAll,
		)

		// Dropdown options, served from cache.
		jobs.GET("/options",
			middleware.RateLimitByIP(5, 20),
			handler.GetOptions,
		)

		jobs.POST("",
			middleware.RateLimitByIP(0.5, 3),
			handler.Post,
		)
	}
}
