package company

import (
	"github.com/mexanik619/College-Placement-Website/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	{
		// Dashboard refreshes the company list on every tab switch.
		companies.GET("",
			middleware.RateLimitByIP(2, 10),
			handler.GetAll,
		)

		companies.POST("",
			middleware.RateLimitByIP(0.5, 3),
			handler.Register,
		)
	}
}
