package student

import (
	"github.com/mexanik619/College-Placement-Website/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	students := r.Group("/students")
	{
		// Registration is a one-off action per student.
		students.POST("",
			middleware.RateLimitByIP(0.5, 3),
			handler.Register,
		)
	}
}
