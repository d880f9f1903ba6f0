package response

import (
	"github.com/gin-gonic/gin"
)

// The portal's web client consumes the documented API bodies as-is
// ({student_id}, {success, application_id}, bare arrays), so success
// responses are emitted without a wrapper.

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error writes the error body. The client surfaces "error" verbatim; "code"
// is the machine-readable taxonomy label.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}
