package response

import "github.com/gin-gonic/gin"

// RespondError writes an error reply with the given status code.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// RespondErrorDetails writes an error reply carrying extra detail, such as
// field-level validation violations.
func RespondErrorDetails(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, ErrorResponse{Error: message, Details: details})
}
