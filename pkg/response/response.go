package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks flat JSON bodies: raw documents and store results on
// success, {message} or {message, error} on failure.

// JSON renders v verbatim with the given status.
func JSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// Message renders {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// AbortMessage renders {"message": msg} and stops the handler chain.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// ServerError renders a 500-class body carrying the underlying error text.
func ServerError(c *gin.Context, msg string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg, "error": detail})
}

// Invalid renders a 400 body with per-field validation details.
func Invalid(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": details})
}
