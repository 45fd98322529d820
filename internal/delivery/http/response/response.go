package response

import (
	"github.com/gin-gonic/gin"
)

// The dashboard wire contract is flat JSON objects with fixed keys, not an
// envelope. These helpers keep the two recurring shapes in one place.

// Error sends {"error": message} with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// Message sends {"message": message} with the given status code.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
