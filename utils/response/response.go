package response

import (
	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
    c.JSON(status, gin.H{"error": message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
    c.JSON(status, gin.H{"data": data})
}

// Redirect sends an error response carrying the location the client
// should navigate to. The access guard answers role mismatches with a
// redirect instead of page content.
func Redirect(c *gin.Context, status int, message, location string) {
    c.JSON(status, gin.H{"error": message, "redirect": location})
}
