package response

import "github.com/gin-gonic/gin"

// RespondOK writes data as a bare JSON body; the API contract has no envelope.
func RespondOK(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// RespondError writes message as plain text, matching the upstream API.
func RespondError(c *gin.Context, status int, message string) {
	c.String(status, message)
}
