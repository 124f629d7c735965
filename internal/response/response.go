package response

import (
	"github.com/gin-gonic/gin"
)

// Every response uses the same envelope: successes are {ok:true, ...} with
// the payload merged in, failures are {ok:false, error:<string>}.

// OK sends a successful JSON response, merging payload into the envelope.
func OK(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail sends an error response for a typed error code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	FailMsg(c, statusCode, GetMessage(code))
}

// FailMsg sends an error response with a caller-built message, used for
// field-naming validation errors.
func FailMsg(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"ok": false, "error": message})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, gin.H{"ok": false, "error": GetMessage(code)})
}
