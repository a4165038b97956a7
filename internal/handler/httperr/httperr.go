package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error body every endpoint returns.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// Abort keeps the original error on the context for the request log, then
// writes the public error body.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
