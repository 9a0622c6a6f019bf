package httperr

import (
	"github.com/gin-gonic/gin"
)

// Body is the error object clients branch on; Code is stable across
// message wording changes.
type Body struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for the logging middleware
// and writes only msg and detail to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, err, "", msg, detail)
}

func AbortWithCode(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  Body{Code: code, Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
