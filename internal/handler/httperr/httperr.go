package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint emits: a flat message plus
// optional structured detail. Status is transport metadata, not body.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError writes the error envelope and records the underlying error
// on the gin context so the logging middleware can pick it up. err may be
// nil for failures with no underlying cause (missing token, bad input).
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status, Error: msg, Detail: detail}

	if err == nil {
		err = errMessage(msg)
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type errMessage string

func (e errMessage) Error() string { return string(e) }
