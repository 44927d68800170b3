package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp wraps data in a success envelope.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 with the data wrapped in the success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with the error message in the envelope. data carries
// field-level details; nil renders as an empty object, never null.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// ErrorWithStatus sends an error response with an explicit HTTP status code.
// Used by delivery layers that map domain errors to non-400 statuses. An
// optional data value carries partial output alongside the error.
func ErrorWithStatus(c *gin.Context, status int, err error, data ...any) {
	resp := Resp{
		ErrorCode: status,
		Message:   err.Error(),
	}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	c.JSON(status, resp)
}

// InternalError sends 500. The cause is logged by the caller, not leaked
// into the body.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: 403,
		Message:   "Forbidden",
	})
}
