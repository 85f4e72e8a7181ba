package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "day-planner/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their own status, code and
// details; any other error is treated as a 400 validation error.
func Error(c *gin.Context, err error, data any) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		if data == nil {
			data = httpErr.Details
		}
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
			Data:      data,
		})
		return
	}

	if data == nil {
		data = map[string]any{}
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
