package handler

import (
	sharedError "github.com/changhyeonkim/splearn/internal/shared/error"
	"github.com/changhyeonkim/splearn/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req SignupRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Check if it's a validation error
		if resp, ok := validator.ToErrorResponse(err); ok {
			RespondError(c, err, resp)
		} else {
			// JSON parsing error or other binding errors
			RespondError(c, err, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// RespondError records err for the request logger and writes errResp.
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(errResp.Status, errResp)
}

// RespondDomainError writes the response registered for err, or a 500 when
// err carries no registered domain error.
func RespondDomainError(c *gin.Context, err error) {
	RespondError(c, err, sharedError.Resolve(err))
}
