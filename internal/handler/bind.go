package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
	"github.com/noah-isme/uav-academic-soa/pkg/response"
)

// bindJSON decodes the request body and answers 400 itself when that fails.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrMalformedRequest.Code, appErrors.ErrMalformedRequest.Status, "Invalid JSON body"))
		return false
	}
	return true
}
