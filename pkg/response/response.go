package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

// ErrorBody is the JSON failure contract of the REST gateway.
type ErrorBody struct {
	Error string `json:"error"`
}

// IDBody is returned by create operations.
type IDBody struct {
	ID int64 `json:"id"`
}

// JSON sends a success payload as-is.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 and the new identifier.
func Created(c *gin.Context, id int64) {
	JSON(c, http.StatusCreated, IDBody{ID: id})
}

// Error converts err to the common failure body using its mapped status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
}

// Text sends a plain-text body, used by the SOAP gateway for failures.
func Text(c *gin.Context, status int, message string) {
	c.Header("Cache-Control", "no-store")
	c.Data(status, "text/plain; charset=utf-8", []byte(message))
}

// XML writes a pre-rendered XML document.
func XML(c *gin.Context, status int, document []byte) {
	c.Data(status, "text/xml; charset=utf-8", document)
}
