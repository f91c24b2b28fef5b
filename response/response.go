package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Error Message `json:"error"`
}

// Success sends data with 200.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a newly created entity with 201.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// HTTPError sends {"error": msg} with the given status and stops the chain.
func HTTPError(c *gin.Context, httpCode int, msg Message) {
	c.AbortWithStatusJSON(httpCode, ErrorBody{Error: msg})
}

// BadRequestError is used when input is missing or malformed.
func BadRequestError(c *gin.Context, msg Message) {
	HTTPError(c, http.StatusBadRequest, msg)
}

func NotFoundError(c *gin.Context, msg Message) {
	HTTPError(c, http.StatusNotFound, msg)
}

// InternalError records err on the context for the request logger and sends a
// localized message. err itself never reaches the client.
func InternalError(c *gin.Context, err error, msg Message) {
	_ = c.Error(err)
	HTTPError(c, http.StatusInternalServerError, msg)
}
