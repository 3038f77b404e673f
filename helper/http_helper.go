package helper

import (
	"errors"
	"net/http"
	"strconv"

	"techsphere-api/models"
	"techsphere-api/pagination"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// HTTPHelper ...
// Renders responses in the {message, errors} shape clients rely on.
type HTTPHelper struct{}

// GetStatusCode ...
// Map a service error to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.As(err, new(models.ErrorValidation)), errors.As(err, new(models.ErrorBadRequest)):
		return http.StatusBadRequest
	case errors.As(err, new(models.ErrorUnauthorized)):
		return http.StatusUnauthorized
	case errors.As(err, new(models.ErrorForbidden)):
		return http.StatusForbidden
	case errors.As(err, new(models.ErrorNotFound)):
		return http.StatusNotFound
	case errors.As(err, new(models.ErrorConflict)):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Send error response to consumers. Unknown errors are logged and reported
// as a bare internal error.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	var (
		validation   models.ErrorValidation
		badRequest   models.ErrorBadRequest
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
		notFound     models.ErrorNotFound
		conflict     models.ErrorConflict
	)

	switch {
	case errors.As(err, &validation):
		u.SendValidationError(c, validation.Fields)
	case errors.As(err, &badRequest):
		u.SendBadRequest(c, badRequest.Message)
	case errors.As(err, &unauthorized):
		u.sendMessage(c, http.StatusUnauthorized, unauthorized.Message, unauthorized.Fields)
	case errors.As(err, &forbidden):
		u.SendForbiddenError(c, forbidden.Message)
	case errors.As(err, &notFound):
		u.sendMessage(c, http.StatusNotFound, notFound.Message, notFound.Fields)
	case errors.As(err, &conflict):
		u.sendMessage(c, http.StatusConflict, conflict.Message, conflict.Fields)
	default:
		u.SendInternalError(c, err)
	}
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.sendMessage(c, http.StatusBadRequest, message, nil)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, fields map[string][]string) {
	if fields == nil {
		fields = map[string][]string{}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": models.MessageValidationFailed,
		"errors":  fields,
	})
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.sendMessage(c, http.StatusUnauthorized, message, nil)
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	u.sendMessage(c, http.StatusForbidden, message, nil)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.sendMessage(c, http.StatusNotFound, message, nil)
}

// SendInternalError ...
// Log err with the request context and send a generic 500.
func (u *HTTPHelper) SendInternalError(c *gin.Context, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(RequestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"error":      err,
	}).Error("request failed")

	u.sendMessage(c, http.StatusInternalServerError, models.MessageInternalError, nil)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

// SendPage ...
// Send one page of a listing.
func (u *HTTPHelper) SendPage(c *gin.Context, data interface{}, meta pagination.Meta, extra gin.H) {
	body := gin.H{
		"data":       data,
		"pagination": meta,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func (u *HTTPHelper) sendMessage(c *gin.Context, status int, message string, fields map[string][]string) {
	body := gin.H{"message": message}
	if len(fields) > 0 {
		body["errors"] = fields
	}
	c.AbortWithStatusJSON(status, body)
}

// ParseID ...
// Read a positive numeric path parameter. On failure a 400 carrying
// message is sent and ok is false.
func (u *HTTPHelper) ParseID(c *gin.Context, param, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		u.SendBadRequest(c, message)
		return 0, false
	}
	return uint(id), true
}

// ParsePage ...
// Read page and limit from the query string. On failure a 400 is sent and
// ok is false.
func (u *HTTPHelper) ParsePage(c *gin.Context, parser pagination.Parser) (pagination.Params, bool) {
	params, err := parser.Parse(c.Query("page"), c.Query("limit"))
	if err != nil {
		u.SendBadRequest(c, pagination.MessageInvalidParams)
		return pagination.Params{}, false
	}
	return params, true
}
