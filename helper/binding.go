package helper

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"techsphere-api/models"

	"github.com/gin-gonic/gin"
)

const unknownFieldPrefix = "json: unknown field "

// DecodeJSON ...
// Decode the request body into dst. With strict set, keys dst does not
// declare are rejected. Shape problems are returned as field errors so the
// client sees them like any other validation failure.
func (u *HTTPHelper) DecodeJSON(c *gin.Context, dst interface{}, strict bool) error {
	if c.Request.Body == nil {
		return models.ErrorBadRequest{Message: "Request body is required"}
	}

	dec := json.NewDecoder(c.Request.Body)
	if strict {
		dec.DisallowUnknownFields()
	}

	err := dec.Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return models.ErrorValidation{Fields: map[string][]string{
			field: {"Must be " + jsonKind(typeErr.Type)},
		}}
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		field := strings.Trim(strings.TrimPrefix(err.Error(), unknownFieldPrefix), `"`)
		return models.ErrorValidation{Fields: map[string][]string{
			field: {"Unrecognized field"},
		}}
	case errors.Is(err, io.EOF):
		return models.ErrorBadRequest{Message: "Request body is required"}
	default:
		return models.ErrorBadRequest{Message: "Invalid request body"}
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	default:
		return "an object"
	}
}
