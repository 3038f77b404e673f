package helper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techsphere-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetStatusCode(t *testing.T) {
	h := &HTTPHelper{}

	assert.Equal(t, http.StatusOK, h.GetStatusCode(nil))
	assert.Equal(t, http.StatusBadRequest, h.GetStatusCode(models.ErrorValidation{}))
	assert.Equal(t, http.StatusBadRequest, h.GetStatusCode(models.ErrorBadRequest{}))
	assert.Equal(t, http.StatusUnauthorized, h.GetStatusCode(models.ErrorUnauthorized{}))
	assert.Equal(t, http.StatusForbidden, h.GetStatusCode(models.ErrorForbidden{}))
	assert.Equal(t, http.StatusNotFound, h.GetStatusCode(models.ErrorNotFound{}))
	assert.Equal(t, http.StatusConflict, h.GetStatusCode(models.ErrorConflict{}))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(models.ErrorInternalServer{}))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(errors.New("boom")))
}

func newContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return c, w
}

func TestSendErrorHidesInternals(t *testing.T) {
	c, w := newContext("")

	(&HTTPHelper{}).SendError(c, models.ErrorInternalServer{Err: errors.New("pq: relation missing")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}

func TestSendErrorWithFields(t *testing.T) {
	c, w := newContext("")

	(&HTTPHelper{}).SendError(c, models.ErrorConflict{
		Message: models.MessageUserExists,
		Fields:  map[string][]string{"email": {models.MessageEmailInUse}},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"User already exists","errors":{"email":["Email already in use"]}}`, w.Body.String())
}

type payload struct {
	Body      string `json:"body"`
	ArticleID *uint  `json:"articleId"`
}

func TestDecodeJSON(t *testing.T) {
	h := &HTTPHelper{}
	var validation models.ErrorValidation
	var badRequest models.ErrorBadRequest

	c, _ := newContext(`{"body":"hi","articleId":5}`)
	var ok payload
	assert.NoError(t, h.DecodeJSON(c, &ok, true))
	assert.Equal(t, uint(5), *ok.ArticleID)

	c, _ = newContext(`{"body":"hi","articleId":"5"}`)
	err := h.DecodeJSON(c, &payload{}, false)
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"Must be number"}, validation.Fields["articleId"])

	c, _ = newContext(`{"body":"hi","role":"admin"}`)
	err = h.DecodeJSON(c, &payload{}, true)
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"Unrecognized field"}, validation.Fields["role"])

	c, _ = newContext(`{"body":"hi","role":"admin"}`)
	assert.NoError(t, h.DecodeJSON(c, &payload{}, false))

	c, _ = newContext(`{"body":`)
	assert.ErrorAs(t, h.DecodeJSON(c, &payload{}, false), &badRequest)

	c, _ = newContext(``)
	assert.ErrorAs(t, h.DecodeJSON(c, &payload{}, false), &badRequest)
}
