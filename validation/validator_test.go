package validation

import (
	"testing"

	"techsphere-api/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRegisterRequest(t *testing.T) {
	v := New()

	assert.Nil(t, v.Struct(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret1!",
	}))

	errs := v.Struct(models.RegisterRequest{
		Username: "a",
		Email:    "not-an-email",
		Password: "Secret1!",
	})
	assert.Equal(t, []string{"Username must be at least 2 characters"}, errs["username"])
	assert.Equal(t, []string{"Please provide a valid email address"}, errs["email"])
	assert.NotContains(t, errs, "password")
}

func TestPasswordRules(t *testing.T) {
	v := New()
	cases := map[string]string{
		"Ab1!":     "Password must be at least 6 characters",
		"secret1!": "Password must contain at least one uppercase letter",
		"Secret!!": "Password must contain at least one number",
		"Secret11": "Password must contain at least one special character",
	}

	for password, want := range cases {
		errs := v.Struct(models.LoginRequest{Email: "bob@example.com", Password: password})
		assert.Equal(t, []string{want}, errs["password"], password)
	}
}

func TestUsernameMax(t *testing.T) {
	errs := New().Struct(models.RegisterRequest{
		Username: "abcdefghijklmnopqrstuvwxyz12345",
		Email:    "c@example.com",
		Password: "Secret1!",
	})
	assert.Equal(t, []string{"Username cannot exceed 30 characters"}, errs["username"])
}

func TestCreateArticleRequest(t *testing.T) {
	v := New()

	assert.Nil(t, v.Struct(models.CreateArticleRequest{Title: "Hi there", Body: "0123456789"}))

	errs := v.Struct(models.CreateArticleRequest{Title: "H", Body: "short"})
	assert.Equal(t, []string{"Title must be at least 2 characters"}, errs["title"])
	assert.Equal(t, []string{"Body must be at least 10 characters"}, errs["body"])

	errs = v.Struct(models.CreateArticleRequest{Title: "a title that is far too long", Body: "0123456789"})
	assert.Equal(t, []string{"Title cannot exceed 20 characters"}, errs["title"])
}

func TestUpdateArticleRequest(t *testing.T) {
	v := New()

	errs := v.Struct(models.UpdateArticleRequest{})
	assert.Equal(t, Errors{"title": {MessageNoFields}}, errs)

	assert.Nil(t, v.Struct(models.UpdateArticleRequest{Title: strPtr("X")}))
	assert.Nil(t, v.Struct(models.UpdateArticleRequest{Title: strPtr("A title that is longer than twenty")}))
	assert.Nil(t, v.Struct(models.UpdateArticleRequest{Body: strPtr("  ")}))

	errs = v.Struct(models.UpdateArticleRequest{Body: strPtr("")})
	assert.Equal(t, Errors{"body": {"Body cannot be empty"}}, errs)

	errs = v.Struct(models.UpdateArticleRequest{Title: strPtr(""), Body: strPtr("ok")})
	assert.Equal(t, Errors{"title": {"Title cannot be empty"}}, errs)
}

func TestCommentRequests(t *testing.T) {
	v := New()

	errs := v.Struct(models.CreateCommentRequest{Body: "nice"})
	assert.Equal(t, []string{"Article ID is required"}, errs["articleId"])

	id := uint(3)
	assert.Nil(t, v.Struct(models.CreateCommentRequest{Body: "nice", ArticleID: &id}))

	errs = v.Struct(models.UpdateCommentRequest{})
	assert.Equal(t, Errors{"body": {MessageNoFields}}, errs)

	errs = v.Struct(models.UpdateCommentRequest{Body: strPtr("")})
	assert.Equal(t, Errors{"body": {"Body cannot be empty"}}, errs)
}

func TestUpdateUserRequest(t *testing.T) {
	v := New()

	errs := v.Struct(models.UpdateUserRequest{})
	assert.Equal(t, Errors{"username": {MessageNoFields}}, errs)

	admin := true
	assert.Nil(t, v.Struct(models.UpdateUserRequest{IsAdmin: &admin}))

	errs = v.Struct(models.UpdateUserRequest{Email: strPtr("nope"), Password: strPtr("weak")})
	assert.Equal(t, []string{"Please provide a valid email address"}, errs["email"])
	assert.Equal(t, []string{"Password must be at least 6 characters"}, errs["password"])
}
