package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,hasupper,hasdigit,hassymbol"`
}

// CreateUserRequest is the admin variant of RegisterRequest.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,hasupper,hasdigit,hassymbol"`
	IsAdmin  *bool  `json:"isAdmin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,hasupper,hasdigit,hassymbol"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=30"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6,hasupper,hasdigit,hassymbol"`
	Image    *string `json:"image" validate:"omitempty,max=500"`
	IsAdmin  *bool   `json:"isAdmin"`
}

func (r UpdateUserRequest) NoFields() bool {
	return r.Username == nil && r.Email == nil && r.Password == nil && r.Image == nil && r.IsAdmin == nil
}

type CreateArticleRequest struct {
	Title string `json:"title" validate:"required,min=2,max=20"`
	Body  string `json:"body" validate:"required,min=10"`
}

type UpdateArticleRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
	Body  *string `json:"body" validate:"omitempty,min=1"`
}

func (r UpdateArticleRequest) NoFields() bool {
	return r.Title == nil && r.Body == nil
}

type CreateCommentRequest struct {
	Body      string `json:"body" validate:"required,min=1"`
	ArticleID *uint  `json:"articleId" validate:"required"`
}

type UpdateCommentRequest struct {
	Body *string `json:"body" validate:"omitempty,min=1"`
}

func (r UpdateCommentRequest) NoFields() bool {
	return r.Body == nil
}

// CommentListParams is the query of GET /api/comments.
type CommentListParams struct {
	ArticleID uint `form:"articleId"`
}
