package models

// Error types returned by the service layer. The HTTP helper maps each
// type to a status code.

type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string { return e.Message }

// ErrorValidation carries field keyed messages, e.g. {"email": ["..."]}.
type ErrorValidation struct {
	Fields map[string][]string
}

func (e ErrorValidation) Error() string { return MessageValidationFailed }

type ErrorUnauthorized struct {
	Message string
	Fields  map[string][]string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
	Fields  map[string][]string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
	Fields  map[string][]string
}

func (e ErrorConflict) Error() string { return e.Message }

// ErrorInternalServer wraps an unexpected failure. Err is logged, never sent.
type ErrorInternalServer struct {
	Err error
}

func (e ErrorInternalServer) Error() string {
	if e.Err == nil {
		return MessageInternalError
	}
	return e.Err.Error()
}

func (e ErrorInternalServer) Unwrap() error { return e.Err }

// Messages shared between services, middleware and handlers.
const (
	MessageValidationFailed  = "Validation failed"
	MessageInternalError     = "Internal server error"
	MessageLoginRequired     = "Unauthorized - You must login first"
	MessageInvalidToken      = "Unauthorized - Invalid token"
	MessageNotArticleOwner   = "Unauthorized - Only owner can edit his article"
	MessageNotCommentOwner   = "Forbidden - Only owner can edit his comment"
	MessageNotProfileOwner   = "Forbidden - You can only access your own profile"
	MessageAdminRequired     = "Forbidden - Admin access required"
	MessageAdminFlagRequired = "Forbidden - Only admins can change admin rights"
	MessageUserExists        = "User already exists"
	MessageEmailInUse        = "Email already in use"
	MessageWrongCredentials  = "Wrong Credentials"
	MessageNoUserWithEmail   = "No user with this email"
	MessageBadCredentials    = "Invalid credentials"
	MessageIncorrectPassword = "Incorrect password"
	MessageUserNotFound      = "User not found"
	MessageArticleNotFound   = "Article not found"
	MessageCommentNotFound   = "Comment not found"
	MessageInvalidUserID     = "Invalid user ID"
	MessageInvalidArticleID  = "Invalid article ID"
	MessageInvalidCommentID  = "Invalid comment ID"
	MessageRouteNotFound     = "Route not found"
)
