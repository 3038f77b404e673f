package services

import (
	"context"
	"errors"
	"strings"

	"techsphere-api/models"
	"techsphere-api/repositories"
	"techsphere-api/validation"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	// Login returns the user and a freshly signed session token.
	Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	hasher    PasswordHasher
	tokens    TokenService
	validator *validation.Validator
}

func NewAuthService(userRepo repositories.UserRepository, hasher PasswordHasher, tokens TokenService, validator *validation.Validator) AuthService {
	return &authService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
	}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if errs := s.validator.Struct(req); errs != nil {
		return nil, models.ErrorValidation{Fields: errs}
	}

	return createUser(ctx, s.userRepo, s.hasher, req.Username, req.Email, req.Password, false)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	if errs := s.validator.Struct(req); errs != nil {
		return nil, "", models.ErrorValidation{Fields: errs}
	}

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", models.ErrorNotFound{Message: models.MessageWrongCredentials, Fields: map[string][]string{
				"email": {models.MessageNoUserWithEmail},
			}}
		}
		return nil, "", internalError(err)
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, "", models.ErrorUnauthorized{Message: models.MessageBadCredentials, Fields: map[string][]string{
			"password": {models.MessageIncorrectPassword},
		}}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", internalError(err)
	}

	return user, token, nil
}

// createUser stores a new user with a hashed password. The email must not
// be registered yet.
func createUser(ctx context.Context, repo repositories.UserRepository, hasher PasswordHasher, username, email, password string, isAdmin bool) (*models.User, error) {
	email = normalizeEmail(email)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, emailConflict()
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internalError(err)
	}

	hashed, err := hasher.Hash(password)
	if err != nil {
		return nil, internalError(err)
	}

	user := &models.User{
		Username: strings.TrimSpace(username),
		Email:    email,
		Password: hashed,
		IsAdmin:  isAdmin,
	}

	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, emailConflict()
		}
		return nil, internalError(err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
