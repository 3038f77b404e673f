package services

import (
	"context"
	"errors"

	"techsphere-api/models"
	"techsphere-api/pagination"
	"techsphere-api/policy"
	"techsphere-api/repositories"
	"techsphere-api/validation"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(ctx context.Context, caller policy.Caller, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, caller policy.Caller, id uint, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, caller policy.Caller, id uint) error
	// CheckAccess fails when the user is missing or caller is neither that
	// user nor an admin.
	CheckAccess(ctx context.Context, caller policy.Caller, id uint) error
	ListUsers(ctx context.Context, caller policy.Caller, params pagination.Params) ([]models.User, pagination.Meta, error)
	CreateUser(ctx context.Context, caller policy.Caller, req models.CreateUserRequest) (*models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

type userService struct {
	userRepo  repositories.UserRepository
	hasher    PasswordHasher
	validator *validation.Validator
}

func NewUserService(userRepo repositories.UserRepository, hasher PasswordHasher, validator *validation.Validator) UserService {
	return &userService{
		userRepo:  userRepo,
		hasher:    hasher,
		validator: validator,
	}
}

func (s *userService) GetProfile(ctx context.Context, caller policy.Caller, id uint) (*models.User, error) {
	user, err := s.userRepo.GetProfile(ctx, id)
	if err != nil {
		return nil, lookupError(err, models.MessageUserNotFound)
	}

	if !policy.Authorize(caller, user, policy.OwnerOrAdmin) {
		return nil, models.ErrorForbidden{Message: models.MessageNotProfileOwner}
	}

	return user, nil
}

func (s *userService) CheckAccess(ctx context.Context, caller policy.Caller, id uint) error {
	_, err := s.authorizedUser(ctx, caller, id)
	return err
}

func (s *userService) authorizedUser(ctx context.Context, caller policy.Caller, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, models.MessageUserNotFound)
	}

	if !policy.Authorize(caller, user, policy.OwnerOrAdmin) {
		return nil, models.ErrorForbidden{Message: models.MessageNotProfileOwner}
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, caller policy.Caller, id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.authorizedUser(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Struct(req); errs != nil {
		return nil, models.ErrorValidation{Fields: errs}
	}

	if req.IsAdmin != nil && !policy.Authorize(caller, user, policy.AdminOnly) {
		return nil, models.ErrorForbidden{Message: models.MessageAdminFlagRequired}
	}

	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			existing, err := s.userRepo.GetByEmail(ctx, email)
			if err == nil && existing.ID != user.ID {
				return nil, emailConflict()
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, internalError(err)
			}
		}
		fields["email"] = email
	}
	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, internalError(err)
		}
		fields["password"] = hashed
	}
	if req.Image != nil {
		if *req.Image == "" {
			fields["image"] = nil
		} else {
			fields["image"] = *req.Image
		}
	}
	if req.IsAdmin != nil {
		fields["is_admin"] = *req.IsAdmin
	}

	if err := s.userRepo.Update(ctx, user.ID, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, emailConflict()
		}
		return nil, internalError(err)
	}

	updated, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, lookupError(err, models.MessageUserNotFound)
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, caller policy.Caller, id uint) error {
	user, err := s.authorizedUser(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return lookupError(err, models.MessageUserNotFound)
	}
	return nil
}

func (s *userService) ListUsers(ctx context.Context, caller policy.Caller, params pagination.Params) ([]models.User, pagination.Meta, error) {
	if !policy.Authorize(caller, nil, policy.AdminOnly) {
		return nil, pagination.Meta{}, models.ErrorForbidden{Message: models.MessageAdminRequired}
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, pagination.Meta{}, internalError(err)
	}

	users, err := s.userRepo.FindMany(ctx, params)
	if err != nil {
		return nil, pagination.Meta{}, internalError(err)
	}

	return users, pagination.NewMeta(params, total), nil
}

func (s *userService) CreateUser(ctx context.Context, caller policy.Caller, req models.CreateUserRequest) (*models.User, error) {
	if !policy.Authorize(caller, nil, policy.AdminOnly) {
		return nil, models.ErrorForbidden{Message: models.MessageAdminRequired}
	}

	if errs := s.validator.Struct(req); errs != nil {
		return nil, models.ErrorValidation{Fields: errs}
	}

	isAdmin := req.IsAdmin != nil && *req.IsAdmin
	return createUser(ctx, s.userRepo, s.hasher, req.Username, req.Email, req.Password, isAdmin)
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, internalError(err)
	}
	return total, nil
}

// EnsureAdmin creates an admin account for email unless one is registered.
// An empty email is a no-op.
func (s *userService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	if email == "" {
		return nil
	}

	_, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	req := models.CreateUserRequest{Username: username, Email: email, Password: password}
	if errs := s.validator.Struct(req); errs != nil {
		return models.ErrorValidation{Fields: errs}
	}

	user, err := createUser(ctx, s.userRepo, s.hasher, username, email, password, true)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("bootstrap admin created")
	return nil
}
