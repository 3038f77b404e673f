package services

import (
	"context"

	"techsphere-api/models"
	"techsphere-api/pagination"
	"techsphere-api/policy"
	"techsphere-api/repositories"
	"techsphere-api/validation"
)

type CommentService interface {
	ListComments(ctx context.Context, filter repositories.CommentFilter, params pagination.Params) ([]models.Comment, pagination.Meta, error)
	CreateComment(ctx context.Context, caller policy.Caller, req models.CreateCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, caller policy.Caller, id uint, req models.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, caller policy.Caller, id uint) error
	CheckAccess(ctx context.Context, caller policy.Caller, id uint) error
	CountComments(ctx context.Context) (int64, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	validator   *validation.Validator
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, validator *validation.Validator) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		validator:   validator,
	}
}

func (s *commentService) ListComments(ctx context.Context, filter repositories.CommentFilter, params pagination.Params) ([]models.Comment, pagination.Meta, error) {
	total, err := s.commentRepo.Count(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, internalError(err)
	}

	comments, err := s.commentRepo.FindMany(ctx, filter, params)
	if err != nil {
		return nil, pagination.Meta{}, internalError(err)
	}

	return comments, pagination.NewMeta(params, total), nil
}

// CreateComment stores a comment by caller. The target article must exist.
func (s *commentService) CreateComment(ctx context.Context, caller policy.Caller, req models.CreateCommentRequest) (*models.Comment, error) {
	if errs := s.validator.Struct(req); errs != nil {
		return nil, models.ErrorValidation{Fields: errs}
	}

	article, err := s.articleRepo.GetByID(ctx, *req.ArticleID)
	if err != nil {
		return nil, lookupError(err, models.MessageArticleNotFound)
	}

	comment := &models.Comment{
		Body:      req.Body,
		ArticleID: article.ID,
		CreatorID: caller.UserID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, internalError(err)
	}

	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, caller policy.Caller, id uint, req models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.authorizedComment(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Struct(req); errs != nil {
		return nil, models.ErrorValidation{Fields: errs}
	}

	if err := s.commentRepo.Update(ctx, comment.ID, map[string]interface{}{"body": *req.Body}); err != nil {
		return nil, internalError(err)
	}

	updated, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, lookupError(err, models.MessageCommentNotFound)
	}
	return updated, nil
}

func (s *commentService) DeleteComment(ctx context.Context, caller policy.Caller, id uint) error {
	comment, err := s.authorizedComment(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return lookupError(err, models.MessageCommentNotFound)
	}
	return nil
}

func (s *commentService) CheckAccess(ctx context.Context, caller policy.Caller, id uint) error {
	_, err := s.authorizedComment(ctx, caller, id)
	return err
}

func (s *commentService) CountComments(ctx context.Context) (int64, error) {
	total, err := s.commentRepo.Count(ctx, repositories.CommentFilter{})
	if err != nil {
		return 0, internalError(err)
	}
	return total, nil
}

func (s *commentService) authorizedComment(ctx context.Context, caller policy.Caller, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, models.MessageCommentNotFound)
	}

	if !policy.Authorize(caller, comment, policy.OwnerOrAdmin) {
		return nil, models.ErrorForbidden{Message: models.MessageNotCommentOwner}
	}
	return comment, nil
}
