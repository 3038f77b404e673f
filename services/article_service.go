package services

import (
	"context"
	"strings"

	"techsphere-api/models"
	"techsphere-api/pagination"
	"techsphere-api/policy"
	"techsphere-api/repositories"
	"techsphere-api/validation"
)

type ArticleService interface {
	ListArticles(ctx context.Context, params pagination.Params) ([]models.Article, pagination.Meta, error)
	// SearchArticles matches searchText against title and body, ignoring
	// case. A blank searchText lists every article.
	SearchArticles(ctx context.Context, searchText string, params pagination.Params) ([]models.Article, pagination.Meta, error)
	GetArticle(ctx context.Context, id uint) (*models.Article, error)
	CreateArticle(ctx context.Context, caller policy.Caller, req models.CreateArticleRequest) (*models.Article, error)
	UpdateArticle(ctx context.Context, caller policy.Caller, id uint, req models.UpdateArticleRequest) (*models.Article, error)
	// CheckAccess fails when the article is missing or caller may not modify it.
	CheckAccess(ctx context.Context, caller policy.Caller, id uint) error
	DeleteArticle(ctx context.Context, caller policy.Caller, id uint) (*models.Article, error)
	CountArticles(ctx context.Context) (int64, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	validator   *validation.Validator
}

func NewArticleService(articleRepo repositories.ArticleRepository, validator *validation.Validator) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		validator:   validator,
	}
}

func (s *articleService) ListArticles(ctx context.Context, params pagination.Params) ([]models.Article, pagination.Meta, error) {
	return s.list(ctx, repositories.ArticleFilter{}, params)
}

func (s *articleService) SearchArticles(ctx context.Context, searchText string, params pagination.Params) ([]models.Article, pagination.Meta, error) {
	filter := repositories.ArticleFilter{SearchText: strings.TrimSpace(searchText)}
	return s.list(ctx, filter, params)
}

func (s *articleService) list(ctx context.Context, filter repositories.ArticleFilter, params pagination.Params) ([]models.Article, pagination.Meta, error) {
	total, err := s.articleRepo.Count(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, internalError(err)
	}

	articles, err := s.articleRepo.FindMany(ctx, filter, params)
	if err != nil {
		return nil, pagination.Meta{}, internalError(err)
	}

	return articles, pagination.NewMeta(params, total), nil
}

func (s *articleService) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, lookupError(err, models.MessageArticleNotFound)
	}
	return article, nil
}

func (s *articleService) CreateArticle(ctx context.Context, caller policy.Caller, req models.CreateArticleRequest) (*models.Article, error) {
	if errs := s.validator.Struct(req); errs != nil {
		return nil, models.ErrorValidation{Fields: errs}
	}

	article := &models.Article{
		Title:     req.Title,
		Body:      req.Body,
		CreatorID: caller.UserID,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, internalError(err)
	}

	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, caller policy.Caller, id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.authorizedArticle(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.Struct(req); errs != nil {
		return nil, models.ErrorValidation{Fields: errs}
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Body != nil {
		fields["body"] = *req.Body
	}

	if err := s.articleRepo.Update(ctx, article.ID, fields); err != nil {
		return nil, internalError(err)
	}

	updated, err := s.articleRepo.GetByID(ctx, article.ID)
	if err != nil {
		return nil, lookupError(err, models.MessageArticleNotFound)
	}
	return updated, nil
}

func (s *articleService) CheckAccess(ctx context.Context, caller policy.Caller, id uint) error {
	_, err := s.authorizedArticle(ctx, caller, id)
	return err
}

// DeleteArticle removes the article and its comments and returns the
// article as it was before deletion.
func (s *articleService) DeleteArticle(ctx context.Context, caller policy.Caller, id uint) (*models.Article, error) {
	article, err := s.authorizedArticle(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if err := s.articleRepo.Delete(ctx, article.ID); err != nil {
		return nil, lookupError(err, models.MessageArticleNotFound)
	}
	return article, nil
}

func (s *articleService) CountArticles(ctx context.Context) (int64, error) {
	total, err := s.articleRepo.Count(ctx, repositories.ArticleFilter{})
	if err != nil {
		return 0, internalError(err)
	}
	return total, nil
}

// authorizedArticle loads the article and checks the caller may modify it.
// Article endpoints report a foreign owner as 401, not 403.
func (s *articleService) authorizedArticle(ctx context.Context, caller policy.Caller, id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, models.MessageArticleNotFound)
	}

	if !policy.Authorize(caller, article, policy.OwnerOrAdmin) {
		return nil, models.ErrorUnauthorized{Message: models.MessageNotArticleOwner}
	}
	return article, nil
}
