package repositories

import (
	"context"

	"techsphere-api/models"
	"techsphere-api/pagination"

	"gorm.io/gorm"
)

// ArticleFilter narrows listings and counts. Zero values match everything.
type ArticleFilter struct {
	CreatorID  uint
	SearchText string
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetWithDetails(ctx context.Context, id uint) (*models.Article, error)
	FindMany(ctx context.Context, filter ArticleFilter, params pagination.Params) ([]models.Article, error)
	Count(ctx context.Context, filter ArticleFilter) (int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).First(&article, id).Error
	return &article, err
}

// GetWithDetails loads the article, its creator and its comments (newest
// first) with their creators.
func (r *articleRepository) GetWithDetails(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Comments", pagination.NewestFirst("comments")).
		Preload("Comments.Creator").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) FindMany(ctx context.Context, filter ArticleFilter, params pagination.Params) ([]models.Article, error) {
	articles := []models.Article{}
	err := r.db.WithContext(ctx).
		Scopes(filterArticles(filter), pagination.NewestFirst("articles"), pagination.Paginate(params)).
		Preload("Creator").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Count(ctx context.Context, filter ArticleFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Scopes(filterArticles(filter)).
		Count(&total).Error
	return total, err
}

func (r *articleRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Article{ID: id}).Updates(fields).Error
}

// Delete removes the article's comments and then the article, atomically.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Article{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func filterArticles(filter ArticleFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.CreatorID > 0 {
			db = db.Where("articles.creator_id = ?", filter.CreatorID)
		}
		return pagination.ContainsFold(filter.SearchText, "articles.title", "articles.body")(db)
	}
}
