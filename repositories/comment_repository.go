package repositories

import (
	"context"

	"techsphere-api/models"
	"techsphere-api/pagination"

	"gorm.io/gorm"
)

type CommentFilter struct {
	ArticleID uint
	CreatorID uint
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	FindMany(ctx context.Context, filter CommentFilter, params pagination.Params) ([]models.Comment, error)
	Count(ctx context.Context, filter CommentFilter) (int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	return &comment, err
}

func (r *commentRepository) FindMany(ctx context.Context, filter CommentFilter, params pagination.Params) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Scopes(filterComments(filter), pagination.NewestFirst("comments"), pagination.Paginate(params)).
		Preload("Creator").
		Preload("Article").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Count(ctx context.Context, filter CommentFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Scopes(filterComments(filter)).
		Count(&total).Error
	return total, err
}

func (r *commentRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Comment{ID: id}).Updates(fields).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func filterComments(filter CommentFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.ArticleID > 0 {
			db = db.Where("comments.article_id = ?", filter.ArticleID)
		}
		if filter.CreatorID > 0 {
			db = db.Where("comments.creator_id = ?", filter.CreatorID)
		}
		return db
	}
}
