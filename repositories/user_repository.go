package repositories

import (
	"context"

	"techsphere-api/models"
	"techsphere-api/pagination"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfile(ctx context.Context, id uint) (*models.User, error)
	FindMany(ctx context.Context, params pagination.Params) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

// GetProfile loads a user with its articles and its comments, each comment
// carrying the commented article and that article's creator.
func (r *userRepository) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Articles", pagination.NewestFirst("articles")).
		Preload("Comments", pagination.NewestFirst("comments")).
		Preload("Comments.Article").
		Preload("Comments.Article.Creator").
		First(&user, id).Error
	return &user, err
}

func (r *userRepository) FindMany(ctx context.Context, params pagination.Params) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).
		Scopes(pagination.NewestFirst("users"), pagination.Paginate(params)).
		Find(&users).Error
	return users, err
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, err
}

func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.User{ID: id}).Updates(fields).Error
}

// Delete removes the user's comments, the comments on the user's articles,
// the articles and finally the user, in one transaction.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("creator_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("article_id IN (SELECT id FROM articles WHERE creator_id = ?)", id).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("creator_id = ?", id).Delete(&models.Article{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
