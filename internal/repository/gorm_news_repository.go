package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"corpsite_backend/internal/model"
)

type gormNewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &gormNewsRepository{db: db}
}

func (r *gormNewsRepository) Create(ctx context.Context, post *model.NewsPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *gormNewsRepository) GetByID(ctx context.Context, id uint) (*model.NewsPost, error) {
	var post model.NewsPost
	err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *gormNewsRepository) ListPublished(ctx context.Context) ([]model.NewsPost, error) {
	var posts []model.NewsPost
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *gormNewsRepository) ListAll(ctx context.Context) ([]model.NewsPost, error) {
	var posts []model.NewsPost
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update applies the given column values to the post with id. Updating a
// missing id affects zero rows and is not an error.
func (r *gormNewsRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.NewsPost{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes the post with id. Deleting a missing id is a no-op.
func (r *gormNewsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.NewsPost{}, id).Error
}
