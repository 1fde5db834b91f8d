package repository

import (
	"context"

	"gorm.io/gorm"

	"corpsite_backend/internal/model"
)

type gormContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

func (r *gormContactRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *gormContactRepository) List(ctx context.Context, unreadOnly bool) ([]model.ContactSubmission, error) {
	var subs []model.ContactSubmission
	query := r.db.WithContext(ctx).Order("created_at desc")
	if unreadOnly {
		query = query.Where("read_status = ?", false)
	}
	if err := query.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *gormContactRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("read_status = ?", false).
		Count(&count).Error
	return count, err
}

func (r *gormContactRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("id = ?", id).
		Update("read_status", true).Error
}
