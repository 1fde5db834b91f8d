package repository

import (
	"context"
	"errors"

	"corpsite_backend/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ContactRepository is the data-access surface for contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, sub *model.ContactSubmission) error
	List(ctx context.Context, unreadOnly bool) ([]model.ContactSubmission, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uint) error
}

// NewsRepository is the data-access surface for news posts.
// Update and Delete are no-ops when id does not exist.
type NewsRepository interface {
	Create(ctx context.Context, post *model.NewsPost) error
	GetByID(ctx context.Context, id uint) (*model.NewsPost, error)
	ListPublished(ctx context.Context) ([]model.NewsPost, error)
	ListAll(ctx context.Context) ([]model.NewsPost, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// UserRepository is the data-access surface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
