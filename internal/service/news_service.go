package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gosimple/slug"

	"corpsite_backend/internal/model"
	"corpsite_backend/internal/repository"
	"corpsite_backend/pkg/authz"
	"corpsite_backend/pkg/validation"
)

// ImageGenerator produces a hosted thumbnail image for a prompt.
// Generation is best-effort: a failure leaves the post without a thumbnail.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type NewsCreateInput struct {
	Title               string `json:"title" validate:"required,max=255"`
	Content             string `json:"content" validate:"required"`
	AIGenerateThumbnail bool   `json:"ai_generate_thumbnail"`
}

type NewsUpdateInput struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// NewsService handles the public news listing and the admin CMS.
// Mutations are validated first, then authorized, then persisted.
type NewsService interface {
	Create(ctx context.Context, caller *model.User, input NewsCreateInput) (*model.NewsPost, error)
	Update(ctx context.Context, caller *model.User, id uint, input NewsUpdateInput) error
	Delete(ctx context.Context, caller *model.User, id uint) error
	ListAll(ctx context.Context, caller *model.User) ([]model.NewsPost, error)

	ListPublished(ctx context.Context) ([]model.NewsPost, error)
	GetByID(ctx context.Context, id uint) (*model.NewsPost, error)
}

type newsService struct {
	repo     repository.NewsRepository
	imageGen ImageGenerator
}

func NewNewsService(repo repository.NewsRepository, imageGen ImageGenerator) NewsService {
	return &newsService{repo: repo, imageGen: imageGen}
}

func (s *newsService) Create(ctx context.Context, caller *model.User, input NewsCreateInput) (*model.NewsPost, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)

	if err := validation.Check(input); err != nil {
		return nil, err
	}

	if !authz.IsPermitted(authz.OpNewsCreate, caller) {
		return nil, ErrPermissionDenied
	}

	// The thumbnail, if requested, is resolved before the row is written
	// so a post never references an image that does not exist yet.
	var thumbnailURL string
	if input.AIGenerateThumbnail && s.imageGen != nil {
		prompt := fmt.Sprintf("Professional news thumbnail for: %s. Elegant corporate style, modern design.", input.Title)
		url, err := s.imageGen.Generate(ctx, prompt)
		if err != nil {
			log.Printf("Could not generate thumbnail: %v", err)
		} else {
			thumbnailURL = url
		}
	}

	post := &model.NewsPost{
		Title:        input.Title,
		Slug:         slug.Make(input.Title),
		Content:      input.Content,
		ThumbnailURL: thumbnailURL,
		AuthorID:     caller.ID,
		Published:    true,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *newsService) Update(ctx context.Context, caller *model.User, id uint, input NewsUpdateInput) error {
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		input.Title = &trimmed
	}
	if input.Content != nil {
		trimmed := strings.TrimSpace(*input.Content)
		input.Content = &trimmed
	}

	if err := validation.Check(input); err != nil {
		return err
	}

	if !authz.IsPermitted(authz.OpNewsUpdate, caller) {
		return ErrPermissionDenied
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
		fields["slug"] = slug.Make(*input.Title)
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}

	// Updating a missing id affects zero rows and reports success, the
	// same way a bare UPDATE ... WHERE id = ? would.
	return s.repo.Update(ctx, id, fields)
}

func (s *newsService) Delete(ctx context.Context, caller *model.User, id uint) error {
	if !authz.IsPermitted(authz.OpNewsDelete, caller) {
		return ErrPermissionDenied
	}
	// Idempotent: deleting a missing id is a no-op success.
	return s.repo.Delete(ctx, id)
}

func (s *newsService) ListAll(ctx context.Context, caller *model.User) ([]model.NewsPost, error) {
	if !authz.IsPermitted(authz.OpNewsListAll, caller) {
		return nil, ErrPermissionDenied
	}
	return s.repo.ListAll(ctx)
}

func (s *newsService) ListPublished(ctx context.Context) ([]model.NewsPost, error) {
	return s.repo.ListPublished(ctx)
}

func (s *newsService) GetByID(ctx context.Context, id uint) (*model.NewsPost, error) {
	return s.repo.GetByID(ctx, id)
}
