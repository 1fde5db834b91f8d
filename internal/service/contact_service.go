package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"corpsite_backend/internal/model"
	"corpsite_backend/internal/repository"
	"corpsite_backend/pkg/authz"
	"corpsite_backend/pkg/email"
	"corpsite_backend/pkg/validation"
)

// OwnerNotifier delivers a notification to the site owner about a new
// contact submission. Delivery is best-effort: callers log and swallow
// failures.
type OwnerNotifier interface {
	NotifyContactReceived(ctx context.Context, data email.ContactNotificationData) error
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

// ContactService handles the public contact form and the admin inbox.
type ContactService interface {
	// Submit validates and stores a new submission, then attempts the
	// owner notification exactly once. A notification failure does not
	// fail the submission.
	Submit(ctx context.Context, input ContactInput) (*model.ContactSubmission, error)

	// List returns submissions for the admin inbox, newest first.
	List(ctx context.Context, caller *model.User, unreadOnly bool) ([]model.ContactSubmission, error)

	// MarkRead flags a submission as handled.
	MarkRead(ctx context.Context, caller *model.User, id uint) error
}

type contactService struct {
	repo     repository.ContactRepository
	notifier OwnerNotifier
}

func NewContactService(repo repository.ContactRepository, notifier OwnerNotifier) ContactService {
	return &contactService{repo: repo, notifier: notifier}
}

func (s *contactService) Submit(ctx context.Context, input ContactInput) (*model.ContactSubmission, error) {
	// Whitespace-only values count as empty
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if err := validation.Check(input); err != nil {
		return nil, err
	}

	sub := &model.ContactSubmission{
		Reference:  uuid.New().String(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Subject:    input.Subject,
		Message:    input.Message,
		ReadStatus: false,
	}

	// Persistence is the source of truth: the notification is only
	// attempted once the row is durably written.
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		err := s.notifier.NotifyContactReceived(ctx, email.ContactNotificationData{
			Subject: sub.Subject,
			Name:    sub.Name,
			Email:   sub.Email,
			Phone:   sub.Phone,
			Message: sub.Message,
		})
		if err != nil {
			log.Printf("Could not send contact notification email: %v", err)
		}
	}

	return sub, nil
}

func (s *contactService) List(ctx context.Context, caller *model.User, unreadOnly bool) ([]model.ContactSubmission, error) {
	if !authz.IsPermitted(authz.OpContactList, caller) {
		return nil, ErrPermissionDenied
	}
	return s.repo.List(ctx, unreadOnly)
}

func (s *contactService) MarkRead(ctx context.Context, caller *model.User, id uint) error {
	if !authz.IsPermitted(authz.OpContactMarkRead, caller) {
		return ErrPermissionDenied
	}
	return s.repo.MarkRead(ctx, id)
}
