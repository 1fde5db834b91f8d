package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpsite_backend/internal/model"
	"corpsite_backend/pkg/email"
	"corpsite_backend/pkg/validation"
)

type mockContactRepo struct {
	createFunc func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc   func(ctx context.Context, unreadOnly bool) ([]model.ContactSubmission, error)
	markedRead []uint
	calls      *[]string
}

func (m *mockContactRepo) Create(ctx context.Context, sub *model.ContactSubmission) error {
	if m.calls != nil {
		*m.calls = append(*m.calls, "create")
	}
	if m.createFunc != nil {
		return m.createFunc(ctx, sub)
	}
	return nil
}

func (m *mockContactRepo) List(ctx context.Context, unreadOnly bool) ([]model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, unreadOnly)
	}
	return nil, nil
}

func (m *mockContactRepo) CountUnread(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockContactRepo) MarkRead(ctx context.Context, id uint) error {
	m.markedRead = append(m.markedRead, id)
	return nil
}

type mockNotifier struct {
	notifyFunc func(ctx context.Context, data email.ContactNotificationData) error
	received   []email.ContactNotificationData
	calls      *[]string
}

func (m *mockNotifier) NotifyContactReceived(ctx context.Context, data email.ContactNotificationData) error {
	if m.calls != nil {
		*m.calls = append(*m.calls, "notify")
	}
	m.received = append(m.received, data)
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, data)
	}
	return nil
}

func adminUser() *model.User {
	u := &model.User{Email: "admin@example.com", Name: "Admin", Role: model.RoleAdmin}
	u.ID = 1
	return u
}

func regularUser() *model.User {
	u := &model.User{Email: "user@example.com", Name: "User", Role: model.RoleUser}
	u.ID = 2
	return u
}

func TestContactSubmit_Success(t *testing.T) {
	var calls []string
	repo := &mockContactRepo{calls: &calls}
	notifier := &mockNotifier{calls: &calls}
	svc := NewContactService(repo, notifier)

	sub, err := svc.Submit(context.Background(), ContactInput{
		Name:    "山田太郎",
		Email:   "yamada@example.com",
		Subject: "相談",
		Message: "こんにちは",
	})
	require.NoError(t, err)

	assert.Equal(t, "山田太郎", sub.Name)
	assert.NotEmpty(t, sub.Reference)
	assert.False(t, sub.ReadStatus)

	// Exactly one persist and one notification attempt, in that order.
	assert.Equal(t, []string{"create", "notify"}, calls)

	require.Len(t, notifier.received, 1)
	assert.Equal(t, "相談", notifier.received[0].Subject)
	assert.Empty(t, notifier.received[0].Phone)
}

func TestContactSubmit_PhonePassedThrough(t *testing.T) {
	repo := &mockContactRepo{}
	notifier := &mockNotifier{}
	svc := NewContactService(repo, notifier)

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "090-1234-5678",
		Subject: "Partnership",
		Message: "Hello",
	})
	require.NoError(t, err)

	require.Len(t, notifier.received, 1)
	assert.Equal(t, "090-1234-5678", notifier.received[0].Phone)
}

func TestContactSubmit_EmptyNameRejected(t *testing.T) {
	var calls []string
	repo := &mockContactRepo{calls: &calls}
	notifier := &mockNotifier{calls: &calls}
	svc := NewContactService(repo, notifier)

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "",
		Email:   "a@b.com",
		Subject: "s",
		Message: "m",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "name")

	// Zero persistence calls and zero side effects.
	assert.Empty(t, calls)
}

func TestContactSubmit_WhitespaceOnlyFieldsRejected(t *testing.T) {
	svc := NewContactService(&mockContactRepo{}, &mockNotifier{})

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "  ",
		Email:   "a@b.com",
		Subject: "\t",
		Message: " \n ",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "subject")
	assert.Contains(t, verrs, "message")
}

func TestContactSubmit_InvalidEmailRejected(t *testing.T) {
	var calls []string
	repo := &mockContactRepo{calls: &calls}
	svc := NewContactService(repo, &mockNotifier{calls: &calls})

	for _, bad := range []string{"invalid-email", "a@b", "no spaces@x.com", "@domain.com"} {
		_, err := svc.Submit(context.Background(), ContactInput{
			Name:    "Tester",
			Email:   bad,
			Subject: "Subject",
			Message: "Message",
		})

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs, "email %q should be rejected", bad)
		assert.Contains(t, verrs, "email")
	}

	assert.Empty(t, calls, "no persistence attempt for malformed input")
}

func TestContactSubmit_NotificationFailureSwallowed(t *testing.T) {
	repo := &mockContactRepo{}
	notifier := &mockNotifier{
		notifyFunc: func(ctx context.Context, data email.ContactNotificationData) error {
			return errors.New("resend API error")
		},
	}
	svc := NewContactService(repo, notifier)

	sub, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "There",
	})

	require.NoError(t, err, "notification failure must not fail the submission")
	assert.NotNil(t, sub)
	assert.Len(t, notifier.received, 1, "exactly one notification attempt")
}

func TestContactSubmit_PersistenceFailureIsFatal(t *testing.T) {
	var calls []string
	repo := &mockContactRepo{
		calls: &calls,
		createFunc: func(ctx context.Context, sub *model.ContactSubmission) error {
			return errors.New("storage unavailable")
		},
	}
	notifier := &mockNotifier{calls: &calls}
	svc := NewContactService(repo, notifier)

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "There",
	})

	require.Error(t, err)
	assert.Equal(t, []string{"create"}, calls, "no notification after failed persistence")
}

func TestContactSubmit_NilNotifier(t *testing.T) {
	svc := NewContactService(&mockContactRepo{}, nil)

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "There",
	})
	require.NoError(t, err)
}

func TestContactList_RequiresAdmin(t *testing.T) {
	svc := NewContactService(&mockContactRepo{}, nil)

	_, err := svc.List(context.Background(), nil, false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.List(context.Background(), regularUser(), false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.List(context.Background(), adminUser(), false)
	assert.NoError(t, err)
}

func TestContactMarkRead_RequiresAdmin(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, nil)

	err := svc.MarkRead(context.Background(), regularUser(), 7)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, repo.markedRead)

	err = svc.MarkRead(context.Background(), adminUser(), 7)
	require.NoError(t, err)
	assert.Equal(t, []uint{7}, repo.markedRead)
}
