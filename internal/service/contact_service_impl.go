package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/portfolio/backend/internal/mailer"
	"github.com/portfolio/backend/internal/metrics"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/validation"
)

// notifyTimeout bounds each mail delivery attempt inside the request path.
const notifyTimeout = 10 * time.Second

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.MessageRepository
	sender mailer.Sender
	policy validation.Policy
	now    func() time.Time
}

// NewContactService creates a ContactService backed by the given repository
// and mail sender, validating submissions under the given policy.
func NewContactService(repo repository.MessageRepository, sender mailer.Sender, policy validation.Policy) ContactService {
	return &contactServiceImpl{
		repo:   repo,
		sender: sender,
		policy: policy,
		now:    time.Now,
	}
}

// Submit runs the submission pipeline: validate, persist, notify.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	n, err := s.policy.Validate(validation.Input{
		Name:    in.Name,
		Email:   in.Email,
		Title:   in.Title,
		Message: in.Message,
	})
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	now := s.now().UTC()
	msg := model.ContactMessage{
		ID:        now.UnixMilli(),
		Name:      n.Name,
		Email:     n.Email,
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: now.Format(time.RFC3339),
		Read:      false,
	}

	if err := s.repo.Append(ctx, msg); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("store_error").Inc()
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()

	result := &SubmitResult{Message: msg}
	result.NotificationSent = s.deliver(ctx, "notification", msg, s.sender.Notify)
	result.ConfirmationSent = s.deliver(ctx, "confirmation", msg, s.sender.Confirm)
	return result, nil
}

// deliver runs one best-effort mail attempt under a bounded timeout.
// Failures are logged and counted, never returned.
func (s *contactServiceImpl) deliver(ctx context.Context, kind string, msg model.ContactMessage, send func(context.Context, model.ContactMessage) error) bool {
	sctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := send(sctx, msg); err != nil {
		metrics.NotificationFailures.WithLabelValues(kind).Inc()
		slog.Warn("mail delivery failed", "kind", kind, "message_id", msg.ID, "error", err)
		return false
	}
	return true
}

// List returns the whole store plus total and unread counts.
func (s *contactServiceImpl) List(ctx context.Context) (*ListResult, error) {
	msgs, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Messages: msgs,
		Total:    len(msgs),
		Unread:   model.UnreadCount(msgs),
	}, nil
}

// Delete removes a message by id; absent ids succeed.
func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.RemoveByID(ctx, id)
}

// MarkRead marks a message as read; absent ids succeed.
func (s *contactServiceImpl) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}
