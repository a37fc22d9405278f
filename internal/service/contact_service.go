package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// SubmitInput carries the raw contact-form fields from the HTTP layer.
type SubmitInput struct {
	Name    string
	Email   string
	Title   string
	Message string
}

// SubmitResult reports the outcome of a successful submission. The
// notification flags record whether each best-effort mail delivery
// attempt succeeded; they never affect the submission outcome itself.
type SubmitResult struct {
	Message          model.ContactMessage
	NotificationSent bool
	ConfirmationSent bool
}

// ListResult is the full store contents with derived counts.
type ListResult struct {
	Messages []model.ContactMessage
	Total    int
	Unread   int
}

// ContactService defines the business logic for contact form submissions
// and the admin-side message operations.
type ContactService interface {
	// Submit validates the input, persists a new message and attempts the
	// notification mails. Validation failures are returned as
	// validation.Errors; a persistence failure is returned as-is.
	Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error)

	// List returns every stored message plus total and unread counts.
	List(ctx context.Context) (*ListResult, error)

	// Delete removes the message with the given id. Deleting an absent id
	// succeeds (idempotent).
	Delete(ctx context.Context, id int64) error

	// MarkRead flips the read flag of the message with the given id.
	// Absent or already-read ids succeed (idempotent).
	MarkRead(ctx context.Context, id int64) error
}
