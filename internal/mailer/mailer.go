// Package mailer sends best-effort email notifications for contact-form
// submissions. Failures never propagate to the submission outcome; callers
// record them as flags.
package mailer

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
)

// ErrNotConfigured is returned by the disabled sender used when mail
// credentials are absent.
var ErrNotConfigured = errors.New("mailer: credentials not configured")

// Sender delivers the two notification mails for a submission.
type Sender interface {
	// Notify sends the operator notification for a new contact message.
	Notify(ctx context.Context, msg model.ContactMessage) error

	// Confirm sends a receipt confirmation to the submitter.
	Confirm(ctx context.Context, msg model.ContactMessage) error
}

// Config carries the mail account settings. An empty Address or Password
// disables sending entirely.
type Config struct {
	Host      string // SMTP host, e.g. "smtp.gmail.com"
	Port      int    // submission port, e.g. 587
	Address   string // account identity, used as From
	Password  string // account credential
	Recipient string // operator notification recipient; defaults to Address
}

// New builds a Sender from cfg. Missing credentials yield a disabled
// sender whose sends report ErrNotConfigured, so a contact submission
// still succeeds with notification flags set to false.
func New(cfg Config) Sender {
	if cfg.Address == "" || cfg.Password == "" {
		return disabledSender{}
	}
	if cfg.Recipient == "" {
		cfg.Recipient = cfg.Address
	}
	return &smtpSender{cfg: cfg}
}

type disabledSender struct{}

func (disabledSender) Notify(context.Context, model.ContactMessage) error {
	return ErrNotConfigured
}

func (disabledSender) Confirm(context.Context, model.ContactMessage) error {
	return ErrNotConfigured
}
