package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// MessageRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
//
// Every operation works on the whole store: load everything, mutate in
// memory, write everything back. RemoveByID and MarkRead are no-ops when
// the id is absent and never fail because of it.
type MessageRepository interface {
	Load(ctx context.Context) ([]model.ContactMessage, error)
	Save(ctx context.Context, msgs []model.ContactMessage) error
	Append(ctx context.Context, msg model.ContactMessage) error
	RemoveByID(ctx context.Context, id int64) error
	MarkRead(ctx context.Context, id int64) error
}
