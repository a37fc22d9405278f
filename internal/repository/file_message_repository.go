package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/portfolio/backend/internal/model"
)

// FileMessageRepository persists contact messages as a JSON array in a
// single file. A missing file is an empty store. Writes go to a temp file
// in the same directory and are renamed over the target so a crash cannot
// leave a truncated store behind.
//
// The mutex serializes load-modify-save cycles within this process; other
// processes writing the same file are not coordinated with.
type FileMessageRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileMessageRepository creates a FileMessageRepository backed by the
// file at path. The file is created on first write.
func NewFileMessageRepository(path string) *FileMessageRepository {
	return &FileMessageRepository{path: path}
}

// Ensure FileMessageRepository implements MessageRepository at compile time.
var _ MessageRepository = (*FileMessageRepository)(nil)

// Load reads the whole store. A missing file yields an empty slice and nil
// error; an unparseable file yields an error wrapping ErrCorrupt.
func (r *FileMessageRepository) Load(_ context.Context) ([]model.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Save overwrites the whole store with msgs.
func (r *FileMessageRepository) Save(_ context.Context, msgs []model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(msgs)
}

// Append adds msg to the end of the store.
func (r *FileMessageRepository) Append(_ context.Context, msg model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(msgs, msg))
}

// RemoveByID deletes the message with the given id. Removing an absent id
// leaves the store unchanged and returns nil.
func (r *FileMessageRepository) RemoveByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.load()
	if err != nil {
		return err
	}
	kept := msgs[:0]
	for _, m := range msgs {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return r.save(kept)
}

// MarkRead sets read=true on the first message with the given id. Absent
// or already-read ids are a no-op; the flag never reverts to false.
func (r *FileMessageRepository) MarkRead(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.load()
	if err != nil {
		return err
	}
	for i := range msgs {
		if msgs[i].ID == id {
			msgs[i].Read = true
			break
		}
	}
	return r.save(msgs)
}

func (r *FileMessageRepository) load() ([]model.ContactMessage, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []model.ContactMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: read %s: %w", r.path, err)
	}

	var msgs []model.ContactMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("repository: parse %s: %w: %v", r.path, ErrCorrupt, err)
	}
	return msgs, nil
}

func (r *FileMessageRepository) save(msgs []model.ContactMessage) error {
	if msgs == nil {
		msgs = []model.ContactMessage{}
	}
	data, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return fmt.Errorf("repository: marshal: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("repository: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("repository: create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("repository: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("repository: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("repository: rename: %w", err)
	}
	return nil
}
