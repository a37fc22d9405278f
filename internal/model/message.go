package model

// ContactMessage represents a message submitted via the contact form.
// Records are persisted as a JSON array in a single store file; the ID is
// the Unix-millisecond creation time, so two submissions landing in the
// same millisecond can collide (accepted, the store does not deduplicate).
type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC 3339, set at creation, immutable
	Read      bool   `json:"read"`
}

// UnreadCount returns the number of messages not yet marked as read.
// Derived on demand, never stored.
func UnreadCount(msgs []ContactMessage) int {
	n := 0
	for _, m := range msgs {
		if !m.Read {
			n++
		}
	}
	return n
}
