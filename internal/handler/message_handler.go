package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// MessageHandler handles the admin-side message endpoints: list, delete
// and mark-read.
type MessageHandler struct {
	contactService service.ContactService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(contactService service.ContactService) *MessageHandler {
	return &MessageHandler{contactService: contactService}
}

// listResponse is the JSON response for GET /api/messages.
type listResponse struct {
	Status   string                 `json:"status"`
	Total    int                    `json:"total"`
	Unread   int                    `json:"unread"`
	Messages []model.ContactMessage `json:"messages"`
}

// List handles GET /api/messages. The whole store is returned; there is
// no pagination.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	result, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("list messages failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to load messages"})
		return
	}

	// Return [] not null for an empty store
	msgs := result.Messages
	if msgs == nil {
		msgs = []model.ContactMessage{}
	}

	_ = json.NewEncoder(w).Encode(listResponse{
		Status:   "success",
		Total:    result.Total,
		Unread:   result.Unread,
		Messages: msgs,
	})
}

// Delete handles DELETE /api/messages/{id}. Deleting an absent id still
// reports success (idempotent).
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid message id"})
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		slog.Error("delete message failed", "error", err, "id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to delete message"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "success",
		"message": "Message deleted successfully",
	})
}

// MarkRead handles PUT /api/messages/{id}/read. Same idempotent-success
// semantics as Delete.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid message id"})
		return
	}

	if err := h.contactService.MarkRead(r.Context(), id); err != nil {
		slog.Error("mark message read failed", "error", err, "id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to update message"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "success",
		"message": "Message marked as read",
	})
}
