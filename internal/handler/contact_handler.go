package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/validation"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// submitResponse is the success payload: the persisted record plus the
// best-effort notification outcome flags.
type submitResponse struct {
	Status            string               `json:"status"`
	Message           string               `json:"message"`
	Data              model.ContactMessage `json:"data"`
	EmailNotification bool                 `json:"email_notification"`
	ConfirmationEmail bool                 `json:"confirmation_email"`
}

// validationErrorResponse is the 400 payload for rejected input.
type validationErrorResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "No data provided"})
		return
	}

	result, err := h.contactService.Submit(r.Context(), service.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(validationErrorResponse{
				Status:  "error",
				Message: "Validation failed",
				Errors:  verrs,
			})
			return
		}

		slog.Error("contact submission failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to store message"})
		return
	}

	_ = json.NewEncoder(w).Encode(submitResponse{
		Status:            "success",
		Message:           "Contact message received successfully",
		Data:              result.Message,
		EmailNotification: result.NotificationSent,
		ConfirmationEmail: result.ConfirmationSent,
	})
}
