package handler

import (
	"encoding/json"
	"net/http"

	"github.com/portfolio/backend/internal/catalog"
	"github.com/portfolio/backend/internal/model"
)

// PortfolioHandler serves the static project and skill catalogs.
type PortfolioHandler struct{}

// NewPortfolioHandler creates a PortfolioHandler.
func NewPortfolioHandler() *PortfolioHandler {
	return &PortfolioHandler{}
}

// projectsResponse is the JSON response for GET /api/projects.
type projectsResponse struct {
	Status   string          `json:"status"`
	Total    int             `json:"total"`
	Projects []model.Project `json:"projects"`
}

// Projects handles GET /api/projects.
func (h *PortfolioHandler) Projects(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projectsResponse{
		Status:   "success",
		Total:    len(catalog.Projects),
		Projects: catalog.Projects,
	})
}

// skillsResponse is the JSON response for GET /api/skills.
type skillsResponse struct {
	Status string       `json:"status"`
	Skills model.Skills `json:"skills"`
}

// Skills handles GET /api/skills.
func (h *PortfolioHandler) Skills(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(skillsResponse{
		Status: "success",
		Skills: catalog.Skills,
	})
}
