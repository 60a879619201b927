package handler

import (
	"net/http"
	"strings"

	"github.com/StepanK17/novagen-service/internal/transport/http/dto"
	"github.com/StepanK17/novagen-service/internal/usecase"
)

// CatalogHandler отдает справочные данные анкеты
type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

// NewCatalogHandler создает новый handler для справочников
func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// GetMentors обрабатывает GET /catalog/mentors
func (h *CatalogHandler) GetMentors(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.MentorsResponse{
		Mentors: dto.ToMentorDTOs(h.catalogUseCase.Mentors()),
	})
}

// GetTrends обрабатывает GET /catalog/trends
func (h *CatalogHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.TrendsResponse{
		TechTrends: h.catalogUseCase.TechTrends(),
		AgeGroups:  h.catalogUseCase.AgeGroups(),
	})
}

// GetProjects обрабатывает GET /catalog/projects?age_group=&trend=&trend=
func (h *CatalogHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Названия трендов содержат запятые, поэтому каждый тренд передается отдельным параметром
	var trends []string
	for _, t := range query["trend"] {
		if t = strings.TrimSpace(t); t != "" {
			trends = append(trends, t)
		}
	}

	projects := h.catalogUseCase.ProjectsToEvaluate(query.Get("age_group"), trends)
	respondJSON(w, http.StatusOK, dto.ProjectsResponse{Projects: dto.ToProjectDTOs(projects)})
}
