package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/usecase"
)

// StatisticsHandler обрабатывает запросы для статистики
type StatisticsHandler struct {
	statsUseCase *usecase.StatisticsUseCase
	log          *zap.SugaredLogger
}

// NewStatisticsHandler создает новый handler для статистики
func NewStatisticsHandler(statsUseCase *usecase.StatisticsUseCase, log *zap.SugaredLogger) *StatisticsHandler {
	return &StatisticsHandler{
		statsUseCase: statsUseCase,
		log:          log,
	}
}

// GetStatistics обрабатывает GET /statistics
func (h *StatisticsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUseCase.GetStatistics(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
