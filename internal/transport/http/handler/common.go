package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
	"github.com/StepanK17/novagen-service/internal/i18n"
	"github.com/StepanK17/novagen-service/internal/transport/http/dto"
	"github.com/StepanK17/novagen-service/internal/transport/http/middleware"
)

const codeInternal = "INTERNAL_ERROR"

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Заголовки уже отправлены, статус изменить нельзя
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// respondError отправляет ошибку в формате API на языке запроса
func respondError(w http.ResponseWriter, r *http.Request, status int, code string) {
	tag := middleware.LanguageFromContext(r.Context())

	response := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: i18n.Text(tag, i18n.ErrorKey(code)),
		},
	}

	respondJSON(w, status, response)
}

// handleUseCaseError обрабатывает ошибки из usecase слоя
func handleUseCaseError(w http.ResponseWriter, r *http.Request, log *zap.SugaredLogger, err error) {
	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		status := getStatusCodeByErrorCode(domainErr.Code)
		if status != http.StatusInternalServerError {
			respondError(w, r, status, domainErr.Code)
			return
		}
	}

	log.Errorw("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chiMiddleware.GetReqID(r.Context()),
		"error", err,
	)
	respondError(w, r, http.StatusInternalServerError, codeInternal)
}

// getStatusCodeByErrorCode возвращает HTTP статус код по коду доменной ошибки
func getStatusCodeByErrorCode(code string) int {
	switch code {
	case "EMPTY_TITLE", "EMPTY_TEXT", "EMPTY_FILE_NAME", "MISSING_FIELDS", "INVALID_STATUS", "INVALID_INPUT":
		return http.StatusBadRequest
	case "NO_SESSION", "ALREADY_ONBOARDED":
		return http.StatusConflict
	case "NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON разбирает тело запроса; при ошибке отвечает INVALID_INPUT
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return false
	}
	return true
}

// sessionIDFromQuery читает обязательный session_id из query
func sessionIDFromQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return "", false
	}
	return sessionID, true
}
