package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/transport/http/dto"
	"github.com/StepanK17/novagen-service/internal/usecase"
)

// SessionHandler обрабатывает запросы сессий и анкеты
type SessionHandler struct {
	sessionUseCase *usecase.SessionUseCase
	log            *zap.SugaredLogger
}

// NewSessionHandler создает новый handler для сессий
func NewSessionHandler(sessionUseCase *usecase.SessionUseCase, log *zap.SugaredLogger) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		log:            log,
	}
}

// CreateSession обрабатывает POST /session/create
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUseCase.CreateSession(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.SessionResponse{Session: dto.ToSessionDTO(session)})
}

// Onboard обрабатывает POST /session/onboard
func (h *SessionHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req dto.OnboardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return
	}

	session, err := h.sessionUseCase.Onboard(r.Context(), req.SessionID, dto.ToOnboardingForm(&req))
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.SessionResponse{Session: dto.ToSessionDTO(session)})
}

// GetSession обрабатывает GET /session/get
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUseCase.GetSession(r.Context(), sessionID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.SessionResponse{Session: dto.ToSessionDTO(session)})
}

// GetTeam обрабатывает GET /team/get
func (h *SessionHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}

	team, err := h.sessionUseCase.Team(r.Context(), sessionID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TeamResponse{Team: dto.ToTeamDTO(team)})
}
