package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/transport/http/dto"
	"github.com/StepanK17/novagen-service/internal/usecase"
)

// ChatHandler обрабатывает запросы чата команды
type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
	log         *zap.SugaredLogger
}

// NewChatHandler создает новый handler для чата
func NewChatHandler(chatUseCase *usecase.ChatUseCase, log *zap.SugaredLogger) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		log:         log,
	}
}

// PostMessage обрабатывает POST /chat/post
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.PostMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID == "" {
		respondError(w, r, http.StatusBadRequest, "INVALID_INPUT")
		return
	}

	msg, err := h.chatUseCase.PostMessage(r.Context(), req.SessionID, req.Text)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.PostMessageResponse{Message: dto.ToChatMessageDTO(msg)})
}

// ListMessages обрабатывает GET /chat/list
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}

	messages, err := h.chatUseCase.Messages(r.Context(), sessionID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ChatLogResponse{
		SessionID: sessionID,
		Messages:  dto.ToChatMessageDTOs(messages),
	})
}
