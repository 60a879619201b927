package handler

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/i18n"
	"github.com/StepanK17/novagen-service/internal/transport/http/dto"
	"github.com/StepanK17/novagen-service/internal/transport/http/middleware"
	"github.com/StepanK17/novagen-service/internal/usecase"
)

// NotificationHandler отдает текущее уведомление сессии
type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
	log                 *zap.SugaredLogger
}

// NewNotificationHandler создает новый handler для уведомлений
func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase, log *zap.SugaredLogger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		log:                 log,
	}
}

// GetNotification обрабатывает GET /notification/get
func (h *NotificationHandler) GetNotification(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}

	n, err := h.notificationUseCase.Current(r.Context(), sessionID)
	if err != nil {
		handleUseCaseError(w, r, h.log, err)
		return
	}

	if n == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	tag := middleware.LanguageFromContext(r.Context())
	respondJSON(w, http.StatusOK, dto.NotificationResponse{
		Notification: dto.NotificationDTO{
			Type:      string(n.Type),
			Message:   i18n.Text(tag, n.Key),
			ExpiresAt: n.ExpiresAt.Format(time.RFC3339Nano),
		},
	})
}
