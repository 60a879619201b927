package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
	"github.com/StepanK17/novagen-service/internal/i18n"
	"github.com/StepanK17/novagen-service/internal/identity"
	"github.com/StepanK17/novagen-service/internal/repository"
)

// ChatUseCase реализует журнал сообщений команды
type ChatUseCase struct {
	messageRepo repository.MessageRepository
	sessionRepo repository.SessionRepository
	txManager   repository.TransactionManager
	notifier    *NotificationUseCase
	ids         identity.Generator
	now         Clock
}

// NewChatUseCase создает новый usecase для чата
func NewChatUseCase(
	messageRepo repository.MessageRepository,
	sessionRepo repository.SessionRepository,
	txManager repository.TransactionManager,
	notifier *NotificationUseCase,
	ids identity.Generator,
	now Clock,
) *ChatUseCase {
	if now == nil {
		now = time.Now
	}
	return &ChatUseCase{
		messageRepo: messageRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		notifier:    notifier,
		ids:         ids,
		now:         now,
	}
}

// PostMessage добавляет сообщение в конец журнала.
// Требует непустой текст и отправленную анкету.
func (uc *ChatUseCase) PostMessage(ctx context.Context, sessionID, text string) (*entity.ChatMessage, error) {
	var result *entity.ChatMessage

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		session, err := loadSession(ctx, uc.sessionRepo, sessionID)
		if err != nil {
			return err
		}

		if strings.TrimSpace(text) == "" {
			return uc.notifier.Failure(ctx, sessionID, i18n.KeyEmptyMessage, domainErrors.NewDomainError(
				"EMPTY_TEXT",
				"message text cannot be empty",
				domainErrors.ErrEmptyText,
			))
		}

		if !session.IsOnboarded() {
			return uc.notifier.Failure(ctx, sessionID, i18n.KeyEmptyMessage, domainErrors.NewDomainError(
				"NO_SESSION",
				"no active team or user session",
				domainErrors.ErrNoSession,
			))
		}

		msg := &entity.ChatMessage{
			MessageID:  uc.ids.NewID(),
			SessionID:  sessionID,
			SenderID:   session.User.UserID,
			SenderName: session.User.Name,
			Text:       text,
			Timestamp:  uc.now(),
		}

		if err := uc.messageRepo.Append(ctx, msg); err != nil {
			return fmt.Errorf("failed to append message: %w", err)
		}

		result = msg
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// Messages возвращает журнал сессии в порядке отправки
func (uc *ChatUseCase) Messages(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	if _, err := loadSession(ctx, uc.sessionRepo, sessionID); err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}
