package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	"github.com/StepanK17/novagen-service/internal/repository"
)

// DefaultNotificationTTL время показа уведомления
const DefaultNotificationTTL = 5 * time.Second

// NotificationUseCase управляет баннером уведомлений сессии.
// Новое уведомление вытесняет предыдущее; истекшее считается отсутствующим.
type NotificationUseCase struct {
	repo repository.NotificationRepository
	ttl  time.Duration
	now  Clock
}

// NewNotificationUseCase создает новый usecase для уведомлений
func NewNotificationUseCase(repo repository.NotificationRepository, ttl time.Duration, now Clock) *NotificationUseCase {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	if now == nil {
		now = time.Now
	}
	return &NotificationUseCase{
		repo: repo,
		ttl:  ttl,
		now:  now,
	}
}

// Notify публикует уведомление для сессии
func (uc *NotificationUseCase) Notify(ctx context.Context, sessionID string, typ entity.NotificationType, key string) error {
	createdAt := uc.now()
	n := &entity.Notification{
		Type:      typ,
		Key:       key,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(uc.ttl),
	}

	if err := uc.repo.Set(ctx, sessionID, n); err != nil {
		return fmt.Errorf("failed to set notification: %w", err)
	}

	return nil
}

// Success публикует уведомление об успешной операции
func (uc *NotificationUseCase) Success(ctx context.Context, sessionID, key string) error {
	return uc.Notify(ctx, sessionID, entity.NotificationSuccess, key)
}

// Failure публикует уведомление об ошибке и возвращает исходную ошибку
func (uc *NotificationUseCase) Failure(ctx context.Context, sessionID, key string, cause error) error {
	if err := uc.Notify(ctx, sessionID, entity.NotificationError, key); err != nil {
		return fmt.Errorf("%w (original error: %v)", err, cause)
	}
	return cause
}

// Current возвращает видимое уведомление или nil
func (uc *NotificationUseCase) Current(ctx context.Context, sessionID string) (*entity.Notification, error) {
	n, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	if !n.Visible(uc.now()) {
		return nil, nil
	}

	return n, nil
}
