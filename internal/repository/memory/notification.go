package memory

import (
	"context"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// NotificationRepository хранит последнее уведомление каждой сессии
type NotificationRepository struct {
	storage *Storage
}

// NewNotificationRepository создает новый репозиторий уведомлений
func NewNotificationRepository(storage *Storage) *NotificationRepository {
	return &NotificationRepository{storage: storage}
}

// Set заменяет текущее уведомление сессии
func (r *NotificationRepository) Set(_ context.Context, sessionID string, n *entity.Notification) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	r.storage.notifications[sessionID] = cloneNotification(n)
	return nil
}

// Get возвращает текущее уведомление или nil
func (r *NotificationRepository) Get(_ context.Context, sessionID string) (*entity.Notification, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	n, ok := r.storage.notifications[sessionID]
	if !ok {
		return nil, nil
	}

	return cloneNotification(n), nil
}
