package repository

import (
	"context"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	Update(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, sessionID string) (*entity.Session, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, sessionID, taskID string) error
	GetByID(ctx context.Context, sessionID, taskID string) (*entity.Task, error)
	GetBySession(ctx context.Context, sessionID string) ([]*entity.Task, error)
}

type MessageRepository interface {
	Append(ctx context.Context, msg *entity.ChatMessage) error
	GetBySession(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error)
}

type FileRepository interface {
	Append(ctx context.Context, file *entity.SharedFile) error
	GetBySession(ctx context.Context, sessionID string) ([]*entity.SharedFile, error)
}

type NotificationRepository interface {
	Set(ctx context.Context, sessionID string, n *entity.Notification) error
	Get(ctx context.Context, sessionID string) (*entity.Notification, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type StatisticsRepository interface {
	GetStatistics(ctx context.Context) (*entity.Statistics, error)
}
