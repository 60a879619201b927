package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
	"github.com/StepanK17/novagen-service/internal/i18n"
	"github.com/StepanK17/novagen-service/internal/identity"
	"github.com/StepanK17/novagen-service/internal/repository"
)

// TaskUseCase реализует бизнес-логику канбан-доски
type TaskUseCase struct {
	taskRepo    repository.TaskRepository
	sessionRepo repository.SessionRepository
	txManager   repository.TransactionManager
	notifier    *NotificationUseCase
	ids         identity.Generator
	now         Clock
}

// NewTaskUseCase создает новый usecase для задач
func NewTaskUseCase(
	taskRepo repository.TaskRepository,
	sessionRepo repository.SessionRepository,
	txManager repository.TransactionManager,
	notifier *NotificationUseCase,
	ids identity.Generator,
	now Clock,
) *TaskUseCase {
	if now == nil {
		now = time.Now
	}
	return &TaskUseCase{
		taskRepo:    taskRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		notifier:    notifier,
		ids:         ids,
		now:         now,
	}
}

// AddTask создает задачу в колонке todo
func (uc *TaskUseCase) AddTask(ctx context.Context, sessionID, title, description string) (*entity.Task, error) {
	var result *entity.Task

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		session, err := loadSession(ctx, uc.sessionRepo, sessionID)
		if err != nil {
			return err
		}

		if strings.TrimSpace(title) == "" {
			return uc.notifier.Failure(ctx, sessionID, i18n.KeyEmptyTitle, domainErrors.NewDomainError(
				"EMPTY_TITLE",
				"task title cannot be empty",
				domainErrors.ErrEmptyTitle,
			))
		}

		assignedTo := session.DisplayName()
		if assignedTo == "" {
			assignedTo = entity.UnassignedName
		}

		task := &entity.Task{
			TaskID:      uc.ids.NewID(),
			SessionID:   sessionID,
			Title:       title,
			Description: description,
			Status:      entity.TaskStatusTodo,
			CreatedBy:   session.LocalUserID,
			AssignedTo:  assignedTo,
			CreatedAt:   uc.now(),
		}

		if err := uc.taskRepo.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		if err := uc.notifier.Success(ctx, sessionID, i18n.KeyTaskAdded); err != nil {
			return err
		}

		result = task
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateTaskStatus переводит задачу в любой статус. Неизвестная задача - no-op.
func (uc *TaskUseCase) UpdateTaskStatus(ctx context.Context, sessionID, taskID string, status entity.TaskStatus) error {
	return uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadSession(ctx, uc.sessionRepo, sessionID); err != nil {
			return err
		}

		if !status.IsValid() {
			return uc.notifier.Failure(ctx, sessionID, i18n.KeyInvalidStatus, domainErrors.NewDomainError(
				"INVALID_STATUS",
				"status must be one of todo, in-progress, done",
				domainErrors.ErrInvalidStatus,
			))
		}

		err := uc.modifyTask(ctx, sessionID, taskID, func(task *entity.Task) {
			task.Status = status
		})
		if err != nil {
			return err
		}

		return uc.notifier.Success(ctx, sessionID, i18n.KeyTaskUpdated)
	})
}

// EditTask перезаписывает заголовок и описание. Заголовок намеренно не проверяется.
func (uc *TaskUseCase) EditTask(ctx context.Context, sessionID, taskID, title, description string) error {
	return uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadSession(ctx, uc.sessionRepo, sessionID); err != nil {
			return err
		}

		err := uc.modifyTask(ctx, sessionID, taskID, func(task *entity.Task) {
			task.Title = title
			task.Description = description
		})
		if err != nil {
			return err
		}

		return uc.notifier.Success(ctx, sessionID, i18n.KeyTaskUpdated)
	})
}

// DeleteTask удаляет задачу без возможности восстановления. Неизвестная задача - no-op.
func (uc *TaskUseCase) DeleteTask(ctx context.Context, sessionID, taskID string) error {
	return uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadSession(ctx, uc.sessionRepo, sessionID); err != nil {
			return err
		}

		if err := uc.taskRepo.Delete(ctx, sessionID, taskID); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		return uc.notifier.Success(ctx, sessionID, i18n.KeyTaskDeleted)
	})
}

// Board возвращает задачи сессии, разложенные по колонкам
func (uc *TaskUseCase) Board(ctx context.Context, sessionID string) (*entity.Board, error) {
	if _, err := loadSession(ctx, uc.sessionRepo, sessionID); err != nil {
		return nil, err
	}

	tasks, err := uc.taskRepo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	return entity.NewBoard(tasks), nil
}

// modifyTask применяет изменение к задаче, если она существует
func (uc *TaskUseCase) modifyTask(ctx context.Context, sessionID, taskID string, apply func(task *entity.Task)) error {
	task, err := uc.taskRepo.GetByID(ctx, sessionID, taskID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get task: %w", err)
	}

	apply(task)

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}
