package memory

import (
	"context"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
)

// TaskRepository реализует repository.TaskRepository в памяти
type TaskRepository struct {
	storage *Storage
}

// NewTaskRepository создает новый репозиторий задач
func NewTaskRepository(storage *Storage) *TaskRepository {
	return &TaskRepository{storage: storage}
}

// Create добавляет задачу в конец списка сессии
func (r *TaskRepository) Create(_ context.Context, task *entity.Task) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	r.storage.tasks[task.SessionID] = append(r.storage.tasks[task.SessionID], cloneTask(task))
	return nil
}

// Update заменяет задачу, сохраняя её позицию
func (r *TaskRepository) Update(_ context.Context, task *entity.Task) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	tasks := r.storage.tasks[task.SessionID]
	for i, t := range tasks {
		if t.TaskID == task.TaskID {
			tasks[i] = cloneTask(task)
			return nil
		}
	}

	return domainErrors.ErrNotFound
}

// Delete удаляет задачу
func (r *TaskRepository) Delete(_ context.Context, sessionID, taskID string) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	tasks := r.storage.tasks[sessionID]
	for i, t := range tasks {
		if t.TaskID == taskID {
			r.storage.tasks[sessionID] = append(tasks[:i:i], tasks[i+1:]...)
			return nil
		}
	}

	return domainErrors.ErrNotFound
}

// GetByID возвращает задачу сессии по идентификатору
func (r *TaskRepository) GetByID(_ context.Context, sessionID, taskID string) (*entity.Task, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	for _, t := range r.storage.tasks[sessionID] {
		if t.TaskID == taskID {
			return cloneTask(t), nil
		}
	}

	return nil, domainErrors.ErrNotFound
}

// GetBySession возвращает задачи сессии в порядке добавления
func (r *TaskRepository) GetBySession(_ context.Context, sessionID string) ([]*entity.Task, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	tasks := r.storage.tasks[sessionID]
	result := make([]*entity.Task, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, cloneTask(t))
	}

	return result, nil
}
