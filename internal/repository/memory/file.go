package memory

import (
	"context"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// FileRepository реализует repository.FileRepository в памяти
type FileRepository struct {
	storage *Storage
}

// NewFileRepository создает новый репозиторий файлов
func NewFileRepository(storage *Storage) *FileRepository {
	return &FileRepository{storage: storage}
}

// Append добавляет файл в конец списка
func (r *FileRepository) Append(_ context.Context, file *entity.SharedFile) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	r.storage.files[file.SessionID] = append(r.storage.files[file.SessionID], cloneFile(file))
	return nil
}

// GetBySession возвращает файлы сессии
func (r *FileRepository) GetBySession(_ context.Context, sessionID string) ([]*entity.SharedFile, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	files := r.storage.files[sessionID]
	result := make([]*entity.SharedFile, 0, len(files))
	for _, f := range files {
		result = append(result, cloneFile(f))
	}

	return result, nil
}
