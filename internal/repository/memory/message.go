package memory

import (
	"context"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// MessageRepository реализует repository.MessageRepository в памяти
type MessageRepository struct {
	storage *Storage
}

// NewMessageRepository создает новый репозиторий сообщений
func NewMessageRepository(storage *Storage) *MessageRepository {
	return &MessageRepository{storage: storage}
}

// Append добавляет сообщение в конец журнала
func (r *MessageRepository) Append(_ context.Context, msg *entity.ChatMessage) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	r.storage.messages[msg.SessionID] = append(r.storage.messages[msg.SessionID], cloneMessage(msg))
	return nil
}

// GetBySession возвращает журнал сессии в порядке отправки
func (r *MessageRepository) GetBySession(_ context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	messages := r.storage.messages[sessionID]
	result := make([]*entity.ChatMessage, 0, len(messages))
	for _, m := range messages {
		result = append(result, cloneMessage(m))
	}

	return result, nil
}
