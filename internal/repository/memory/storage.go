// Package memory implements the repositories on top of process memory.
// Nothing survives a restart.
package memory

import (
	"sync"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// Storage общее хранилище всех репозиториев
type Storage struct {
	mu sync.RWMutex

	sessions      map[string]*entity.Session
	tasks         map[string][]*entity.Task
	messages      map[string][]*entity.ChatMessage
	files         map[string][]*entity.SharedFile
	notifications map[string]*entity.Notification

	// txMu сериализует транзакции; отдельный от mu, чтобы репозитории внутри fn не блокировались
	txMu sync.Mutex
}

// NewStorage создает пустое хранилище
func NewStorage() *Storage {
	return &Storage{
		sessions:      make(map[string]*entity.Session),
		tasks:         make(map[string][]*entity.Task),
		messages:      make(map[string][]*entity.ChatMessage),
		files:         make(map[string][]*entity.SharedFile),
		notifications: make(map[string]*entity.Notification),
	}
}
