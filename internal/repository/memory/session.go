package memory

import (
	"context"
	"fmt"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
)

// SessionRepository реализует repository.SessionRepository в памяти
type SessionRepository struct {
	storage *Storage
}

// NewSessionRepository создает новый репозиторий сессий
func NewSessionRepository(storage *Storage) *SessionRepository {
	return &SessionRepository{storage: storage}
}

// Create сохраняет новую сессию
func (r *SessionRepository) Create(_ context.Context, session *entity.Session) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	if _, ok := r.storage.sessions[session.SessionID]; ok {
		return fmt.Errorf("failed to create session: duplicate id %s", session.SessionID)
	}

	r.storage.sessions[session.SessionID] = cloneSession(session)
	return nil
}

// Update заменяет сохраненную сессию
func (r *SessionRepository) Update(_ context.Context, session *entity.Session) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	if _, ok := r.storage.sessions[session.SessionID]; !ok {
		return domainErrors.ErrNotFound
	}

	r.storage.sessions[session.SessionID] = cloneSession(session)
	return nil
}

// GetByID возвращает сессию по идентификатору
func (r *SessionRepository) GetByID(_ context.Context, sessionID string) (*entity.Session, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	session, ok := r.storage.sessions[sessionID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	return cloneSession(session), nil
}
