// Package identity generates process-local unique identifiers for
// sessions, users, teams, tasks and chat messages.
package identity

import "github.com/google/uuid"

// Generator выдает новые уникальные идентификаторы
type Generator interface {
	NewID() string
}

// UUIDGenerator реализует Generator на UUID v4
type UUIDGenerator struct{}

// NewUUIDGenerator создает генератор идентификаторов
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID возвращает новый UUID v4 в каноническом виде
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
