package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	"github.com/StepanK17/novagen-service/internal/repository/memory"
)

// sequenceIDs выдает предсказуемые идентификаторы
type sequenceIDs struct {
	prefix string
	n      int
}

func (s *sequenceIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

// fixedRandom всегда возвращает одно и то же значение
type fixedRandom int

func (f fixedRandom) Intn(n int) int {
	return int(f) % n
}

// manualClock часы, которые двигаются только вручную
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type testEnv struct {
	storage       *memory.Storage
	clock         *manualClock
	notifications *NotificationUseCase
	sessions      *SessionUseCase
	tasks         *TaskUseCase
	chat          *ChatUseCase
	files         *FileUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	storage := memory.NewStorage()
	tx := memory.NewTransactionManager(storage)
	sessionRepo := memory.NewSessionRepository(storage)
	clock := &manualClock{now: time.Date(2025, 7, 14, 12, 0, 0, 0, time.UTC)}
	ids := &sequenceIDs{prefix: "id"}

	notifications := NewNotificationUseCase(memory.NewNotificationRepository(storage), 5*time.Second, clock.Now)

	return &testEnv{
		storage:       storage,
		clock:         clock,
		notifications: notifications,
		sessions: NewSessionUseCase(
			sessionRepo, memory.NewFileRepository(storage), tx, notifications,
			ids, fixedRandom(0), clock.Now, zap.NewNop().Sugar(),
		),
		tasks: NewTaskUseCase(memory.NewTaskRepository(storage), sessionRepo, tx, notifications, ids, clock.Now),
		chat:  NewChatUseCase(memory.NewMessageRepository(storage), sessionRepo, tx, notifications, ids, clock.Now),
		files: NewFileUseCase(memory.NewFileRepository(storage), sessionRepo, tx, notifications, clock.Now),
	}
}

// newSession создает анонимную сессию без анкеты
func (e *testEnv) newSession(t *testing.T) *entity.Session {
	t.Helper()

	session, err := e.sessions.CreateSession(context.Background())
	require.NoError(t, err)
	return session
}

// onboardedSession создает сессию и отправляет анкету от имени name
func (e *testEnv) onboardedSession(t *testing.T, name string) *entity.Session {
	t.Helper()

	session := e.newSession(t)
	onboarded, err := e.sessions.Onboard(context.Background(), session.SessionID, entity.OnboardingForm{
		Name:       name,
		Company:    "Acme Corp",
		Role:       "Software Engineer",
		AgeGroup:   entity.AgeGroupUnder25,
		TechTrends: []string{"AI"},
	})
	require.NoError(t, err)
	return onboarded
}

func (e *testEnv) currentNotification(t *testing.T, sessionID string) *entity.Notification {
	t.Helper()

	n, err := e.notifications.Current(context.Background(), sessionID)
	require.NoError(t, err)
	return n
}
