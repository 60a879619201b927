package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	"github.com/StepanK17/novagen-service/internal/i18n"
)

func TestNotificationExpiresAfterTTL(t *testing.T) {
	env := newTestEnv(t)
	session := env.newSession(t)

	_, err := env.tasks.AddTask(context.Background(), session.SessionID, "Ship it", "")
	require.NoError(t, err)

	n := env.currentNotification(t, session.SessionID)
	require.NotNil(t, n)
	assert.Equal(t, i18n.KeyTaskAdded, n.Key)
	assert.Equal(t, n.CreatedAt.Add(5*time.Second), n.ExpiresAt)

	env.clock.Advance(4999 * time.Millisecond)
	assert.NotNil(t, env.currentNotification(t, session.SessionID))

	env.clock.Advance(time.Millisecond)
	assert.Nil(t, env.currentNotification(t, session.SessionID))
}

func TestNotificationIsSuperseded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.newSession(t)

	_, err := env.tasks.AddTask(ctx, session.SessionID, "Ship it", "")
	require.NoError(t, err)

	env.clock.Advance(4 * time.Second)
	_, err = env.files.AddFile(ctx, session.SessionID, "")
	require.Error(t, err)

	// новое уведомление отсчитывает свой срок заново
	env.clock.Advance(3 * time.Second)
	n := env.currentNotification(t, session.SessionID)
	require.NotNil(t, n)
	assert.Equal(t, entity.NotificationError, n.Type)
	assert.Equal(t, i18n.KeyEmptyFileName, n.Key)
}

func TestNotificationDefaults(t *testing.T) {
	uc := NewNotificationUseCase(nil, 0, nil)

	assert.Equal(t, DefaultNotificationTTL, uc.ttl)
	assert.NotNil(t, uc.now)
}
