package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
	"github.com/StepanK17/novagen-service/internal/repository"
)

// loadSession возвращает сессию или доменную ошибку NOT_FOUND
func loadSession(ctx context.Context, repo repository.SessionRepository, sessionID string) (*entity.Session, error) {
	session, err := repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NewDomainError(
				"NOT_FOUND",
				"session not found",
				domainErrors.ErrNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}
