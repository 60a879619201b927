package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
	"github.com/StepanK17/novagen-service/internal/i18n"
	"github.com/StepanK17/novagen-service/internal/repository"
)

// FileUseCase реализует список файлов команды
type FileUseCase struct {
	fileRepo    repository.FileRepository
	sessionRepo repository.SessionRepository
	txManager   repository.TransactionManager
	notifier    *NotificationUseCase
	now         Clock
}

// NewFileUseCase создает новый usecase для файлов
func NewFileUseCase(
	fileRepo repository.FileRepository,
	sessionRepo repository.SessionRepository,
	txManager repository.TransactionManager,
	notifier *NotificationUseCase,
	now Clock,
) *FileUseCase {
	if now == nil {
		now = time.Now
	}
	return &FileUseCase{
		fileRepo:    fileRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		notifier:    notifier,
		now:         now,
	}
}

// AddFile добавляет имя файла в список
func (uc *FileUseCase) AddFile(ctx context.Context, sessionID, name string) (*entity.SharedFile, error) {
	var result *entity.SharedFile

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := loadSession(ctx, uc.sessionRepo, sessionID); err != nil {
			return err
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return uc.notifier.Failure(ctx, sessionID, i18n.KeyEmptyFileName, domainErrors.NewDomainError(
				"EMPTY_FILE_NAME",
				"file name cannot be empty",
				domainErrors.ErrEmptyFileName,
			))
		}

		file := &entity.SharedFile{SessionID: sessionID, Name: name, AddedAt: uc.now()}
		if err := uc.fileRepo.Append(ctx, file); err != nil {
			return fmt.Errorf("failed to add file: %w", err)
		}

		if err := uc.notifier.Success(ctx, sessionID, i18n.KeyFileAdded); err != nil {
			return err
		}

		result = file
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// Files возвращает список файлов сессии
func (uc *FileUseCase) Files(ctx context.Context, sessionID string) ([]*entity.SharedFile, error) {
	if _, err := loadSession(ctx, uc.sessionRepo, sessionID); err != nil {
		return nil, err
	}

	files, err := uc.fileRepo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	return files, nil
}
