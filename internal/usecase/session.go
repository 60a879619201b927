package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/domain/catalog"
	"github.com/StepanK17/novagen-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
	"github.com/StepanK17/novagen-service/internal/i18n"
	"github.com/StepanK17/novagen-service/internal/identity"
	"github.com/StepanK17/novagen-service/internal/repository"
)

// SessionUseCase реализует создание сессии, анкету и назначение команды
type SessionUseCase struct {
	sessionRepo repository.SessionRepository
	fileRepo    repository.FileRepository
	txManager   repository.TransactionManager
	notifier    *NotificationUseCase
	ids         identity.Generator
	rnd         RandomSource
	now         Clock
	log         *zap.SugaredLogger
}

// NewSessionUseCase создает новый usecase для сессий
func NewSessionUseCase(
	sessionRepo repository.SessionRepository,
	fileRepo repository.FileRepository,
	txManager repository.TransactionManager,
	notifier *NotificationUseCase,
	ids identity.Generator,
	rnd RandomSource,
	now Clock,
	log *zap.SugaredLogger,
) *SessionUseCase {
	if now == nil {
		now = time.Now
	}
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		fileRepo:    fileRepo,
		txManager:   txManager,
		notifier:    notifier,
		ids:         ids,
		rnd:         rnd,
		now:         now,
		log:         log,
	}
}

// CreateSession открывает анонимную сессию с локальным идентификатором пользователя
// и стартовым набором файлов
func (uc *SessionUseCase) CreateSession(ctx context.Context) (*entity.Session, error) {
	var result *entity.Session

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		now := uc.now()
		session := &entity.Session{
			SessionID:   uc.ids.NewID(),
			LocalUserID: uc.ids.NewID(),
			CreatedAt:   now,
		}

		if err := uc.sessionRepo.Create(ctx, session); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		for _, name := range catalog.DefaultSharedFiles() {
			file := &entity.SharedFile{SessionID: session.SessionID, Name: name, AddedAt: now}
			if err := uc.fileRepo.Append(ctx, file); err != nil {
				return fmt.Errorf("failed to seed shared files: %w", err)
			}
		}

		result = session
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.log.Debugw("session created", "session_id", result.SessionID)
	return result, nil
}

// GetSession возвращает сессию по идентификатору
func (uc *SessionUseCase) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	return loadSession(ctx, uc.sessionRepo, sessionID)
}

// Onboard принимает анкету, назначает ментора и собирает команду.
// Команда создается один раз за сессию.
func (uc *SessionUseCase) Onboard(ctx context.Context, sessionID string, form entity.OnboardingForm) (*entity.Session, error) {
	var result *entity.Session

	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		session, err := loadSession(ctx, uc.sessionRepo, sessionID)
		if err != nil {
			return err
		}

		if session.IsOnboarded() {
			return uc.notifier.Failure(ctx, sessionID, i18n.KeyOnboarded, domainErrors.NewDomainError(
				"ALREADY_ONBOARDED",
				"session already has a team",
				domainErrors.ErrAlreadyOnboarded,
			))
		}

		form = normalizeForm(form)
		if !isComplete(form) {
			return uc.notifier.Failure(ctx, sessionID, i18n.KeyMissingFields, domainErrors.NewDomainError(
				"MISSING_FIELDS",
				"name, company, role, age_group and at least one tech trend are required",
				domainErrors.ErrMissingFields,
			))
		}

		mentor := AssignMentor(form.TechTrends, uc.rnd)
		members := BuildTeamRoster(form.Name, session.LocalUserID)

		user := &entity.User{
			UserID:       session.LocalUserID,
			Name:         form.Name,
			Company:      form.Company,
			Role:         form.Role,
			AgeGroup:     form.AgeGroup,
			InterestTags: form.TechTrends,
			CreatedAt:    uc.now(),
		}
		if entity.EvaluatesProjects(form.AgeGroup) {
			user.EvaluatedProjects = evaluationsFor(form.TechTrends, form.EvaluatedProjects)
		} else {
			user.ImplementationPreferences = form.ImplementationPreferences
		}

		session.User = user
		session.Team = &entity.Team{
			TeamID:  uc.ids.NewID(),
			Mentor:  mentor,
			Members: members,
		}

		if err := uc.sessionRepo.Update(ctx, session); err != nil {
			return fmt.Errorf("failed to update session: %w", err)
		}

		if err := uc.notifier.Success(ctx, sessionID, i18n.KeySessionStarted); err != nil {
			return err
		}

		result = session
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.log.Infow("team assigned",
		"session_id", result.SessionID,
		"team_id", result.Team.TeamID,
		"mentor", result.Team.Mentor.Name,
		"members", len(result.Team.Members),
	)
	return result, nil
}

// Team возвращает команду сессии; до анкеты показывается команда по умолчанию
func (uc *SessionUseCase) Team(ctx context.Context, sessionID string) (*entity.Team, error) {
	session, err := loadSession(ctx, uc.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsOnboarded() {
		return session.Team, nil
	}

	return &entity.Team{
		TeamID:  entity.DefaultTeamID,
		Mentor:  AssignMentor(catalog.DefaultTeamTags(), uc.rnd),
		Members: catalog.DefaultTeamMembers(),
	}, nil
}

func normalizeForm(form entity.OnboardingForm) entity.OnboardingForm {
	form.Name = strings.TrimSpace(form.Name)
	form.Company = strings.TrimSpace(form.Company)
	form.Role = strings.TrimSpace(form.Role)
	form.AgeGroup = strings.TrimSpace(form.AgeGroup)

	trends := make([]string, 0, len(form.TechTrends))
	for _, trend := range form.TechTrends {
		if trend = strings.TrimSpace(trend); trend != "" {
			trends = append(trends, trend)
		}
	}
	form.TechTrends = trends

	return form
}

func isComplete(form entity.OnboardingForm) bool {
	return form.Name != "" &&
		form.Company != "" &&
		form.Role != "" &&
		entity.IsValidAgeGroup(form.AgeGroup) &&
		len(form.TechTrends) > 0
}

// evaluationsFor оставляет ответы только по проектам выбранных направлений
func evaluationsFor(trends []string, submitted []entity.ProjectEvaluation) []entity.ProjectEvaluation {
	byID := make(map[string]entity.ProjectEvaluation, len(submitted))
	for _, e := range submitted {
		byID[e.ProjectID] = e
	}

	offered := ProjectsToEvaluate(entity.AgeGroup25To40, trends)
	result := make([]entity.ProjectEvaluation, 0, len(offered))
	for _, p := range offered {
		e, ok := byID[p.ID]
		if !ok {
			continue
		}
		e.Name = p.Name
		e.Trend = p.Trend
		result = append(result, e)
	}

	return result
}
