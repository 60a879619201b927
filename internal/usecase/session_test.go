package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/StepanK17/novagen-service/internal/domain/catalog"
	"github.com/StepanK17/novagen-service/internal/domain/entity"
	domainErrors "github.com/StepanK17/novagen-service/internal/domain/errors"
	"github.com/StepanK17/novagen-service/internal/i18n"
	"github.com/StepanK17/novagen-service/internal/repository"
	"github.com/StepanK17/novagen-service/internal/repository/memory"
)

func TestCreateSessionSeedsFiles(t *testing.T) {
	env := newTestEnv(t)
	session := env.newSession(t)

	assert.NotEmpty(t, session.SessionID)
	assert.NotEmpty(t, session.LocalUserID)
	assert.NotEqual(t, session.SessionID, session.LocalUserID)
	assert.False(t, session.IsOnboarded())

	files, err := env.files.Files(context.Background(), session.SessionID)
	require.NoError(t, err)
	got := make([]string, 0, len(files))
	for _, f := range files {
		got = append(got, f.Name)
	}
	assert.Equal(t, catalog.DefaultSharedFiles(), got)
}

func TestOnboardAssignsMentorAndTeam(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	session := env.newSession(t)

	onboarded, err := env.sessions.Onboard(ctx, session.SessionID, entity.OnboardingForm{
		Name:                      "  Dana ",
		Company:                   "Acme Corp",
		Role:                      "Software Engineer",
		AgeGroup:                  entity.AgeGroupUnder25,
		TechTrends:                []string{"UX", " "},
		ImplementationPreferences: "AI-powered analytics dashboard",
		EvaluatedProjects:         []entity.ProjectEvaluation{{ProjectID: "proj_ai_1", Feasibility: "high"}},
	})
	require.NoError(t, err)
	require.True(t, onboarded.IsOnboarded())

	assert.Equal(t, session.LocalUserID, onboarded.User.UserID)
	assert.Equal(t, "Dana", onboarded.User.Name)
	assert.Equal(t, []string{"UX"}, onboarded.User.InterestTags)
	assert.Equal(t, "AI-powered analytics dashboard", onboarded.User.ImplementationPreferences)
	assert.Empty(t, onboarded.User.EvaluatedProjects)

	assert.Equal(t, "Steve Jobs", onboarded.Team.Mentor.Name)
	assert.NotEmpty(t, onboarded.Team.TeamID)
	require.Len(t, onboarded.Team.Members, 5)
	user, ok := onboarded.Team.User()
	require.True(t, ok)
	assert.Equal(t, "Dana", user.Name)
	assert.Equal(t, session.LocalUserID, user.UserID)

	stored, err := env.sessions.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, onboarded, stored)

	n := env.currentNotification(t, session.SessionID)
	require.NotNil(t, n)
	assert.Equal(t, entity.NotificationSuccess, n.Type)
	assert.Equal(t, i18n.KeySessionStarted, n.Key)
}

func TestOnboardKeepsEvaluationsForSeniorGroups(t *testing.T) {
	env := newTestEnv(t)
	session := env.newSession(t)

	onboarded, err := env.sessions.Onboard(context.Background(), session.SessionID, entity.OnboardingForm{
		Name:                      "Carmen",
		Company:                   "FutureTech",
		Role:                      "Architect",
		AgeGroup:                  entity.AgeGroup40To55,
		TechTrends:                []string{"Quantum Computing"},
		ImplementationPreferences: "ignored",
		EvaluatedProjects: []entity.ProjectEvaluation{
			{ProjectID: "proj_quantum_2", Feasibility: "medium", Viability: "long term", Challenge: "talent"},
			{ProjectID: "proj_ai_1", Feasibility: "not offered"},
			{ProjectID: "unknown"},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, onboarded.User.ImplementationPreferences)
	require.Len(t, onboarded.User.EvaluatedProjects, 1)
	assert.Equal(t, entity.ProjectEvaluation{
		ProjectID:   "proj_quantum_2",
		Name:        "Quantum Machine Learning Algorithm Development",
		Trend:       "Quantum Computing",
		Feasibility: "medium",
		Viability:   "long term",
		Challenge:   "talent",
	}, onboarded.User.EvaluatedProjects[0])

	// "Quantum Computing" не совпадает ни с одним фокусом: ментор выбран генератором
	assert.Equal(t, catalog.Mentors()[0].Name, onboarded.Team.Mentor.Name)
}

func TestOnboardRejectsIncompleteForm(t *testing.T) {
	valid := entity.OnboardingForm{
		Name:       "Dana",
		Company:    "Acme",
		Role:       "Engineer",
		AgeGroup:   entity.AgeGroup25To40,
		TechTrends: []string{"AI"},
	}

	tests := []struct {
		name   string
		mutate func(f *entity.OnboardingForm)
	}{
		{name: "no name", mutate: func(f *entity.OnboardingForm) { f.Name = " " }},
		{name: "no company", mutate: func(f *entity.OnboardingForm) { f.Company = "" }},
		{name: "no role", mutate: func(f *entity.OnboardingForm) { f.Role = "" }},
		{name: "no age group", mutate: func(f *entity.OnboardingForm) { f.AgeGroup = "" }},
		{name: "unknown age group", mutate: func(f *entity.OnboardingForm) { f.AgeGroup = "70+" }},
		{name: "no trends", mutate: func(f *entity.OnboardingForm) { f.TechTrends = nil }},
		{name: "blank trends", mutate: func(f *entity.OnboardingForm) { f.TechTrends = []string{"", " "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			session := env.newSession(t)

			form := valid
			tt.mutate(&form)

			_, err := env.sessions.Onboard(context.Background(), session.SessionID, form)
			assert.ErrorIs(t, err, domainErrors.ErrMissingFields)

			stored, err := env.sessions.GetSession(context.Background(), session.SessionID)
			require.NoError(t, err)
			assert.False(t, stored.IsOnboarded())

			n := env.currentNotification(t, session.SessionID)
			require.NotNil(t, n)
			assert.Equal(t, i18n.KeyMissingFields, n.Key)
		})
	}
}

func TestOnboardOnlyOnce(t *testing.T) {
	env := newTestEnv(t)
	session := env.onboardedSession(t, "Dana")

	_, err := env.sessions.Onboard(context.Background(), session.SessionID, entity.OnboardingForm{
		Name:       "Someone Else",
		Company:    "Acme",
		Role:       "Engineer",
		AgeGroup:   entity.AgeGroupUnder25,
		TechTrends: []string{"design"},
	})
	assert.ErrorIs(t, err, domainErrors.ErrAlreadyOnboarded)

	team, err := env.sessions.Team(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.Team, team)
}

func TestTeamBeforeOnboardingIsDefault(t *testing.T) {
	env := newTestEnv(t)
	session := env.newSession(t)

	team, err := env.sessions.Team(context.Background(), session.SessionID)
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultTeamID, team.TeamID)
	assert.Equal(t, "Alan Turing", team.Mentor.Name)
	assert.Equal(t, catalog.DefaultTeamMembers(), team.Members)

	_, err = env.sessions.Team(context.Background(), "missing")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

type sessionRepoMock struct{ mock.Mock }

var _ repository.SessionRepository = (*sessionRepoMock)(nil)

func (m *sessionRepoMock) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *sessionRepoMock) Update(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *sessionRepoMock) GetByID(ctx context.Context, sessionID string) (*entity.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func TestOnboardPropagatesRepositoryFailure(t *testing.T) {
	storage := memory.NewStorage()
	repo := &sessionRepoMock{}
	boom := errors.New("storage unavailable")

	repo.On("GetByID", mock.Anything, "s1").Return(&entity.Session{SessionID: "s1", LocalUserID: "u1"}, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(boom).Once()

	notifications := NewNotificationUseCase(memory.NewNotificationRepository(storage), 0, nil)
	uc := NewSessionUseCase(
		repo, memory.NewFileRepository(storage), memory.NewTransactionManager(storage), notifications,
		&sequenceIDs{prefix: "id"}, fixedRandom(0), nil, zap.NewNop().Sugar(),
	)

	_, err := uc.Onboard(context.Background(), "s1", entity.OnboardingForm{
		Name:       "Dana",
		Company:    "Acme",
		Role:       "Engineer",
		AgeGroup:   entity.AgeGroupUnder25,
		TechTrends: []string{"AI"},
	})
	require.ErrorIs(t, err, boom)

	var domainErr *domainErrors.DomainError
	assert.False(t, errors.As(err, &domainErr))

	// при ошибке хранилища уведомление об успехе не публикуется
	n, err := notifications.Current(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, n)

	repo.AssertExpectations(t)
}

func TestCreateSessionPropagatesRepositoryFailure(t *testing.T) {
	storage := memory.NewStorage()
	repo := &sessionRepoMock{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(errors.New("full")).Once()

	uc := NewSessionUseCase(
		repo, memory.NewFileRepository(storage), memory.NewTransactionManager(storage),
		NewNotificationUseCase(memory.NewNotificationRepository(storage), 0, nil),
		&sequenceIDs{prefix: "id"}, fixedRandom(0), nil, zap.NewNop().Sugar(),
	)

	session, err := uc.CreateSession(context.Background())
	require.Error(t, err)
	assert.Nil(t, session)
	repo.AssertExpectations(t)
}
