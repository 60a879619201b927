package dto

import (
	"time"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит детали ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MentorDTO представляет ментора
type MentorDTO struct {
	Name        string   `json:"name"`
	Era         string   `json:"era"`
	FocusTags   []string `json:"focus_tags"`
	Description string   `json:"description"`
}

// TeamMemberDTO представляет участника команды
type TeamMemberDTO struct {
	Name   string `json:"name"`
	UserID string `json:"user_id,omitempty"`
	IsUser bool   `json:"is_user"`
}

// TeamDTO представляет команду
type TeamDTO struct {
	TeamID  string          `json:"team_id"`
	Mentor  MentorDTO       `json:"mentor"`
	Members []TeamMemberDTO `json:"members"`
}

// ProjectEvaluationDTO ответы по одному проекту
type ProjectEvaluationDTO struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name,omitempty"`
	Trend       string `json:"trend,omitempty"`
	Feasibility string `json:"feasibility"`
	Viability   string `json:"viability"`
	Challenge   string `json:"challenge"`
}

// UserDTO представляет пользователя
type UserDTO struct {
	UserID                    string                 `json:"user_id"`
	Name                      string                 `json:"name"`
	Company                   string                 `json:"company"`
	Role                      string                 `json:"role"`
	AgeGroup                  string                 `json:"age_group"`
	TechTrends                []string               `json:"tech_trends"`
	ImplementationPreferences string                 `json:"implementation_preferences,omitempty"`
	EvaluatedProjects         []ProjectEvaluationDTO `json:"evaluated_projects,omitempty"`
}

// SessionDTO представляет сессию
type SessionDTO struct {
	SessionID   string   `json:"session_id"`
	LocalUserID string   `json:"local_user_id"`
	Onboarded   bool     `json:"onboarded"`
	User        *UserDTO `json:"user,omitempty"`
	Team        *TeamDTO `json:"team,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// SessionResponse ответ с сессией
type SessionResponse struct {
	Session SessionDTO `json:"session"`
}

// OnboardRequest анкета пользователя
type OnboardRequest struct {
	SessionID                 string                 `json:"session_id"`
	Name                      string                 `json:"name"`
	Company                   string                 `json:"company"`
	Role                      string                 `json:"role"`
	AgeGroup                  string                 `json:"age_group"`
	TechTrends                []string               `json:"tech_trends"`
	ImplementationPreferences string                 `json:"implementation_preferences"`
	EvaluatedProjects         []ProjectEvaluationDTO `json:"evaluated_projects"`
}

// TeamResponse ответ с командой
type TeamResponse struct {
	Team TeamDTO `json:"team"`
}

// TaskDTO представляет задачу
type TaskDTO struct {
	TaskID      string `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedBy   string `json:"created_by"`
	AssignedTo  string `json:"assigned_to"`
	CreatedAt   string `json:"created_at"`
}

// AddTaskRequest запрос на создание задачи
type AddTaskRequest struct {
	SessionID   string `json:"session_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskResponse ответ с задачей
type TaskResponse struct {
	Task TaskDTO `json:"task"`
}

// UpdateTaskStatusRequest запрос на смену статуса
type UpdateTaskStatusRequest struct {
	SessionID string `json:"session_id"`
	TaskID    string `json:"task_id"`
	Status    string `json:"status"`
}

// EditTaskRequest запрос на редактирование задачи
type EditTaskRequest struct {
	SessionID   string `json:"session_id"`
	TaskID      string `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DeleteTaskRequest запрос на удаление задачи
type DeleteTaskRequest struct {
	SessionID string `json:"session_id"`
	TaskID    string `json:"task_id"`
}

// BoardResponse задачи по колонкам
type BoardResponse struct {
	Todo       []TaskDTO `json:"todo"`
	InProgress []TaskDTO `json:"in_progress"`
	Done       []TaskDTO `json:"done"`
}

// ChatMessageDTO представляет сообщение чата
type ChatMessageDTO struct {
	MessageID  string `json:"message_id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"`
}

// PostMessageRequest запрос на отправку сообщения
type PostMessageRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// PostMessageResponse ответ на отправку сообщения
type PostMessageResponse struct {
	Message ChatMessageDTO `json:"message"`
}

// ChatLogResponse журнал чата
type ChatLogResponse struct {
	SessionID string           `json:"session_id"`
	Messages  []ChatMessageDTO `json:"messages"`
}

// FileDTO представляет файл
type FileDTO struct {
	Name    string `json:"name"`
	AddedAt string `json:"added_at"`
}

// AddFileRequest запрос на добавление файла
type AddFileRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
}

// AddFileResponse ответ на добавление файла
type AddFileResponse struct {
	File FileDTO `json:"file"`
}

// FilesResponse список файлов
type FilesResponse struct {
	SessionID string    `json:"session_id"`
	Files     []FileDTO `json:"files"`
}

// NotificationDTO представляет уведомление
type NotificationDTO struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	ExpiresAt string `json:"expires_at"`
}

// NotificationResponse ответ с текущим уведомлением
type NotificationResponse struct {
	Notification NotificationDTO `json:"notification"`
}

// MentorsResponse ростер менторов
type MentorsResponse struct {
	Mentors []MentorDTO `json:"mentors"`
}

// TrendsResponse варианты анкеты
type TrendsResponse struct {
	TechTrends []string `json:"tech_trends"`
	AgeGroups  []string `json:"age_groups"`
}

// ProjectDTO представляет проект для оценки
type ProjectDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Trend       string `json:"trend"`
	Description string `json:"description"`
}

// ProjectsResponse проекты для оценки
type ProjectsResponse struct {
	Projects []ProjectDTO `json:"projects"`
}

// Маппинг функции

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// ToMentorDTO преобразует entity в DTO
func ToMentorDTO(m entity.Mentor) MentorDTO {
	return MentorDTO{
		Name:        m.Name,
		Era:         m.Era,
		FocusTags:   append([]string{}, m.FocusTags...),
		Description: m.Description,
	}
}

// ToMentorDTOs преобразует список менторов
func ToMentorDTOs(mentors []entity.Mentor) []MentorDTO {
	dtos := make([]MentorDTO, 0, len(mentors))
	for _, m := range mentors {
		dtos = append(dtos, ToMentorDTO(m))
	}
	return dtos
}

// ToTeamDTO преобразует entity в DTO
func ToTeamDTO(team *entity.Team) TeamDTO {
	members := make([]TeamMemberDTO, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, TeamMemberDTO{
			Name:   m.Name,
			UserID: m.UserID,
			IsUser: m.IsUser,
		})
	}

	return TeamDTO{
		TeamID:  team.TeamID,
		Mentor:  ToMentorDTO(team.Mentor),
		Members: members,
	}
}

// ToSessionDTO преобразует entity в DTO
func ToSessionDTO(s *entity.Session) SessionDTO {
	dto := SessionDTO{
		SessionID:   s.SessionID,
		LocalUserID: s.LocalUserID,
		Onboarded:   s.IsOnboarded(),
		CreatedAt:   formatTime(s.CreatedAt),
	}

	if s.User != nil {
		evaluations := make([]ProjectEvaluationDTO, 0, len(s.User.EvaluatedProjects))
		for _, e := range s.User.EvaluatedProjects {
			evaluations = append(evaluations, ProjectEvaluationDTO{
				ProjectID:   e.ProjectID,
				Name:        e.Name,
				Trend:       e.Trend,
				Feasibility: e.Feasibility,
				Viability:   e.Viability,
				Challenge:   e.Challenge,
			})
		}
		dto.User = &UserDTO{
			UserID:                    s.User.UserID,
			Name:                      s.User.Name,
			Company:                   s.User.Company,
			Role:                      s.User.Role,
			AgeGroup:                  s.User.AgeGroup,
			TechTrends:                append([]string{}, s.User.InterestTags...),
			ImplementationPreferences: s.User.ImplementationPreferences,
			EvaluatedProjects:         evaluations,
		}
	}

	if s.Team != nil {
		team := ToTeamDTO(s.Team)
		dto.Team = &team
	}

	return dto
}

// ToOnboardingForm преобразует запрос в форму анкеты
func ToOnboardingForm(req *OnboardRequest) entity.OnboardingForm {
	evaluations := make([]entity.ProjectEvaluation, 0, len(req.EvaluatedProjects))
	for _, e := range req.EvaluatedProjects {
		evaluations = append(evaluations, entity.ProjectEvaluation{
			ProjectID:   e.ProjectID,
			Feasibility: e.Feasibility,
			Viability:   e.Viability,
			Challenge:   e.Challenge,
		})
	}

	return entity.OnboardingForm{
		Name:                      req.Name,
		Company:                   req.Company,
		Role:                      req.Role,
		AgeGroup:                  req.AgeGroup,
		TechTrends:                req.TechTrends,
		ImplementationPreferences: req.ImplementationPreferences,
		EvaluatedProjects:         evaluations,
	}
}

// ToTaskDTO преобразует entity в DTO
func ToTaskDTO(t *entity.Task) TaskDTO {
	return TaskDTO{
		TaskID:      t.TaskID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedBy:   t.CreatedBy,
		AssignedTo:  t.AssignedTo,
		CreatedAt:   formatTime(t.CreatedAt),
	}
}

// ToTaskDTOs преобразует список задач
func ToTaskDTOs(tasks []*entity.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, ToTaskDTO(t))
	}
	return dtos
}

// ToBoardResponse преобразует доску в ответ
func ToBoardResponse(b *entity.Board) BoardResponse {
	return BoardResponse{
		Todo:       ToTaskDTOs(b.Todo),
		InProgress: ToTaskDTOs(b.InProgress),
		Done:       ToTaskDTOs(b.Done),
	}
}

// ToChatMessageDTO преобразует entity в DTO
func ToChatMessageDTO(m *entity.ChatMessage) ChatMessageDTO {
	return ChatMessageDTO{
		MessageID:  m.MessageID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Text:       m.Text,
		Timestamp:  formatTime(m.Timestamp),
	}
}

// ToChatMessageDTOs преобразует журнал сообщений
func ToChatMessageDTOs(messages []*entity.ChatMessage) []ChatMessageDTO {
	dtos := make([]ChatMessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, ToChatMessageDTO(m))
	}
	return dtos
}

// ToFileDTO преобразует entity в DTO
func ToFileDTO(f *entity.SharedFile) FileDTO {
	return FileDTO{Name: f.Name, AddedAt: formatTime(f.AddedAt)}
}

// ToFileDTOs преобразует список файлов
func ToFileDTOs(files []*entity.SharedFile) []FileDTO {
	dtos := make([]FileDTO, 0, len(files))
	for _, f := range files {
		dtos = append(dtos, ToFileDTO(f))
	}
	return dtos
}

// ToProjectDTOs преобразует проекты для оценки
func ToProjectDTOs(projects []entity.EvaluationProject) []ProjectDTO {
	dtos := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		dtos = append(dtos, ProjectDTO{
			ID:          p.ID,
			Name:        p.Name,
			Trend:       p.Trend,
			Description: p.Description,
		})
	}
	return dtos
}
