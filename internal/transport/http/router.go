package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/StepanK17/novagen-service/internal/transport/http/handler"
	customMiddleware "github.com/StepanK17/novagen-service/internal/transport/http/middleware"
)

// RouterConfig содержит конфигурацию для роутера
type RouterConfig struct {
	SessionHandler      *handler.SessionHandler
	TaskHandler         *handler.TaskHandler
	ChatHandler         *handler.ChatHandler
	FileHandler         *handler.FileHandler
	NotificationHandler *handler.NotificationHandler
	CatalogHandler      *handler.CatalogHandler
	HealthHandler       *handler.HealthHandler
	StatisticsHandler   *handler.StatisticsHandler
	AllowedOrigins      []string
	DefaultLanguage     language.Tag
	Logger              *zap.SugaredLogger
}

// NewRouter создает и настраивает роутер
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(customMiddleware.CORS(cfg.AllowedOrigins))
	r.Use(customMiddleware.Language(cfg.DefaultLanguage))

	// Health check
	r.Get("/health", cfg.HealthHandler.Check)

	// Statistics
	r.Get("/statistics", cfg.StatisticsHandler.GetStatistics)

	// Catalog
	r.Get("/catalog/mentors", cfg.CatalogHandler.GetMentors)
	r.Get("/catalog/trends", cfg.CatalogHandler.GetTrends)
	r.Get("/catalog/projects", cfg.CatalogHandler.GetProjects)

	// Sessions
	r.Post("/session/create", cfg.SessionHandler.CreateSession)
	r.Post("/session/onboard", cfg.SessionHandler.Onboard)
	r.Get("/session/get", cfg.SessionHandler.GetSession)
	r.Get("/team/get", cfg.SessionHandler.GetTeam)

	// Tasks
	r.Post("/task/add", cfg.TaskHandler.AddTask)
	r.Post("/task/updateStatus", cfg.TaskHandler.UpdateTaskStatus)
	r.Post("/task/edit", cfg.TaskHandler.EditTask)
	r.Post("/task/delete", cfg.TaskHandler.DeleteTask)
	r.Get("/task/board", cfg.TaskHandler.GetBoard)

	// Chat
	r.Post("/chat/post", cfg.ChatHandler.PostMessage)
	r.Get("/chat/list", cfg.ChatHandler.ListMessages)

	// Files
	r.Post("/file/add", cfg.FileHandler.AddFile)
	r.Get("/file/list", cfg.FileHandler.ListFiles)

	// Notifications
	r.Get("/notification/get", cfg.NotificationHandler.GetNotification)

	return r
}
