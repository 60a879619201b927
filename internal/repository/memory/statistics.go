package memory

import (
	"context"

	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// StatisticsRepository считает статистику по содержимому хранилища
type StatisticsRepository struct {
	storage *Storage
}

// NewStatisticsRepository создает новый репозиторий статистики
func NewStatisticsRepository(storage *Storage) *StatisticsRepository {
	return &StatisticsRepository{storage: storage}
}

// GetStatistics возвращает общую статистику
func (r *StatisticsRepository) GetStatistics(_ context.Context) (*entity.Statistics, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	stats := &entity.Statistics{
		TotalSessions: len(r.storage.sessions),
		TasksByStatus: make(map[entity.TaskStatus]int, 3),
		TeamsByMentor: make(map[string]int),
	}

	for _, status := range entity.TaskStatuses() {
		stats.TasksByStatus[status] = 0
	}

	for _, s := range r.storage.sessions {
		if s.IsOnboarded() {
			stats.OnboardedSessions++
			stats.TeamsByMentor[s.Team.Mentor.Name]++
		}
	}

	for _, tasks := range r.storage.tasks {
		for _, t := range tasks {
			stats.TotalTasks++
			stats.TasksByStatus[t.Status]++
		}
	}

	for _, messages := range r.storage.messages {
		stats.TotalMessages += len(messages)
	}

	for _, files := range r.storage.files {
		stats.TotalFiles += len(files)
	}

	return stats, nil
}
