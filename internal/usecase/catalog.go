package usecase

import (
	"github.com/StepanK17/novagen-service/internal/domain/catalog"
	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// CatalogUseCase отдает справочные данные анкеты и ростер менторов
type CatalogUseCase struct{}

// NewCatalogUseCase создает новый usecase для справочников
func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

// Mentors возвращает ростер менторов
func (uc *CatalogUseCase) Mentors() []entity.Mentor {
	return catalog.Mentors()
}

// TechTrends возвращает варианты направлений
func (uc *CatalogUseCase) TechTrends() []string {
	return catalog.TechTrends()
}

// AgeGroups возвращает возрастные группы
func (uc *CatalogUseCase) AgeGroups() []string {
	return entity.AgeGroups()
}

// ProjectsToEvaluate возвращает проекты для оценки
func (uc *CatalogUseCase) ProjectsToEvaluate(ageGroup string, trends []string) []entity.EvaluationProject {
	return ProjectsToEvaluate(ageGroup, trends)
}

// ProjectsToEvaluate отбирает проекты выбранных направлений.
// Оценивают только группы старше 25 лет; для остальных список пуст.
func ProjectsToEvaluate(ageGroup string, trends []string) []entity.EvaluationProject {
	result := []entity.EvaluationProject{}
	if !entity.EvaluatesProjects(ageGroup) || len(trends) == 0 {
		return result
	}

	selected := make(map[string]struct{}, len(trends))
	for _, t := range trends {
		selected[t] = struct{}{}
	}

	for _, p := range catalog.Projects() {
		if _, ok := selected[p.Trend]; ok {
			result = append(result, p)
		}
	}

	return result
}
