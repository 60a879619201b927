package entity

import "time"

// Возрастные группы анкеты
const (
	AgeGroupUnder25 = "Under 25"
	AgeGroup25To40  = "25-40"
	AgeGroup40To55  = "40-55"
	AgeGroup55Plus  = "55+"
)

// AgeGroups возвращает допустимые возрастные группы в порядке отображения
func AgeGroups() []string {
	return []string{AgeGroupUnder25, AgeGroup25To40, AgeGroup40To55, AgeGroup55Plus}
}

// IsValidAgeGroup проверяет, что группа входит в список допустимых
func IsValidAgeGroup(group string) bool {
	for _, g := range AgeGroups() {
		if g == group {
			return true
		}
	}
	return false
}

// EvaluatesProjects сообщает, оценивает ли группа проекты (все, кроме младшей)
func EvaluatesProjects(group string) bool {
	return group == AgeGroup25To40 || group == AgeGroup40To55 || group == AgeGroup55Plus
}

type User struct {
	UserID                    string
	Name                      string
	Company                   string
	Role                      string
	AgeGroup                  string
	InterestTags              []string
	ImplementationPreferences string
	EvaluatedProjects         []ProjectEvaluation
	CreatedAt                 time.Time
}

// OnboardingForm данные анкеты, отправленные пользователем
type OnboardingForm struct {
	Name                      string
	Company                   string
	Role                      string
	AgeGroup                  string
	TechTrends                []string
	ImplementationPreferences string
	EvaluatedProjects         []ProjectEvaluation
}
