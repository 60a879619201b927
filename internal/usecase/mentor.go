package usecase

import (
	"golang.org/x/text/cases"

	"github.com/StepanK17/novagen-service/internal/domain/catalog"
	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// AssignMentor выбирает ментора по интересам пользователя.
// Побеждает первый ментор ростера, у которого хотя бы один фокус совпадает
// с тегом без учета регистра. Если совпадений нет, ментор выбирается случайно.
func AssignMentor(tags []string, rnd RandomSource) entity.Mentor {
	mentors := catalog.Mentors()

	// Caser хранит состояние, поэтому создается на каждый вызов
	fold := cases.Fold()

	folded := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		folded[fold.String(tag)] = struct{}{}
	}

	for _, mentor := range mentors {
		for _, focus := range mentor.FocusTags {
			if _, ok := folded[fold.String(focus)]; ok {
				return mentor
			}
		}
	}

	return mentors[rnd.Intn(len(mentors))]
}
