package usecase

import (
	"github.com/StepanK17/novagen-service/internal/domain/catalog"
	"github.com/StepanK17/novagen-service/internal/domain/entity"
)

// BuildTeamRoster собирает команду: отправитель анкеты первым, затем имена из пула.
// Имя из пула, совпадающее с именем пользователя, отбрасывается, поэтому
// команда может получиться из 4 человек вместо 5.
func BuildTeamRoster(userName, userID string) []entity.TeamMember {
	members := make([]entity.TeamMember, 0, entity.MaxTeamSize)
	members = append(members, entity.TeamMember{Name: userName, UserID: userID, IsUser: true})

	pool := catalog.FillerNames()
	for _, name := range pool {
		if name != userName {
			members = append(members, entity.TeamMember{Name: name})
		}
	}

	// Добираем из хвоста пула, пока есть место и кандидаты
	for len(members) < entity.MaxTeamSize && len(pool) > 0 {
		name := pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		if !hasMember(members, name) {
			members = append(members, entity.TeamMember{Name: name})
		}
	}

	if len(members) > entity.MaxTeamSize {
		members = members[:entity.MaxTeamSize]
	}

	return members
}

func hasMember(members []entity.TeamMember, name string) bool {
	for _, m := range members {
		if m.Name == name {
			return true
		}
	}
	return false
}
