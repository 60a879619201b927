package entity

const (
	DefaultTeamID = "default-team"
	MaxTeamSize   = 5
)

type Team struct {
	TeamID  string
	Mentor  Mentor
	Members []TeamMember
}

type TeamMember struct {
	Name   string
	UserID string
	IsUser bool
}

// User возвращает участника, отправившего анкету
func (t *Team) User() (TeamMember, bool) {
	for _, m := range t.Members {
		if m.IsUser {
			return m, true
		}
	}
	return TeamMember{}, false
}
