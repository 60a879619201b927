package memory

import "github.com/StepanK17/novagen-service/internal/domain/entity"

// Хранилище отдает и принимает только копии, чтобы изменения
// вызывающего кода попадали в состояние исключительно через Update.

func cloneSession(s *entity.Session) *entity.Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.User != nil {
		u := *s.User
		u.InterestTags = append([]string(nil), s.User.InterestTags...)
		u.EvaluatedProjects = append([]entity.ProjectEvaluation(nil), s.User.EvaluatedProjects...)
		c.User = &u
	}
	if s.Team != nil {
		t := *s.Team
		t.Members = append([]entity.TeamMember(nil), s.Team.Members...)
		t.Mentor.FocusTags = append([]string(nil), s.Team.Mentor.FocusTags...)
		c.Team = &t
	}
	return &c
}

func cloneTask(t *entity.Task) *entity.Task {
	c := *t
	return &c
}

func cloneMessage(m *entity.ChatMessage) *entity.ChatMessage {
	c := *m
	return &c
}

func cloneFile(f *entity.SharedFile) *entity.SharedFile {
	c := *f
	return &c
}

func cloneNotification(n *entity.Notification) *entity.Notification {
	c := *n
	return &c
}
