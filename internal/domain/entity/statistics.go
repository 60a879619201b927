package entity

type Statistics struct {
	TotalSessions     int                `json:"total_sessions"`
	OnboardedSessions int                `json:"onboarded_sessions"`
	TotalTasks        int                `json:"total_tasks"`
	TasksByStatus     map[TaskStatus]int `json:"tasks_by_status"`
	TotalMessages     int                `json:"total_messages"`
	TotalFiles        int                `json:"total_files"`
	TeamsByMentor     map[string]int     `json:"teams_by_mentor"`
}
