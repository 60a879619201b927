package entity

type EvaluationProject struct {
	ID          string
	Name        string
	Trend       string
	Description string
}

// ProjectEvaluation ответы старших участников по одному проекту
type ProjectEvaluation struct {
	ProjectID   string
	Name        string
	Trend       string
	Feasibility string
	Viability   string
	Challenge   string
}
