package entity

type Mentor struct {
	Name        string
	Era         string
	FocusTags   []string
	Description string
}
