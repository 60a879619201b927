package entity

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// UnassignedName исполнитель задачи, созданной без анкеты
const UnassignedName = "Unassigned"

// TaskStatuses возвращает статусы в порядке колонок доски
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

type Task struct {
	TaskID      string
	SessionID   string
	Title       string
	Description string
	Status      TaskStatus
	CreatedBy   string
	AssignedTo  string
	CreatedAt   time.Time
}

// Board задачи, разложенные по колонкам; порядок вставки сохраняется
type Board struct {
	Todo       []*Task
	InProgress []*Task
	Done       []*Task
}

// NewBoard раскладывает задачи по статусам
func NewBoard(tasks []*Task) *Board {
	board := &Board{
		Todo:       []*Task{},
		InProgress: []*Task{},
		Done:       []*Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case TaskStatusTodo:
			board.Todo = append(board.Todo, t)
		case TaskStatusInProgress:
			board.InProgress = append(board.InProgress, t)
		case TaskStatusDone:
			board.Done = append(board.Done, t)
		}
	}
	return board
}

// Len возвращает общее число задач на доске
func (b *Board) Len() int {
	return len(b.Todo) + len(b.InProgress) + len(b.Done)
}
