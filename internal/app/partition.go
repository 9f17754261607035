package app

import "github.com/evanschultz/kanlite/internal/domain"

// Columns holds the board split by status, each slice in board order.
type Columns struct {
	Todo       []domain.Task
	InProgress []domain.Task
	Done       []domain.Task
}

// For returns the column slice for status.
func (c Columns) For(status domain.Status) []domain.Task {
	switch status {
	case domain.StatusTodo:
		return c.Todo
	case domain.StatusInProgress:
		return c.InProgress
	case domain.StatusDone:
		return c.Done
	default:
		return nil
	}
}

// Partition filters tasks into the three status columns.
func Partition(tasks []domain.Task) Columns {
	var out Columns
	for _, task := range tasks {
		switch task.Status {
		case domain.StatusTodo:
			out.Todo = append(out.Todo, task)
		case domain.StatusInProgress:
			out.InProgress = append(out.InProgress, task)
		case domain.StatusDone:
			out.Done = append(out.Done, task)
		}
	}
	return out
}
