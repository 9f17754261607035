package app

import (
	"fmt"

	"github.com/evanschultz/kanlite/internal/domain"
)

// Intent is a user request to change board state.
type Intent interface {
	intent()
	fmt.Stringer
}

// MoveIntent asks to move one task to a new status.
type MoveIntent struct {
	TaskID int
	Status domain.Status
}

// CreateIntent asks to append a new task and close the creation dialog.
type CreateIntent struct {
	Title    string
	Category domain.Category
}

// OpenDialogIntent asks to show the creation dialog.
type OpenDialogIntent struct{}

// CloseDialogIntent dismisses the creation dialog without creating anything.
type CloseDialogIntent struct{}

func (MoveIntent) intent()        {}
func (CreateIntent) intent()      {}
func (OpenDialogIntent) intent()  {}
func (CloseDialogIntent) intent() {}

func (i MoveIntent) String() string {
	return fmt.Sprintf("move task %d to %s", i.TaskID, i.Status)
}

func (i CreateIntent) String() string {
	return fmt.Sprintf("create %s task %q", i.Category, i.Title)
}

func (OpenDialogIntent) String() string  { return "open dialog" }
func (CloseDialogIntent) String() string { return "close dialog" }

// Result describes the effect of one applied intent.
type Result struct {
	Changed bool
	Task    domain.Task
}

// Apply routes one intent to the matching board operation.
func (b *Board) Apply(in Intent) Result {
	switch in := in.(type) {
	case MoveIntent:
		task, ok := b.MoveTask(in.TaskID, in.Status)
		return Result{Changed: ok, Task: task}
	case CreateIntent:
		task := b.CreateTask(in.Title, in.Category)
		b.SetDialogVisible(false)
		return Result{Changed: true, Task: task}
	case OpenDialogIntent:
		if b.dialogVisible {
			return Result{}
		}
		b.SetDialogVisible(true)
		return Result{Changed: true}
	case CloseDialogIntent:
		if !b.dialogVisible {
			return Result{}
		}
		b.SetDialogVisible(false)
		return Result{Changed: true}
	default:
		return Result{}
	}
}
