package app

import "github.com/evanschultz/kanlite/internal/domain"

// DemoTasks returns the starter board. title resolves the demo_task_N catalog keys.
func DemoTasks(title func(key string) string) []domain.Task {
	if title == nil {
		title = func(key string) string { return key }
	}
	return []domain.Task{
		{ID: 1, Title: title("demo_task_1"), Category: domain.CategoryGrocery, Status: domain.StatusTodo},
		{ID: 2, Title: title("demo_task_2"), Category: domain.CategoryHome, Status: domain.StatusTodo},
		{ID: 3, Title: title("demo_task_3"), Category: domain.CategoryPharmacy, Status: domain.StatusInProgress},
		{ID: 4, Title: title("demo_task_4"), Category: domain.CategoryHome, Status: domain.StatusDone},
	}
}
