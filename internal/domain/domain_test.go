package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestNewTaskDefaultsAndTrims(t *testing.T) {
	task, err := NewTask(TaskInput{ID: 1, Title: "  Buy milk  ", Category: CategoryGrocery})
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	if task.Title != "Buy milk" {
		t.Fatalf("unexpected title %q", task.Title)
	}
	if task.Status != StatusTodo {
		t.Fatalf("expected default status todo, got %q", task.Status)
	}
}

func TestNewTaskValidation(t *testing.T) {
	if _, err := NewTask(TaskInput{ID: 0, Title: "x", Category: CategoryHome}); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := NewTask(TaskInput{ID: 1, Title: "   ", Category: CategoryHome}); err != ErrInvalidTitle {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
	if _, err := NewTask(TaskInput{ID: 1, Title: "x", Category: "garage"}); err != ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := NewTask(TaskInput{ID: 1, Title: "x", Category: CategoryHome, Status: "blocked"}); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestTaskWithStatusCopies(t *testing.T) {
	task, _ := NewTask(TaskInput{ID: 3, Title: "Ibuprofen", Category: CategoryPharmacy})
	moved := task.WithStatus(StatusInProgress)
	if task.Status != StatusTodo {
		t.Fatalf("expected original untouched, got %q", task.Status)
	}
	if moved.Status != StatusInProgress || moved.ID != 3 || moved.Title != "Ibuprofen" || moved.Category != CategoryPharmacy {
		t.Fatalf("unexpected moved task %#v", moved)
	}
}

func TestStatusTransitionsAreLinear(t *testing.T) {
	cases := map[Status][]Status{
		StatusTodo:       {StatusInProgress},
		StatusInProgress: {StatusTodo, StatusDone},
		StatusDone:       {StatusInProgress},
	}
	for status, want := range cases {
		if got := status.Moves(); !slices.Equal(got, want) {
			t.Fatalf("%s.Moves() = %v, want %v", status, got, want)
		}
	}
	if StatusTodo.CanMoveTo(StatusDone) {
		t.Fatal("expected todo -> done to be rejected")
	}
	if _, ok := StatusDone.Next(); ok {
		t.Fatal("expected done to have no next status")
	}
	if _, ok := StatusTodo.Prev(); ok {
		t.Fatal("expected todo to have no previous status")
	}
	if got := Status("bogus").Moves(); len(got) != 0 {
		t.Fatalf("expected no moves for unknown status, got %v", got)
	}
}

func TestParseStatusAndCategory(t *testing.T) {
	s, err := ParseStatus(" In-Progress ")
	if err != nil || s != StatusInProgress {
		t.Fatalf("ParseStatus() = %q, %v", s, err)
	}
	if _, err := ParseStatus("later"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	c, err := ParseCategory("PHARMACY")
	if err != nil || c != CategoryPharmacy {
		t.Fatalf("ParseCategory() = %q, %v", c, err)
	}
	if _, err := ParseCategory("garage"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCategoryStyleTableIsExhaustive(t *testing.T) {
	if len(categoryStyles) != len(Categories) {
		t.Fatalf("expected %d styles, got %d", len(Categories), len(categoryStyles))
	}
	seenKeys := map[string]struct{}{}
	for _, c := range Categories {
		style := c.Style()
		if style.Color == "" || style.LabelKey == "" {
			t.Fatalf("missing style for %q: %#v", c, style)
		}
		if _, ok := seenKeys[style.LabelKey]; ok {
			t.Fatalf("duplicate label key %q", style.LabelKey)
		}
		seenKeys[style.LabelKey] = struct{}{}
	}
	if !DefaultCategory.Valid() {
		t.Fatal("expected default category to be valid")
	}
	if (Category("garage").Style() != CategoryStyle{}) {
		t.Fatal("expected zero style for unknown category")
	}
}
