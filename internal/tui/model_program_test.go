package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/evanschultz/kanlite/internal/app"
)

type programRun struct {
	model tea.Model
	err   error
}

// startProgram runs m in a real program loop without a terminal.
func startProgram(t *testing.T, m Model) (*tea.Program, <-chan programRun) {
	t.Helper()
	var out bytes.Buffer
	p := tea.NewProgram(m,
		tea.WithInput(nil),
		tea.WithOutput(&out),
		tea.WithWindowSize(120, 35),
		tea.WithoutSignalHandler(),
	)
	done := make(chan programRun, 1)
	go func() {
		final, err := p.Run()
		done <- programRun{model: final, err: err}
	}()
	t.Cleanup(p.Kill)
	return p, done
}

func waitProgram(t *testing.T, done <-chan programRun) Model {
	t.Helper()
	select {
	case res := <-done:
		if res.err != nil {
			t.Fatalf("Run() error = %v", res.err)
		}
		final, ok := res.model.(Model)
		if !ok {
			t.Fatalf("expected Model, got %T", res.model)
		}
		return final
	case <-time.After(3 * time.Second):
		t.Fatal("program did not finish")
	}
	return Model{}
}

// TestModelProgramRendersAndQuits verifies the board renders and quits in a real program loop.
func TestModelProgramRendersAndQuits(t *testing.T) {
	p, done := startProgram(t, NewModel(newDemoBoard(t)))
	p.Send(tea.KeyPressMsg{Code: 'q', Text: "q"})

	final := waitProgram(t, done)
	if out := ansi.Strip(final.render()); !strings.Contains(out, "Buy milk") {
		t.Fatalf("expected final view to contain demo task\n%s", out)
	}
}

// TestModelProgramCreatesTask verifies the creation dialog through a real program loop.
func TestModelProgramCreatesTask(t *testing.T) {
	b := newDemoBoard(t)
	var applied []app.Intent
	p, done := startProgram(t, NewModel(b, WithIntentHook(func(in app.Intent, _ app.Result) {
		applied = append(applied, in)
	})))

	p.Send(tea.KeyPressMsg{Code: 'n', Text: "n"})
	for _, r := range "Water plants" {
		p.Send(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	p.Send(tea.KeyPressMsg{Code: tea.KeyEnter})
	p.Send(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})

	final := waitProgram(t, done)
	task, ok := b.TaskByID(5)
	if !ok || task.Title != "Water plants" {
		t.Fatalf("expected created task 5, got %#v ok=%t", task, ok)
	}
	if b.DialogVisible() {
		t.Fatal("expected dialog closed after create")
	}
	if len(applied) != 2 {
		t.Fatalf("expected open and create intents, got %v", applied)
	}
	if out := ansi.Strip(final.render()); !strings.Contains(out, "Water plants") {
		t.Fatalf("expected final view to contain the new task\n%s", out)
	}
}
