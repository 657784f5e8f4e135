package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel(defaultConfig())
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateHelpCommandTogglesHelp(t *testing.T) {
	m := newREPLModel(defaultConfig())
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if cmd != nil {
		t.Fatalf("expected no command for help toggle")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestUpdateEnterRecordsHistory(t *testing.T) {
	m := newREPLModel(defaultConfig())
	m.textInput.SetValue("1 + 2")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	if rm.history[0].isErr {
		t.Fatalf("valid expression flagged as error: %s", rm.history[0].output)
	}
	if len(rm.cmdHistory) != 1 || rm.cmdHistory[0] != "1 + 2" {
		t.Fatalf("command history not recorded: %v", rm.cmdHistory)
	}
}

func TestParseInputRendersTree(t *testing.T) {
	out, isErr := parseInput("func add(a b) a + b")
	if isErr {
		t.Fatalf("unexpected error output: %s", out)
	}
	if !strings.Contains(out, "func add") || !strings.Contains(out, "binary +") {
		t.Fatalf("unexpected rendering:\n%s", out)
	}
}

func TestParseInputReportsDiagnostic(t *testing.T) {
	out, isErr := parseInput("foo(1, 2")
	if !isErr {
		t.Fatalf("expected error output")
	}
	if !strings.Contains(out, "expected ')' or ','") {
		t.Fatalf("unexpected diagnostic:\n%s", out)
	}
}

func TestHandleAutocompleteCompletesUniquePrefix(t *testing.T) {
	m := newREPLModel(defaultConfig())
	m.textInput.SetValue("fun")

	m = m.handleAutocomplete()
	if m.textInput.Value() != "func" {
		t.Fatalf("expected completion to func, got %q", m.textInput.Value())
	}
}
