package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phylograph/phylograph/pkg/tree"
)

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{}
}

func TestTreeViewModelRows(t *testing.T) {
	m := NewTreeViewModel(tree.Sample(), false)

	// All 10 nodes of the sample tree are visible initially.
	if len(m.rows) != tree.Sample().Count() {
		t.Errorf("rows = %d, want %d", len(m.rows), tree.Sample().Count())
	}
	if m.rows[0].node.ID != tree.Sample().ID {
		t.Error("first row should be the root")
	}
}

func TestTreeViewModelNavigation(t *testing.T) {
	m := NewTreeViewModel(tree.Sample(), false)

	next, _ := m.Update(key("down"))
	m = next.(TreeViewModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(key("up"))
	m = next.(TreeViewModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up, want 0", m.Cursor)
	}

	// Up at the top is a no-op.
	next, _ = m.Update(key("up"))
	m = next.(TreeViewModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
}

func TestTreeViewModelCollapse(t *testing.T) {
	m := NewTreeViewModel(tree.Sample(), false)
	total := len(m.rows)

	// Collapse the root: only one row remains.
	next, _ := m.Update(key("left"))
	m = next.(TreeViewModel)
	if len(m.rows) != 1 {
		t.Errorf("rows after collapsing root = %d, want 1", len(m.rows))
	}

	// Expand again.
	next, _ = m.Update(key("right"))
	m = next.(TreeViewModel)
	if len(m.rows) != total {
		t.Errorf("rows after expanding root = %d, want %d", len(m.rows), total)
	}

	// Enter toggles.
	next, _ = m.Update(key("enter"))
	m = next.(TreeViewModel)
	if len(m.rows) != 1 {
		t.Errorf("rows after enter = %d, want 1", len(m.rows))
	}
}

func TestTreeViewModelQuit(t *testing.T) {
	m := NewTreeViewModel(tree.Sample(), false)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestTreeViewModelView(t *testing.T) {
	m := NewTreeViewModel(tree.Sample(), true)
	out := m.View()

	if !strings.Contains(out, "sample tree") {
		t.Error("fallback notice missing from view")
	}
	if !strings.Contains(out, "taxon-1") {
		t.Error("leaf label missing from view")
	}
}
