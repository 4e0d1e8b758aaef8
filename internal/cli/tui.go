package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phylograph/phylograph/pkg/tree"
)

// Tree browser styles
var (
	treeSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	treeLeafStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	treeInternalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	treeDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// treeRow is one visible line of the browser: a node plus its indentation
// depth in the tree.
type treeRow struct {
	node  *tree.Node
	depth int
}

// TreeViewModel is the bubbletea model for the interactive tree browser.
// Internal nodes can be collapsed to hide their subtree.
type TreeViewModel struct {
	Root      *tree.Node
	Fallback  bool // the sample tree was substituted for unparseable input
	Cursor    int
	Height    int
	Offset    int
	collapsed map[string]bool
	rows      []treeRow
}

// NewTreeViewModel creates a browser over the given tree.
func NewTreeViewModel(root *tree.Node, fallback bool) TreeViewModel {
	m := TreeViewModel{
		Root:      root,
		Fallback:  fallback,
		Height:    20,
		collapsed: make(map[string]bool),
	}
	m.rebuild()
	return m
}

// rebuild recomputes the visible rows from the collapse state.
func (m *TreeViewModel) rebuild() {
	m.rows = m.rows[:0]
	var walk func(n *tree.Node, depth int)
	walk = func(n *tree.Node, depth int) {
		m.rows = append(m.rows, treeRow{node: n, depth: depth})
		if m.collapsed[n.ID] {
			return
		}
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	walk(m.Root, 0)

	if m.Cursor >= len(m.rows) {
		m.Cursor = len(m.rows) - 1
	}
}

func (m TreeViewModel) Init() tea.Cmd {
	return nil
}

func (m TreeViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "left", "h":
			n := m.rows[m.Cursor].node
			if !n.IsLeaf() && !m.collapsed[n.ID] {
				m.collapsed[n.ID] = true
				m.rebuild()
			}
		case "right", "l":
			n := m.rows[m.Cursor].node
			if m.collapsed[n.ID] {
				delete(m.collapsed, n.ID)
				m.rebuild()
			}
		case "enter", " ":
			n := m.rows[m.Cursor].node
			if !n.IsLeaf() {
				if m.collapsed[n.ID] {
					delete(m.collapsed, n.ID)
				} else {
					m.collapsed[n.ID] = true
				}
				m.rebuild()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TreeViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Phylogenetic Tree"))
	b.WriteString("\n")
	b.WriteString(treeDimStyle.Render("↑/↓ navigate  ←/→ collapse/expand  ⏎ toggle  q quit"))
	b.WriteString("\n")
	if m.Fallback {
		b.WriteString(StyleWarning.Render("! input could not be parsed, showing the sample tree"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	end := m.Offset + m.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.rows[i]
		n := row.node

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		marker := "●"
		if !n.IsLeaf() {
			marker = "▼"
			if m.collapsed[n.ID] {
				marker = "▶"
			}
		}

		label := n.Label
		if label == "" {
			label = n.ID
		}
		line := cursor + strings.Repeat("  ", row.depth) + marker + " " + label

		switch {
		case i == m.Cursor:
			b.WriteString(treeSelectedStyle.Render(line))
		case n.IsLeaf():
			b.WriteString(treeLeafStyle.Render(line))
		default:
			b.WriteString(treeInternalStyle.Render(line))
		}
		if n.Label != n.ID {
			b.WriteString(treeDimStyle.Render("  " + n.ID))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(treeDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d leaves",
		m.Cursor+1, len(m.rows), m.Root.Leaves())))

	return b.String()
}
