package prompt

import (
	"os"
	"strings"

	tbl "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type table struct {
	table     tbl.Model
	quitting  bool
	choice    string
	searchBuf string
	// searchColumn is the column typed text is matched against
	searchColumn int
}

func (m *table) Init() tea.Cmd {
	return nil
}

func (m *table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.quitting = true
			if row := m.table.SelectedRow(); row != nil {
				m.choice = row[0]
			}
			return m, tea.Quit
		default:
			if len(msg.String()) == 1 {
				m.search(msg.String())
				return m, nil
			}
			m.searchBuf = ""
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// search moves the cursor to the first row whose search column starts with
// everything typed so far, or failing that with the last key alone
func (m *table) search(key string) {
	m.searchBuf += key
	rows := m.table.Rows()
	searchIdx := -1
	searchIdxCandidate := -1
	for id, row := range rows {
		if m.searchColumn >= len(row) {
			continue
		}
		cell := strings.ToLower(row[m.searchColumn])
		if strings.HasPrefix(cell, strings.ToLower(m.searchBuf)) {
			searchIdx = id
			break
		}
		if searchIdxCandidate == -1 && strings.HasPrefix(cell, strings.ToLower(key)) {
			searchIdxCandidate = id
		}
	}
	if searchIdx != -1 {
		m.table.SetCursor(searchIdx)
	} else if searchIdxCandidate != -1 {
		m.searchBuf = key
		m.table.SetCursor(searchIdxCandidate)
	}
}

func (m *table) View() string {
	if m.quitting {
		return ""
	}
	// 3 lines for the table header, and assume current output has been at most 7 lines
	height := min(len(m.table.Rows()), terminalHeight()-10)
	m.table.SetHeight(height)
	return baseStyle.Render(m.table.View()) + "\n"
}

func terminalHeight() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 0 {
		return 24
	}
	return height
}

func newTable(columns []tbl.Column, rows []tbl.Row, initPos int, searchColumn int) *table {
	t := tbl.New(
		tbl.WithColumns(columns),
		tbl.WithRows(rows),
		tbl.WithFocused(true),
	)
	t.SetCursor(initPos)

	s := tbl.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &table{table: t, searchColumn: searchColumn}
}

func (m *table) Start() error {
	m.quitting = false
	m.searchBuf = ""
	_, err := tea.NewProgram(m).Run()
	return err
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// Table shows rows in a scrollable table and returns the first cell of the
// row picked with enter, or "" when the user left with esc. Typing jumps to
// the first row whose searchColumn starts with the typed text.
func Table(columns []tbl.Column, rows []tbl.Row, initPos int, searchColumn int) (string, error) {
	table := newTable(columns, rows, initPos, searchColumn)
	if err := table.Start(); err != nil {
		return "", err
	}
	return table.choice, nil
}
