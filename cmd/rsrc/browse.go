package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	rsrcengine "github.com/cinegraph/rsrc-engine"
	"github.com/cinegraph/rsrc-engine/fork"
	"github.com/cinegraph/rsrc-engine/mactext"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#005F87")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#005F87"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a container interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openFork(ctx, args[0])
			if err != nil {
				return err
			}
			return runBrowse(f, args[0], mactext.Active())
		},
	}
}

type browseState int

const (
	stateList browseState = iota
	stateDump
)

type browseModel struct {
	f        *fork.File
	path     string
	sel      mactext.Selection
	ids      []rsrcengine.ResourceId
	selected int
	state    browseState
	dump     viewport.Model
	err      error
	width    int
	height   int
}

func newBrowseModel(f *fork.File, path string, sel mactext.Selection) *browseModel {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return &browseModel{
		f:      f,
		path:   path,
		sel:    sel,
		ids:    f.IDs(),
		dump:   viewport.New(width, height-4),
		width:  width,
		height: height,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dump.Width = msg.Width
		m.dump.Height = msg.Height - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.ids)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateList && len(m.ids) > 0 {
				m.openDump()
			}

		case "esc":
			if m.state == stateDump {
				m.state = stateList
				m.err = nil
			}
		}
	}

	if m.state == stateDump {
		var cmd tea.Cmd
		m.dump, cmd = m.dump.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) openDump() {
	id := m.ids[m.selected]
	raw, _, err := m.f.LoadBytes(id)
	if err != nil {
		m.err = err
		m.state = stateDump
		m.dump.SetContent("")
		return
	}
	m.dump.SetContent(hex.Dump(raw))
	m.dump.GotoTop()
	m.state = stateDump
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("rsrc"))
	b.WriteString(" ")
	b.WriteString(m.path)
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		if len(m.ids) == 0 {
			b.WriteString("No resources.\n")
			break
		}
		// Keep the selection visible on small terminals.
		visible := m.height - 5
		if visible < 1 {
			visible = 1
		}
		start := 0
		if m.selected >= visible {
			start = m.selected - visible + 1
		}
		for i := start; i < len(m.ids) && i < start+visible; i++ {
			line := m.formatEntry(m.ids[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter dump • q quit"))

	case stateDump:
		b.WriteString(m.formatEntry(m.ids[m.selected]))
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(m.dump.View())
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func (m *browseModel) formatEntry(id rsrcengine.ResourceId) string {
	entry := tagStyle.Render(id.Type.String()) + fmt.Sprintf(" %6d", id.Num)
	if name, ok := m.f.NameOf(id, m.sel); ok {
		entry += "  " + nameStyle.Render(name)
	}
	return entry
}

func runBrowse(f *fork.File, path string, sel mactext.Selection) error {
	p := tea.NewProgram(newBrowseModel(f, path, sel), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
