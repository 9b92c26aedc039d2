// Package tui implements a read-only pager for browsing computed tables.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/easybj/internal/report"
)

// Pager is a Bubble Tea model showing one report section at a time
type Pager struct {
	sections []report.Section
	current  int
	logger   *log.Logger

	viewport viewport.Model
	width    int
	height   int
	quitting bool
}

// NewPager creates a pager over the rendered sections
func NewPager(sections []report.Section, logger *log.Logger) *Pager {
	// Resized when the first WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	p := &Pager{
		sections: sections,
		logger:   logger.WithPrefix("tui"),
		viewport: vp,
	}
	p.showCurrent()
	return p
}

// Init implements tea.Model
func (p *Pager) Init() tea.Cmd {
	return nil
}

// Current returns the name of the section on screen
func (p *Pager) Current() string {
	if len(p.sections) == 0 {
		return ""
	}
	return p.sections[p.current].Name
}

// Update handles key and resize messages
func (p *Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.resize()
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			p.quitting = true
			return p, tea.Quit
		case "tab", "right", "l":
			p.move(1)
			return p, nil
		case "shift+tab", "left", "h":
			p.move(-1)
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *Pager) move(delta int) {
	n := len(p.sections)
	if n == 0 {
		return
	}
	p.current = (p.current + delta + n) % n
	p.logger.Debug("Switching section", "section", p.Current())
	p.showCurrent()
}

func (p *Pager) showCurrent() {
	if len(p.sections) == 0 {
		p.viewport.SetContent("no results")
		return
	}
	p.viewport.SetContent(p.sections[p.current].Body)
	p.viewport.GotoTop()
}

// resize fits the viewport between the tab bar and the help line
func (p *Pager) resize() {
	frameW, frameH := BodyStyle.GetFrameSize()
	chrome := lipgloss.Height(p.renderTabs()) + lipgloss.Height(p.renderHelp())
	p.viewport.Width = max(p.width-frameW, 1)
	p.viewport.Height = max(p.height-frameH-chrome, 1)
}

// View renders the pager
func (p *Pager) View() string {
	if p.quitting {
		return ""
	}
	if p.width == 0 || p.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		p.renderTabs(),
		BodyStyle.Render(p.viewport.View()),
		p.renderHelp(),
	)
}

func (p *Pager) renderTabs() string {
	tabs := make([]string, len(p.sections))
	for i, s := range p.sections {
		if i == p.current {
			tabs[i] = ActiveTabStyle.Render(s.Name)
		} else {
			tabs[i] = TabStyle.Render(s.Name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (p *Pager) renderHelp() string {
	help := []string{
		"tab/shift+tab switch table",
		"↑↓ scroll",
		"q quit",
		fmt.Sprintf("%3.f%%", p.viewport.ScrollPercent()*100),
	}
	return HelpStyle.Render(strings.Join(help, " • "))
}

// Run starts the pager in the alternate screen and blocks until it quits
func Run(sections []report.Section, logger *log.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(NewPager(sections, logger), opts...).Run()
	return err
}
