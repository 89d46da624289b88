package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"modkeys/log"
	"modkeys/modifiers"
	"modkeys/termkey"
)

// TUI message types
type HotkeyMsg struct{ Mods modifiers.Set }
type StatusMsg struct{ Text string }

const historySize = 8

type keyRecord struct {
	key  string
	mods modifiers.Set
}

type tuiModel struct {
	width, height int
	bind          modifiers.Set
	history       []keyRecord // newest first
	counts        map[modifiers.Set]int
	total         int
	hotkeyFires   int
	status        string

	copy   func(string) error
	inject func(modifiers.Set) error
}

var tuiProgram *tea.Program

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	onStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

func newTUIModel(bind modifiers.Set) tuiModel {
	return tuiModel{
		bind:   bind,
		counts: map[modifiers.Set]int{},
	}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+y":
			return m, m.copyLast()
		case "ctrl+t":
			return m, m.injectLast()
		}
		m = m.record(msg.String(), termkey.FromKeyMsg(msg))

	case HotkeyMsg:
		m.hotkeyFires++
		m.status = fmt.Sprintf("global hotkey %s+Space fired (%d)", plusLabel(msg.Mods), m.hotkeyFires)

	case StatusMsg:
		m.status = msg.Text
	}
	return m, nil
}

func (m tuiModel) record(key string, mods modifiers.Set) tuiModel {
	log.KeyEvent(key, mods)
	m.total++
	// counts is shared between model copies; bubbletea only keeps the newest.
	m.counts[mods]++
	m.history = append([]keyRecord{{key: key, mods: mods}}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}
	return m
}

func (m tuiModel) last() (keyRecord, bool) {
	if len(m.history) == 0 {
		return keyRecord{}, false
	}
	return m.history[0], true
}

func (m tuiModel) copyLast() tea.Cmd {
	last, ok := m.last()
	if !ok || m.copy == nil {
		return nil
	}
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(last.mods.String()); err != nil {
			log.Errorf("clipboard copy: %v", err)
			return StatusMsg{Text: fmt.Sprintf("copy failed: %v", err)}
		}
		return StatusMsg{Text: fmt.Sprintf("copied %q", last.mods.String())}
	}
}

func (m tuiModel) injectLast() tea.Cmd {
	last, ok := m.last()
	if !ok || m.inject == nil {
		return nil
	}
	injectFn := m.inject
	return func() tea.Msg {
		if err := injectFn(last.mods); err != nil {
			log.Errorf("inject %s: %v", last.mods, err)
			return StatusMsg{Text: fmt.Sprintf("inject failed: %v", err)}
		}
		return StatusMsg{Text: fmt.Sprintf("injected %s+Space", plusLabel(last.mods))}
	}
}

// plusLabel renders a set the way shortcuts are usually written, "CONTROL+SHIFT".
func plusLabel(s modifiers.Set) string {
	if s.IsEmpty() {
		return "(none)"
	}
	return strings.ReplaceAll(s.String(), " | ", "+")
}

func indicator(name string, on bool) string {
	if on {
		return onStyle.Render("● " + name)
	}
	return offStyle.Render("○ " + name)
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("modkeys"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  hotkey %s+Space · ctrl+y copy · ctrl+t inject · ctrl+c quit", plusLabel(m.bind))))
	b.WriteString("\n\n")

	last, ok := m.last()
	if !ok {
		b.WriteString(boxStyle.Render("press any key..."))
	} else {
		var p strings.Builder
		p.WriteString(keyStyle.Render(last.key))
		p.WriteString("\n")
		fmt.Fprintf(&p, "mods  %s\n", plusLabel(last.mods))
		fmt.Fprintf(&p, "bits  %#06x\n", last.mods.Bits())
		p.WriteString(strings.Join([]string{
			indicator("shift", last.mods.Shift()),
			indicator("ctrl", last.mods.Ctrl()),
			indicator("alt", last.mods.Alt()),
			indicator("meta", last.mods.Meta()),
		}, "  "))
		b.WriteString(boxStyle.Render(p.String()))
	}
	b.WriteString("\n\n")

	if len(m.history) > 1 {
		b.WriteString(dimStyle.Render("recent"))
		b.WriteString("\n")
		for _, r := range m.history[1:] {
			fmt.Fprintf(&b, "  %-16s %s\n", r.key, dimStyle.Render(plusLabel(r.mods)))
		}
		b.WriteString("\n")
	}

	if len(m.counts) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("by modifiers (%d keys)", m.total)))
		b.WriteString("\n")
		sets := slices.SortedFunc(maps.Keys(m.counts), modifiers.Compare)
		for _, s := range sets {
			fmt.Fprintf(&b, "  %#06x  %-28s %d\n", s.Bits(), plusLabel(s), m.counts[s])
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}
