// Package prompt provides the per-category confirmation. The interactive
// prompter counts down from five seconds; pressing n/N declines, any other
// key or the timeout proceeds. Defaulting to proceed on no input is
// deliberate, long-standing behavior: the tool is built for unattended
// cleanup runs, and the preview plus dry-run mode are the safety valves.
package prompt

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// DefaultTimeout is how long the interactive prompt waits before
// auto-confirming.
const DefaultTimeout = 5 * time.Second

// Prompter answers a yes/no question. The engine swaps in a fake for tests.
type Prompter interface {
	Confirm(question string) bool
}

// TimedPrompter asks on the terminal with a countdown. On a non-terminal
// stdin the prompt cannot be read, which is treated exactly like a timeout:
// proceed.
type TimedPrompter struct {
	Timeout time.Duration
}

// NewTimedPrompter returns a TimedPrompter with the default timeout.
func NewTimedPrompter() *TimedPrompter {
	return &TimedPrompter{Timeout: DefaultTimeout}
}

// Confirm implements Prompter.
func (p *TimedPrompter) Confirm(question string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return true
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	m := confirmModel{
		question: question,
		timer:    timer.New(timeout),
		accepted: true,
	}
	res, err := tea.NewProgram(m).Run()
	if err != nil {
		// Terminal went away mid-prompt; same outcome as a timeout.
		return true
	}
	if final, ok := res.(confirmModel); ok {
		return final.accepted
	}
	return true
}

// ─── tea.Model ───────────────────────────────────────────────────────────────

type confirmModel struct {
	question string
	timer    timer.Model
	accepted bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case timer.TimeoutMsg:
		m.accepted = true
		m.done = true
		return m, tea.Quit

	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "n", "N", "ctrl+c", "esc":
			m.accepted = false
		default:
			m.accepted = true
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s [Y/n] auto-confirm in %s ", m.question, m.timer.View())
}
