// Package ui implements the interactive host picker.
//
// The picker is a Bubble Tea model: Update is the keyboard state machine
// and View renders the menu or the help screen. Terminal ownership during
// connect and edit is handed to the child process via tea.ExecProcess and
// reacquired when it exits, regardless of the child's exit status.
package ui

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smk762/issh/internal/appconfig"
	"github.com/smk762/issh/internal/config"
	"github.com/smk762/issh/internal/editor"
	"github.com/smk762/issh/internal/history"
	"github.com/smk762/issh/internal/sshclient"
)

// sessionClosedMsg is delivered when a connect child process exits.
type sessionClosedMsg struct {
	alias string
}

// editorClosedMsg is delivered when the editor exits; the config file may
// have changed, so it triggers an implicit reload.
type editorClosedMsg struct{}

type pickerModel struct {
	configPath string
	cfg        appconfig.Config

	hosts    []string
	filtered []string
	sel      int

	filter      textinput.Model
	filterMode  bool
	showHelp    bool

	width  int
	height int

	ssh *sshclient.Client

	selectedStyle lipgloss.Style
	headerStyle   lipgloss.Style
}

func newPicker(configPath string, hosts []string, cfg appconfig.Config) pickerModel {
	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Prompt = "Filter: "
	filter.CharLimit = 64

	accent := lipgloss.Color(cfg.UI.AccentColor)
	m := pickerModel{
		configPath:    configPath,
		cfg:           cfg,
		hosts:         hosts,
		filter:        filter,
		ssh:           sshclient.New(cfg.SSHCommand),
		selectedStyle: lipgloss.NewStyle().Bold(true).Foreground(accent),
		headerStyle:   lipgloss.NewStyle().Bold(true),
	}
	m.applyFilter()
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

// reload replaces the host list wholesale and re-clamps the selection.
// On failure the previous list stays untouched.
func (m *pickerModel) reload() {
	hosts, err := config.Load(m.configPath)
	if err != nil {
		return
	}
	m.hosts = hosts
	m.applyFilter()
}

func (m *pickerModel) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if needle == "" {
		m.filtered = append([]string(nil), m.hosts...)
	} else {
		m.filtered = nil
		for _, h := range m.hosts {
			if strings.Contains(strings.ToLower(h), needle) {
				m.filtered = append(m.filtered, h)
			}
		}
	}
	if m.sel >= len(m.filtered) {
		m.sel = len(m.filtered) - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionClosedMsg:
		// The child's exit status is deliberately not surfaced; the menu
		// redraws either way.
		_ = history.Touch(msg.alias)
		return m, nil

	case editorClosedMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			// Any key returns to the menu; no command interpretation here.
			m.showHelp = false
			return m, nil
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		return m.updateMenu(msg)
	}
	return m, nil
}

func (m pickerModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "esc", "ctrl+c":
		return m, tea.Quit
	case "j", "J", "down":
		if m.sel < len(m.filtered)-1 {
			m.sel++
		}
	case "k", "K", "up":
		if m.sel > 0 {
			m.sel--
		}
	case "g":
		m.sel = 0
	case "G":
		if len(m.filtered) > 0 {
			m.sel = len(m.filtered) - 1
		}
	case "r", "R":
		m.reload()
	case "h", "H":
		m.showHelp = true
	case "/":
		m.filterMode = true
		m.filter.Focus()
		return m, textinput.Blink
	case "e", "E":
		return m, m.editCmd()
	case "l", "L", "right", "enter":
		return m, m.connectCmd()
	}
	// Unrecognized keys are no-ops.
	return m, nil
}

func (m pickerModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filterMode = false
		m.filter.Blur()
		m.applyFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// connectCmd hands the terminal to `ssh <alias>`; control returns to the
// menu when the session ends, even if the child failed.
func (m pickerModel) connectCmd() tea.Cmd {
	if len(m.filtered) == 0 {
		return nil
	}
	alias := m.filtered[m.sel]
	return tea.ExecProcess(m.ssh.ConnectCommand(alias), func(error) tea.Msg {
		return sessionClosedMsg{alias: alias}
	})
}

// editCmd hands the terminal to the resolved editor opened on the config
// path. A resolution failure degrades to a redraw.
func (m pickerModel) editCmd() tea.Cmd {
	cmd, err := editor.Command(m.cfg.Editor, m.configPath)
	if err != nil {
		return nil
	}
	return tea.ExecProcess(cmd, func(error) tea.Msg {
		return editorClosedMsg{}
	})
}

// Run starts the picker on the given host list. Interrupt and termination
// signals are funneled into a single quit request so the terminal is
// restored exactly once on every exit path.
func Run(configPath string, hosts []string, cfg appconfig.Config) error {
	p := tea.NewProgram(newPicker(configPath, hosts, cfg), tea.WithAltScreen())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
