package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/config"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui/component"
	"github.com/bnema/kiosk/internal/ui/coordinator"
)

type screen int

const (
	screenAddress screen = iota
	screenViewer
)

// grantsSettledMsg signals that a mediation cycle finished and the indicator
// should recompute from the store.
type grantsSettledMsg struct{}

// navChangedMsg signals a content navigation event.
type navChangedMsg struct{}

// exitViewerMsg pops the viewer screen off the shell's screen stack.
type exitViewerMsg struct{}

// hostNavigator adapts the shell's screen stack to port.HostNavigator.
// ExitViewer may be called from inside Update; queueing through Send keeps
// model mutation on the program goroutine.
type hostNavigator struct {
	send func(tea.Msg)
}

func (h hostNavigator) ExitViewer(context.Context) {
	h.send(exitViewerMsg{})
}

// Model is the shell's bubbletea model: an address screen and a viewer screen
// stacked on top of it.
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	system port.SystemPermissions

	presenter *TeaPresenter
	send      func(tea.Msg)

	screen  screen
	address textinput.Model

	content *SimContentView
	coord   *coordinator.ViewerCoordinator

	remediation *RemediationMsg
	status      string
}

// NewModel creates the shell model on the address screen.
func NewModel(ctx context.Context, cfg *config.Config, system port.SystemPermissions, presenter *TeaPresenter) *Model {
	address := textinput.New()
	address.Placeholder = cfg.Shell.HomeURL
	address.Prompt = "address> "
	address.Focus()

	return &Model{
		ctx:       ctx,
		cfg:       cfg,
		system:    system,
		presenter: presenter,
		screen:    screenAddress,
		address:   address,
	}
}

// SetSend installs the program's Send; must be called before Run.
func (m *Model) SetSend(fn func(tea.Msg)) {
	m.send = fn
	m.presenter.SetSend(fn)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RemediationMsg:
		m.remediation = &msg
		return m, nil

	case openURLMsg:
		if m.screen == screenAddress {
			return m, m.mountViewer(msg.URL)
		}
		return m, nil

	case grantsSettledMsg, navChangedMsg:
		return m, nil

	case exitViewerMsg:
		m.unmountViewer()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen == screenAddress {
		var cmd tea.Cmd
		m.address, cmd = m.address.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.unmountViewer()
		return m, tea.Quit
	}

	// The remediation modal captures input until answered.
	if m.remediation != nil {
		return m.handleRemediationKey(msg)
	}

	switch m.screen {
	case screenAddress:
		return m.handleAddressKey(msg)
	case screenViewer:
		return m.handleViewerKey(msg)
	}
	return m, nil
}

func (m *Model) handleRemediationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prompt := m.remediation
	switch msg.String() {
	case "s":
		m.remediation = nil
		m.status = "opening OS settings"
		return m, func() tea.Msg {
			prompt.Callback(port.RemediationChoice{OpenSettings: true})
			return grantsSettledMsg{}
		}
	case "d", "esc":
		m.remediation = nil
		m.status = "remediation dismissed"
		return m, func() tea.Msg {
			prompt.Callback(port.RemediationChoice{})
			return grantsSettledMsg{}
		}
	}
	return m, nil
}

func (m *Model) handleAddressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		url := strings.TrimSpace(m.address.Value())
		if url == "" {
			url = m.cfg.Shell.HomeURL
		}
		return m, m.mountViewer(url)
	}

	var cmd tea.Cmd
	m.address, cmd = m.address.Update(msg)
	return m, cmd
}

func (m *Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.unmountViewer()
		return m, tea.Quit

	case "backspace", "esc", "left":
		// The host's back affordance: content history first, then the screen
		// stack.
		coord := m.coord
		return m, func() tea.Msg {
			coord.HandleBack(m.ctx)
			return navChangedMsg{}
		}

	case "n":
		m.content.Navigate(m.content.CurrentURL() + "/next")
		m.status = "content navigated"
		return m, nil

	case "c":
		return m, m.requestMedia(true, false)
	case "m":
		return m, m.requestMedia(false, true)
	case "a":
		return m, m.requestMedia(true, true)
	}
	return m, nil
}

// mountViewer builds a fresh coordinator (and with it a fresh grant store)
// and pushes the viewer screen.
func (m *Model) mountViewer(url string) tea.Cmd {
	log := logging.FromContext(m.ctx)

	content := NewSimContentView(url)
	coord, err := coordinator.NewViewerCoordinator(
		m.ctx, content, hostNavigator{send: m.send}, m.system, m.presenter,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to mount viewer")
		m.status = "failed to mount viewer"
		return nil
	}

	content.SetOnMessage(coord.ReceiveMessage)
	content.SetOnNavigation(func(signal entity.NavigationSignal) {
		coord.OnNavigationChanged(signal)
	})

	m.content = content
	m.coord = coord
	m.screen = screenViewer
	m.status = ""

	ctx := logging.WithOrigin(m.ctx, url)
	return func() tea.Msg {
		coord.Mount(ctx)
		return navChangedMsg{}
	}
}

func (m *Model) unmountViewer() {
	if m.coord != nil {
		m.coord.Unmount()
	}
	m.coord = nil
	m.content = nil
	m.remediation = nil
	m.screen = screenAddress
	m.address.Focus()
}

// requestMedia emulates the page acquiring media; the resulting bridge cycle
// runs off the UI goroutine and reports back when settled.
func (m *Model) requestMedia(video, audio bool) tea.Cmd {
	content := m.content
	return func() tea.Msg {
		content.RequestMedia(video, audio)
		return grantsSettledMsg{}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.screen {
	case screenViewer:
		return m.viewViewer()
	default:
		return m.viewAddress()
	}
}

func (m *Model) viewAddress() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("kiosk") + "\n\n")
	b.WriteString(m.address.View() + "\n\n")
	b.WriteString(helpStyle.Render("enter: open viewer · esc: quit"))
	return b.String()
}

func (m *Model) viewViewer() string {
	var b strings.Builder

	b.WriteString(urlBarStyle.Render(m.content.CurrentURL()))
	b.WriteString("\n\n")

	snapshot := m.coord.GrantSnapshot()
	if component.ShouldShowGrantIndicator(snapshot) {
		b.WriteString(renderIndicator(component.SummarizeGrantState(snapshot)))
		b.WriteString("  ")
		for _, c := range entity.AllCapabilities() {
			b.WriteString(fmt.Sprintf("%s=%s ", c, snapshot[c]))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}

	if m.remediation != nil {
		var lines []string
		lines = append(lines, titleStyle.Render("Permission needed"))
		for _, r := range m.remediation.Results {
			lines = append(lines, fmt.Sprintf("%s: %s", r.Capability, r.Status))
		}
		lines = append(lines, "", "s: open settings · d: dismiss")
		b.WriteString("\n" + modalStyle.Render(strings.Join(lines, "\n")) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("c/m/a: page requests camera/mic/both · n: in-page nav · backspace: back · q: quit"))
	return b.String()
}
