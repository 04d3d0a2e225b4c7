package tui

import (
	"time"

	"github.com/MKhiriev/client-admin/internal/manager"
	"github.com/MKhiriev/client-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusTable
)

const statusTTL = 2 * time.Second

// consoleModel is the root bubbletea model. All list and form state lives in
// the client manager; the model only keeps widgets in step with it.
type consoleModel struct {
	clients   *manager.ClientManager
	buildInfo models.AppBuildInfo

	clientView  clientScreen
	accountView accountModal

	spinner spinner.Model
	help    help.Model

	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
	status        string

	quitByUser bool
}

func newConsoleModel(clients *manager.ClientManager, buildInfo models.AppBuildInfo) consoleModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return consoleModel{
		clients:    clients,
		buildInfo:  buildInfo,
		clientView: newClientScreen(),
		spinner:    s,
		help:       help.New(),
	}
}

func (m consoleModel) Init() tea.Cmd {
	return tea.Batch(m.clients.Init(), m.spinner.Tick, textinput.Blink)
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case manager.ClientsLoadedMsg, manager.ClientCreatedMsg, manager.ClientUpdatedMsg, manager.ClientDeletedMsg,
		manager.AccountsLoadedMsg, manager.AccountCreatedMsg, manager.AccountUpdatedMsg, manager.AccountDeletedMsg:
		cmd := m.clients.Update(msg)
		m.sync()
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "national ID copied"
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and similar widget messages.
	var cmd tea.Cmd
	if m.clients.AccountsVisible() {
		m.accountView, cmd = m.accountView.updateInput(msg)
	} else {
		m.clientView, cmd = m.clientView.updateInput(msg)
	}
	return m, cmd
}

func (m consoleModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.showConfirm {
		return m.updateConfirm(msg)
	}

	if m.activeNotice().Level == manager.NoticeError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.dismissNotice()
		}
		return m, nil
	}

	if m.clients.AccountsVisible() {
		return m.updateAccounts(msg)
	}
	return m.updateClients(msg)
}

func (m consoleModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		target := m.confirm
		m.confirm = confirmModel{}
		if target.target == confirmAccount {
			if am := m.clients.Accounts(); am != nil {
				return m, am.Delete(target.id)
			}
			return m, nil
		}
		return m, m.clients.Delete(target.id)
	case key.Matches(msg, keys.no):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m *consoleModel) askDelete(target confirmTarget, id int64, label string) {
	m.showConfirm = true
	m.confirm = confirmModel{target: target, id: id, label: label}
}

// activeNotice is the notice of whichever view has the keyboard.
func (m consoleModel) activeNotice() manager.Notice {
	if am := m.clients.Accounts(); am != nil {
		return am.Notice()
	}
	return m.clients.Notice()
}

func (m *consoleModel) dismissNotice() {
	if am := m.clients.Accounts(); am != nil {
		am.DismissNotice()
		return
	}
	m.clients.DismissNotice()
}

// sync copies manager state into the widgets after every manager update.
func (m *consoleModel) sync() {
	m.clientView.sync(m.clients)
	if am := m.clients.Accounts(); am != nil {
		m.accountView.sync(am)
	}
}

func (m consoleModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	if am := m.clients.Accounts(); am != nil {
		owner, _ := m.clients.Selected()
		body = m.accountView.view(am, owner, m.spinner.View(), m.help)
	} else {
		body = m.clientView.view(m.clients, m.spinner.View(), m.status, m.help)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if n := m.activeNotice(); n.Level == manager.NoticeError {
		body += "\n\n" + errorOverlayModel{message: n.Text}.View()
	}

	return appStyle.Render(body)
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
