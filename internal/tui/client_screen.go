package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/client-admin/internal/manager"
	"github.com/MKhiriev/client-admin/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	clientInputNationalID = iota
	clientInputName
	clientInputBirthDate
)

var clientInputLabels = []string{"National ID", "Name", "Birth date"}

// clientScreen holds the widgets of the client list page.
type clientScreen struct {
	table    table.Model
	inputs   []textinput.Model
	focus    focusArea
	inputIdx int
}

func newClientScreen() clientScreen {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "National ID", Width: 14},
			{Title: "Name", Width: 24},
			{Title: "Birth date", Width: 12},
		}),
		table.WithHeight(10),
	)
	t.SetStyles(table.DefaultStyles())

	nationalID := textinput.New()
	nationalID.Placeholder = "1-9"
	nationalID.Width = 30
	nationalID.Focus()

	name := textinput.New()
	name.Placeholder = "Full name"
	name.Width = 30

	birthDate := textinput.New()
	birthDate.Placeholder = "YYYY-MM-DD"
	birthDate.Width = 30
	birthDate.CharLimit = 10

	return clientScreen{
		table:  t,
		inputs: []textinput.Model{nationalID, name, birthDate},
		focus:  focusForm,
	}
}

func (s clientScreen) formValue() manager.ClientForm {
	return manager.ClientForm{
		NationalID: s.inputs[clientInputNationalID].Value(),
		Name:       s.inputs[clientInputName].Value(),
		BirthDate:  s.inputs[clientInputBirthDate].Value(),
	}
}

func (s *clientScreen) sync(cm *manager.ClientManager) {
	clients := cm.Clients()
	rows := make([]table.Row, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, table.Row{
			strconv.FormatInt(c.ID, 10),
			fitText(c.NationalID, 14),
			fitText(c.Name, 24),
			c.BirthDate,
		})
	}
	s.table.SetRows(rows)
	clampCursor(&s.table, len(rows))

	form := cm.Form()
	setValueIfChanged(&s.inputs[clientInputNationalID], form.NationalID)
	setValueIfChanged(&s.inputs[clientInputName], form.Name)
	setValueIfChanged(&s.inputs[clientInputBirthDate], form.BirthDate)
}

func (s clientScreen) selected(cm *manager.ClientManager) (models.Client, bool) {
	clients := cm.Clients()
	idx := s.table.Cursor()
	if idx < 0 || idx >= len(clients) {
		return models.Client{}, false
	}
	return clients[idx], true
}

func (s *clientScreen) focusForm(idx int) {
	s.focus = focusForm
	s.table.Blur()
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.inputIdx = idx
	s.inputs[idx].Focus()
}

func (s *clientScreen) focusTable() {
	s.focus = focusTable
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.table.Focus()
}

func (s clientScreen) updateInput(msg tea.Msg) (clientScreen, tea.Cmd) {
	if s.focus != focusForm {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.inputIdx], cmd = s.inputs[s.inputIdx].Update(msg)
	return s, cmd
}

func (m consoleModel) updateClients(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cv := &m.clientView

	if cv.focus == focusForm {
		switch {
		case key.Matches(msg, keys.tab):
			if cv.inputIdx == len(cv.inputs)-1 {
				cv.focusTable()
			} else {
				cv.focusForm(cv.inputIdx + 1)
			}
			return m, nil
		case key.Matches(msg, keys.backtab):
			if cv.inputIdx == 0 {
				cv.focusTable()
			} else {
				cv.focusForm(cv.inputIdx - 1)
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			form := cv.formValue()
			if _, editing := m.clients.Editing(); editing {
				return m, m.clients.CommitEdit(form)
			}
			return m, m.clients.Create(form)
		case key.Matches(msg, keys.esc):
			if _, editing := m.clients.Editing(); editing {
				m.clients.CancelEdit()
				cv.sync(m.clients)
				return m, nil
			}
			cv.focusTable()
			return m, nil
		}

		var cmd tea.Cmd
		m.clientView, cmd = m.clientView.updateInput(msg)
		m.clients.SetForm(m.clientView.formValue())
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.tab):
		cv.focusForm(0)
		return m, nil
	case key.Matches(msg, keys.backtab):
		cv.focusForm(len(cv.inputs) - 1)
		return m, nil
	case key.Matches(msg, keys.edit):
		if c, ok := cv.selected(m.clients); ok {
			m.clients.BeginEdit(c)
			cv.sync(m.clients)
			cv.focusForm(0)
		}
		return m, nil
	case key.Matches(msg, keys.esc):
		if _, editing := m.clients.Editing(); editing {
			m.clients.CancelEdit()
			cv.sync(m.clients)
		}
		return m, nil
	case key.Matches(msg, keys.delete):
		if c, ok := cv.selected(m.clients); ok {
			m.askDelete(confirmClient, c.ID, c.Name)
		}
		return m, nil
	case key.Matches(msg, keys.accounts):
		c, ok := cv.selected(m.clients)
		if !ok {
			return m, nil
		}
		cmd := m.clients.ViewAccounts(c)
		m.accountView = newAccountModal()
		m.accountView.sync(m.clients.Accounts())
		return m, cmd
	case key.Matches(msg, keys.sort):
		return m, m.clients.ToggleSortDirection()
	case key.Matches(msg, keys.refresh):
		return m, m.clients.Refresh()
	case key.Matches(msg, keys.copy):
		if c, ok := cv.selected(m.clients); ok {
			return m, copyCmd(c.NationalID)
		}
		return m, nil
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	}

	var cmd tea.Cmd
	cv.table, cmd = cv.table.Update(msg)
	return m, cmd
}

func (s clientScreen) view(cm *manager.ClientManager, spin, status string, h help.Model) string {
	var b strings.Builder

	edited, editing := cm.Editing()
	if editing {
		b.WriteString(fmt.Sprintf("Editing client #%d\n", edited.ID))
	} else {
		b.WriteString("New client\n")
	}
	for i, in := range s.inputs {
		label := labelStyle.Render(clientInputLabels[i])
		if s.focus == focusForm && i == s.inputIdx {
			label = focusedStyle.Render(labelStyle.Render(clientInputLabels[i]))
		}
		b.WriteString(label + " " + in.View() + "\n")
	}
	action := "[Create]"
	if editing {
		action = "[Update]  esc: cancel"
	}
	b.WriteString(labelStyle.Render("") + " " + action + "\n\n")

	// The toggle names the order it will switch to.
	b.WriteString(helpStyle.Render("o: sort " + cm.Direction().Toggle().String()))
	b.WriteString("\n")

	if len(cm.Clients()) == 0 && !cm.Loading() {
		b.WriteString("No clients\n")
	} else {
		b.WriteString(s.table.View())
		b.WriteString("\n")
	}

	if n := cm.Notice(); n.Level == manager.NoticeInfo {
		b.WriteString("\n" + renderNotice(n))
	}
	if status != "" {
		b.WriteString("\n" + infoStyle.Render(status))
	}

	title := "CLIENTS"
	if cm.Loading() {
		title += "  " + spin
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), helpStyle.Render(h.View(clientHelp{})))
}

func setValueIfChanged(in *textinput.Model, v string) {
	if in.Value() != v {
		in.SetValue(v)
	}
}

func clampCursor(t *table.Model, n int) {
	if n == 0 {
		t.SetCursor(0)
		return
	}
	if t.Cursor() >= n {
		t.SetCursor(n - 1)
	}
}
