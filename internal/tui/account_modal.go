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

// accountModal holds the widgets of the accounts sub-view. A fresh modal is
// built every time the sub-view opens.
type accountModal struct {
	table table.Model
	input textinput.Model
	focus focusArea
}

func newAccountModal() accountModal {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Name", Width: 30},
		}),
		table.WithHeight(8),
		table.WithFocused(true),
	)
	t.SetStyles(table.DefaultStyles())

	name := textinput.New()
	name.Placeholder = "Account name"
	name.Width = 30

	return accountModal{table: t, input: name, focus: focusTable}
}

func (a accountModal) formValue() manager.AccountForm {
	return manager.AccountForm{Name: a.input.Value()}
}

func (a *accountModal) sync(am *manager.AccountManager) {
	if am == nil {
		return
	}

	accounts := am.Accounts()
	rows := make([]table.Row, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, table.Row{strconv.FormatInt(acc.ID, 10), fitText(acc.Name, 30)})
	}
	a.table.SetRows(rows)
	clampCursor(&a.table, len(rows))

	setValueIfChanged(&a.input, am.Form().Name)
}

func (a accountModal) selected(am *manager.AccountManager) (models.Account, bool) {
	accounts := am.Accounts()
	idx := a.table.Cursor()
	if idx < 0 || idx >= len(accounts) {
		return models.Account{}, false
	}
	return accounts[idx], true
}

func (a *accountModal) focusForm() {
	a.focus = focusForm
	a.table.Blur()
	a.input.Focus()
}

func (a *accountModal) focusTable() {
	a.focus = focusTable
	a.input.Blur()
	a.table.Focus()
}

func (a accountModal) updateInput(msg tea.Msg) (accountModal, tea.Cmd) {
	if a.focus != focusForm {
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (m consoleModel) updateAccounts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	am := m.clients.Accounts()
	av := &m.accountView

	if av.focus == focusForm {
		switch {
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			av.focusTable()
			return m, nil
		case key.Matches(msg, keys.enter):
			form := av.formValue()
			if _, editing := am.Editing(); editing {
				return m, am.CommitEdit(form)
			}
			return m, am.Create(form)
		case key.Matches(msg, keys.esc):
			if _, editing := am.Editing(); editing {
				am.CancelEdit()
				av.sync(am)
				return m, nil
			}
			av.focusTable()
			return m, nil
		}

		var cmd tea.Cmd
		m.accountView, cmd = m.accountView.updateInput(msg)
		am.SetForm(m.accountView.formValue())
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		av.focusForm()
		return m, nil
	case key.Matches(msg, keys.edit):
		if acc, ok := av.selected(am); ok {
			am.BeginEdit(acc)
			av.sync(am)
			av.focusForm()
		}
		return m, nil
	case key.Matches(msg, keys.delete):
		if acc, ok := av.selected(am); ok {
			m.askDelete(confirmAccount, acc.ID, acc.Name)
		}
		return m, nil
	case key.Matches(msg, keys.refresh):
		return m, am.Refresh()
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.esc):
		if _, editing := am.Editing(); editing {
			am.CancelEdit()
			av.sync(am)
			return m, nil
		}
		m.clients.CloseAccounts()
		m.clientView.sync(m.clients)
		return m, nil
	}

	var cmd tea.Cmd
	av.table, cmd = av.table.Update(msg)
	return m, cmd
}

func (a accountModal) view(am *manager.AccountManager, owner models.Client, spin string, h help.Model) string {
	var b strings.Builder

	title := fmt.Sprintf("ACCOUNTS OF %s (#%d)", owner.Name, owner.ID)
	if am.Loading() {
		title += "  " + spin
	}

	edited, editing := am.Editing()
	label := labelStyle.Render("Name")
	if a.focus == focusForm {
		label = focusedStyle.Render(label)
	}
	if editing {
		b.WriteString(fmt.Sprintf("Editing account #%d\n", edited.ID))
	} else {
		b.WriteString("New account\n")
	}
	b.WriteString(label + " " + a.input.View() + "\n")
	if editing {
		b.WriteString(labelStyle.Render("") + " [Update]  esc: cancel\n\n")
	} else {
		b.WriteString(labelStyle.Render("") + " [Create]\n\n")
	}

	if len(am.Accounts()) == 0 && !am.Loading() {
		b.WriteString("No accounts\n")
	} else {
		b.WriteString(a.table.View())
		b.WriteString("\n")
	}

	if n := am.Notice(); n.Level == manager.NoticeInfo {
		b.WriteString("\n" + renderNotice(n))
	}

	page := renderPage(title, strings.TrimRight(b.String(), "\n"), helpStyle.Render(h.View(accountHelp{})))
	return overlayBoxStyle.Render(page)
}
