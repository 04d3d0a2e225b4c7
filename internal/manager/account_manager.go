package manager

import (
	"context"
	"slices"

	"github.com/MKhiriev/client-admin/internal/adapter"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// AccountManager owns the account list and form for exactly one client. The
// client ID never changes; showing another client means a new manager.
type AccountManager struct {
	remote   adapter.RemoteService
	logger   *logger.Logger
	clientID int64

	accounts []models.Account

	form    AccountForm
	editing *models.Account
	draft   AccountForm

	pending int
	notice  Notice
}

// NewAccountManager returns a manager scoped to clientID. Call Init to load
// its accounts.
func NewAccountManager(remote adapter.RemoteService, logger *logger.Logger, clientID int64) *AccountManager {
	return &AccountManager{
		remote:   remote,
		logger:   logger.GetChildLogger(),
		clientID: clientID,
		accounts: []models.Account{},
	}
}

// Init loads the account list.
func (m *AccountManager) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh fetches the accounts of the client. Server order is kept.
func (m *AccountManager) Refresh() tea.Cmd {
	m.pending++
	remote, clientID := m.remote, m.clientID
	return func() tea.Msg {
		accounts, err := remote.ListAccounts(context.Background(), clientID)
		return AccountsLoadedMsg{ClientID: clientID, Accounts: accounts, Err: err}
	}
}

// Create submits form as a new account of the client.
func (m *AccountManager) Create(form AccountForm) tea.Cmd {
	m.form = form
	m.pending++
	remote, clientID := m.remote, m.clientID
	account := models.Account{Name: form.Name, ClientID: clientID}
	return func() tea.Msg {
		created, err := remote.CreateAccount(context.Background(), account)
		return AccountCreatedMsg{ClientID: clientID, Account: created, Err: err}
	}
}

// BeginEdit puts account in edit mode and copies its fields into the form.
func (m *AccountManager) BeginEdit(account models.Account) {
	if m.editing == nil {
		m.draft = m.form
	}
	a := account
	m.editing = &a
	m.form = AccountForm{Name: account.Name}
}

// CancelEdit leaves edit mode without contacting the server. The form is not
// cleared: it goes back to the draft it held before BeginEdit, which is empty
// unless the user had started typing a new account.
func (m *AccountManager) CancelEdit() {
	if m.editing == nil {
		return
	}
	m.editing = nil
	m.form = m.draft
	m.draft = AccountForm{}
}

// CommitEdit submits form as the full replacement of the account in edit
// mode. The owning client ID is always the manager's own.
func (m *AccountManager) CommitEdit(form AccountForm) tea.Cmd {
	if m.editing == nil {
		return nil
	}

	m.form = form
	m.pending++
	remote, clientID := m.remote, m.clientID
	account := models.Account{ID: m.editing.ID, Name: form.Name, ClientID: clientID}
	return func() tea.Msg {
		err := remote.UpdateAccount(context.Background(), account)
		return AccountUpdatedMsg{ClientID: clientID, ID: account.ID, Err: err}
	}
}

// Delete removes the account with id. The list is reloaded only on success.
func (m *AccountManager) Delete(id int64) tea.Cmd {
	m.pending++
	remote, clientID := m.remote, m.clientID
	return func() tea.Msg {
		err := remote.DeleteAccount(context.Background(), id)
		return AccountDeletedMsg{ClientID: clientID, ID: id, Err: err}
	}
}

// SetForm stores what the user has typed so far.
func (m *AccountManager) SetForm(form AccountForm) {
	m.form = form
}

// DismissNotice clears the current notice.
func (m *AccountManager) DismissNotice() {
	m.notice = Notice{}
}

// Update applies a result message. Messages addressed to another client are
// ignored.
func (m *AccountManager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AccountsLoadedMsg:
		if msg.ClientID != m.clientID {
			return nil
		}
		m.done()
		if msg.Err != nil {
			m.fail("load accounts", msg.Err)
			return nil
		}
		accounts := slices.Clone(msg.Accounts)
		if accounts == nil {
			accounts = []models.Account{}
		}
		m.accounts = accounts
		return nil

	case AccountCreatedMsg:
		if msg.ClientID != m.clientID {
			return nil
		}
		m.done()
		if msg.Err != nil {
			m.fail("create account", msg.Err)
			return nil
		}
		m.form = AccountForm{}
		m.notice = infoNotice("account created")
		return m.Refresh()

	case AccountUpdatedMsg:
		if msg.ClientID != m.clientID {
			return nil
		}
		m.done()
		stillEditing := m.editing != nil && m.editing.ID == msg.ID
		if stillEditing {
			m.editing = nil
			m.draft = AccountForm{}
		}
		if msg.Err != nil {
			m.fail("update account", msg.Err)
			return nil
		}
		if stillEditing {
			m.form = AccountForm{}
		}
		m.notice = infoNotice("account updated")
		return m.Refresh()

	case AccountDeletedMsg:
		if msg.ClientID != m.clientID {
			return nil
		}
		m.done()
		if msg.Err != nil {
			m.fail("delete account", msg.Err)
			return nil
		}
		if m.editing != nil && m.editing.ID == msg.ID {
			m.CancelEdit()
		}
		m.notice = infoNotice("account deleted")
		return m.Refresh()
	}

	return nil
}

func (m *AccountManager) done() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m *AccountManager) fail(op string, err error) {
	m.logger.Error().Err(err).Str("op", op).Int64("client_id", m.clientID).Msg("remote call failed")
	m.notice = errorNotice("could not "+op, err)
}

// ClientID returns the client this manager is scoped to.
func (m *AccountManager) ClientID() int64 {
	return m.clientID
}

// Accounts returns the list as last fetched.
func (m *AccountManager) Accounts() []models.Account {
	return slices.Clone(m.accounts)
}

// Form returns the current form content.
func (m *AccountManager) Form() AccountForm {
	return m.form
}

// Editing returns the account in edit mode, if any.
func (m *AccountManager) Editing() (models.Account, bool) {
	if m.editing == nil {
		return models.Account{}, false
	}
	return *m.editing, true
}

// Loading reports whether an account request is in flight.
func (m *AccountManager) Loading() bool {
	return m.pending > 0
}

// Notice returns the last user-visible message.
func (m *AccountManager) Notice() Notice {
	return m.notice
}
