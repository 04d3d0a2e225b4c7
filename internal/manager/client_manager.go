package manager

import (
	"context"
	"slices"

	"github.com/MKhiriev/client-admin/internal/adapter"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ClientManager owns the client list, the create/edit form, the sort order
// and the account sub-view. All methods must be called from the bubbletea
// event loop.
type ClientManager struct {
	remote adapter.RemoteService
	logger *logger.Logger

	clients   []models.Client
	direction SortDirection

	form    ClientForm
	editing *models.Client
	// draft is the form content that BeginEdit replaced.
	draft ClientForm

	selected *models.Client
	accounts *AccountManager

	pending int
	notice  Notice
}

// NewClientManager returns a manager with an empty list sorted ascending.
// Call Init to load the list.
func NewClientManager(remote adapter.RemoteService, logger *logger.Logger) *ClientManager {
	return &ClientManager{
		remote:    remote,
		logger:    logger,
		clients:   []models.Client{},
		direction: Ascending,
	}
}

// Init loads the client list.
func (m *ClientManager) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh fetches every client. The result replaces the whole list.
func (m *ClientManager) Refresh() tea.Cmd {
	m.pending++
	remote := m.remote
	return func() tea.Msg {
		clients, err := remote.ListClients(context.Background())
		return ClientsLoadedMsg{Clients: clients, Err: err}
	}
}

// ToggleSortDirection flips the sort order and reloads the list.
func (m *ClientManager) ToggleSortDirection() tea.Cmd {
	m.direction = m.direction.Toggle()
	return m.Refresh()
}

// Create submits form as a new client. The form is kept until the server
// accepts it.
func (m *ClientManager) Create(form ClientForm) tea.Cmd {
	m.form = form
	m.pending++
	remote := m.remote
	client := form.toClient(0)
	return func() tea.Msg {
		created, err := remote.CreateClient(context.Background(), client)
		return ClientCreatedMsg{Client: created, Err: err}
	}
}

// BeginEdit puts client in edit mode and copies its fields into the form.
func (m *ClientManager) BeginEdit(client models.Client) {
	if m.editing == nil {
		m.draft = m.form
	}
	c := client
	m.editing = &c
	m.form = clientFormFrom(client)
}

// CancelEdit leaves edit mode without contacting the server. The form is not
// cleared: it goes back to the draft it held before BeginEdit, which is empty
// unless the user had started typing a new client.
func (m *ClientManager) CancelEdit() {
	if m.editing == nil {
		return
	}
	m.editing = nil
	m.form = m.draft
	m.draft = ClientForm{}
}

// CommitEdit submits form as the full replacement of the client in edit
// mode. Edit mode ends when the response arrives, whatever its outcome.
// Without an active edit it does nothing.
func (m *ClientManager) CommitEdit(form ClientForm) tea.Cmd {
	if m.editing == nil {
		return nil
	}

	m.form = form
	m.pending++
	remote := m.remote
	client := form.toClient(m.editing.ID)
	return func() tea.Msg {
		err := remote.UpdateClient(context.Background(), client)
		return ClientUpdatedMsg{ID: client.ID, Err: err}
	}
}

// Delete removes the client with id. The list is reloaded only on success.
func (m *ClientManager) Delete(id int64) tea.Cmd {
	m.pending++
	remote := m.remote
	return func() tea.Msg {
		err := remote.DeleteClient(context.Background(), id)
		return ClientDeletedMsg{ID: id, Err: err}
	}
}

// ViewAccounts opens the account sub-view for client. Any previous
// sub-view is dropped and a fresh AccountManager starts loading.
func (m *ClientManager) ViewAccounts(client models.Client) tea.Cmd {
	c := client
	m.selected = &c
	m.accounts = NewAccountManager(m.remote, m.logger, client.ID)
	return m.accounts.Init()
}

// CloseAccounts hides the account sub-view and drops its manager.
func (m *ClientManager) CloseAccounts() {
	m.selected = nil
	m.accounts = nil
}

// SetForm stores what the user has typed so far.
func (m *ClientManager) SetForm(form ClientForm) {
	m.form = form
}

// DismissNotice clears the current notice.
func (m *ClientManager) DismissNotice() {
	m.notice = Notice{}
}

// Update applies a result message and returns a follow-up command, if any.
// Account messages are forwarded to the open sub-view.
func (m *ClientManager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ClientsLoadedMsg:
		m.done()
		if msg.Err != nil {
			m.fail("load clients", msg.Err)
			return nil
		}
		clients := slices.Clone(msg.Clients)
		if clients == nil {
			clients = []models.Client{}
		}
		sortClients(clients, m.direction)
		m.clients = clients
		return nil

	case ClientCreatedMsg:
		m.done()
		if msg.Err != nil {
			m.fail("create client", msg.Err)
			return nil
		}
		m.form = ClientForm{}
		m.notice = infoNotice("client created")
		return m.Refresh()

	case ClientUpdatedMsg:
		m.done()
		stillEditing := m.editing != nil && m.editing.ID == msg.ID
		if stillEditing {
			m.editing = nil
			m.draft = ClientForm{}
		}
		if msg.Err != nil {
			m.fail("update client", msg.Err)
			return nil
		}
		if stillEditing {
			m.form = ClientForm{}
		}
		m.notice = infoNotice("client updated")
		return m.Refresh()

	case ClientDeletedMsg:
		m.done()
		if msg.Err != nil {
			m.fail("delete client", msg.Err)
			return nil
		}
		if m.editing != nil && m.editing.ID == msg.ID {
			m.CancelEdit()
		}
		if m.selected != nil && m.selected.ID == msg.ID {
			m.CloseAccounts()
		}
		m.notice = infoNotice("client deleted")
		return m.Refresh()

	case AccountsLoadedMsg, AccountCreatedMsg, AccountUpdatedMsg, AccountDeletedMsg:
		if m.accounts == nil {
			return nil
		}
		return m.accounts.Update(msg)
	}

	return nil
}

func (m *ClientManager) done() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m *ClientManager) fail(op string, err error) {
	m.logger.Error().Err(err).Str("op", op).Msg("remote call failed")
	m.notice = errorNotice("could not "+op, err)
}

// Clients returns the list as last fetched, in the current sort order.
func (m *ClientManager) Clients() []models.Client {
	return slices.Clone(m.clients)
}

// Direction returns the current sort direction.
func (m *ClientManager) Direction() SortDirection {
	return m.direction
}

// Form returns the current form content.
func (m *ClientManager) Form() ClientForm {
	return m.form
}

// Editing returns the client in edit mode, if any.
func (m *ClientManager) Editing() (models.Client, bool) {
	if m.editing == nil {
		return models.Client{}, false
	}
	return *m.editing, true
}

// AccountsVisible reports whether the account sub-view is open.
func (m *ClientManager) AccountsVisible() bool {
	return m.accounts != nil
}

// Selected returns the client whose accounts are shown, if any.
func (m *ClientManager) Selected() (models.Client, bool) {
	if m.selected == nil {
		return models.Client{}, false
	}
	return *m.selected, true
}

// Accounts returns the sub-view manager, or nil when it is closed.
func (m *ClientManager) Accounts() *AccountManager {
	return m.accounts
}

// Loading reports whether a client request is in flight.
func (m *ClientManager) Loading() bool {
	return m.pending > 0
}

// Notice returns the last user-visible message.
func (m *ClientManager) Notice() Notice {
	return m.notice
}
