package manager

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/client-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	ana = models.Client{ID: 1, NationalID: "1-9", Name: "Ana", BirthDate: "2000-01-01"}
	bo  = models.Client{ID: 2, NationalID: "2-7", Name: "Bo", BirthDate: "1990-05-05"}
	cy  = models.Client{ID: 3, NationalID: "3-5", Name: "Cy", BirthDate: "1985-12-31"}
)

func ids(clients []models.Client) []int64 {
	out := make([]int64, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.ID)
	}
	return out
}

// ── Refresh / sort ──────────────────────────────────────────────────────────

func TestClientManager_InitialState(t *testing.T) {
	m, _ := newClientManager(t)

	assert.Empty(t, m.Clients())
	assert.Equal(t, Ascending, m.Direction())
	assert.True(t, m.Form().IsEmpty())
	assert.False(t, m.AccountsVisible())
	assert.Nil(t, m.Accounts())
	assert.False(t, m.Loading())
	assert.True(t, m.Notice().IsZero())
	_, editing := m.Editing()
	assert.False(t, editing)
}

func TestClientManager_InitSortsAscending(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{bo, ana}, nil)

	cmd := m.Init()
	assert.True(t, m.Loading())
	drive(t, m, cmd)

	assert.False(t, m.Loading())
	assert.Equal(t, []int64{1, 2}, ids(m.Clients()))
}

func TestClientManager_ToggleReversesOrder(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{bo, ana}, nil).Times(2)

	drive(t, m, m.Refresh())
	require.Equal(t, []int64{1, 2}, ids(m.Clients()))

	drive(t, m, m.ToggleSortDirection())

	assert.Equal(t, Descending, m.Direction())
	assert.Equal(t, []int64{2, 1}, ids(m.Clients()))
}

func TestClientManager_ToggleTwiceRestoresAscending(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{cy, ana, bo}, nil).Times(2)

	drive(t, m, m.ToggleSortDirection())
	assert.Equal(t, []int64{3, 2, 1}, ids(m.Clients()))

	drive(t, m, m.ToggleSortDirection())
	assert.Equal(t, []int64{1, 2, 3}, ids(m.Clients()))
}

func TestClientManager_SortIsStable(t *testing.T) {
	m, remote := newClientManager(t)
	first := models.Client{ID: 4, Name: "first"}
	second := models.Client{ID: 4, Name: "second"}
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{first, ana, second}, nil)

	drive(t, m, m.Refresh())

	got := m.Clients()
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[1].Name)
	assert.Equal(t, "second", got[2].Name)
}

func TestClientManager_RefreshFailureKeepsList(t *testing.T) {
	m, remote := newClientManager(t)
	gomock.InOrder(
		remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{ana}, nil),
		remote.EXPECT().ListClients(gomock.Any()).Return(nil, errRefused),
	)

	drive(t, m, m.Refresh())
	drive(t, m, m.Refresh())

	assert.Equal(t, []int64{1}, ids(m.Clients()))
	assert.Equal(t, NoticeError, m.Notice().Level)
	assert.Contains(t, m.Notice().Text, "could not load clients")
	assert.False(t, m.Loading())
}

func TestClientManager_LastResponseWins(t *testing.T) {
	m, _ := newClientManager(t)

	m.Update(ClientsLoadedMsg{Clients: []models.Client{ana, bo, cy}})
	m.Update(ClientsLoadedMsg{Clients: []models.Client{bo}})

	assert.Equal(t, []int64{2}, ids(m.Clients()))
}

func TestClientManager_ClientsReturnsCopy(t *testing.T) {
	m, _ := newClientManager(t)
	m.Update(ClientsLoadedMsg{Clients: []models.Client{ana}})

	got := m.Clients()
	got[0].Name = "changed"

	assert.Equal(t, "Ana", m.Clients()[0].Name)
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestClientManager_CreateSuccess(t *testing.T) {
	m, remote := newClientManager(t)
	form := ClientForm{NationalID: "1-9", Name: "Ana", BirthDate: "2000-01-01"}

	remote.EXPECT().
		CreateClient(gomock.Any(), models.Client{NationalID: "1-9", Name: "Ana", BirthDate: "2000-01-01"}).
		Return(ana, nil)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{ana}, nil).Times(1)

	drive(t, m, m.Create(form))

	assert.True(t, m.Form().IsEmpty())
	assert.Equal(t, []int64{1}, ids(m.Clients()))
	assert.Equal(t, Notice{Level: NoticeInfo, Text: "client created"}, m.Notice())
	assert.False(t, m.Loading())
}

func TestClientManager_CreateFailureKeepsForm(t *testing.T) {
	m, remote := newClientManager(t)
	form := ClientForm{NationalID: "", Name: "Ana", BirthDate: "01/01/2000"}

	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{bo}, nil)
	drive(t, m, m.Refresh())

	remote.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
		Return(models.Client{}, statusErr("create client", http.StatusBadRequest, http.StatusOK))

	drive(t, m, m.Create(form))

	assert.Equal(t, form, m.Form())
	assert.Equal(t, []int64{2}, ids(m.Clients()))
	assert.Equal(t, NoticeError, m.Notice().Level)
	assert.Contains(t, m.Notice().Text, "could not create client")
}

// ── Edit ────────────────────────────────────────────────────────────────────

func TestClientManager_BeginEditCopiesFields(t *testing.T) {
	m, _ := newClientManager(t)

	m.BeginEdit(bo)

	got, editing := m.Editing()
	require.True(t, editing)
	assert.Equal(t, bo, got)
	assert.Equal(t, ClientForm{NationalID: "2-7", Name: "Bo", BirthDate: "1990-05-05"}, m.Form())
}

func TestClientManager_EditRoundTrip(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{bo, ana}, nil)
	drive(t, m, m.Refresh())

	draft := ClientForm{Name: "half typed"}
	m.SetForm(draft)
	listBefore := m.Clients()

	m.BeginEdit(ana)
	m.CancelEdit()

	assert.Equal(t, listBefore, m.Clients())
	assert.Equal(t, draft, m.Form())
	_, editing := m.Editing()
	assert.False(t, editing)
}

func TestClientManager_BeginEditTwiceKeepsOriginalDraft(t *testing.T) {
	m, _ := newClientManager(t)

	m.BeginEdit(ana)
	m.BeginEdit(bo)
	m.CancelEdit()

	assert.True(t, m.Form().IsEmpty())
}

func TestClientManager_CancelWithoutEditIsNoop(t *testing.T) {
	m, _ := newClientManager(t)
	m.SetForm(ClientForm{Name: "x"})

	m.CancelEdit()

	assert.Equal(t, ClientForm{Name: "x"}, m.Form())
}

func TestClientManager_CommitEditWithoutEditReturnsNil(t *testing.T) {
	m, _ := newClientManager(t)

	assert.Nil(t, m.CommitEdit(ClientForm{Name: "x"}))
}

func TestClientManager_CommitEditSuccess(t *testing.T) {
	m, remote := newClientManager(t)
	updated := models.Client{ID: 2, NationalID: "2-7", Name: "Bob", BirthDate: "1990-05-05"}

	remote.EXPECT().UpdateClient(gomock.Any(), updated).Return(nil)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{ana, updated}, nil).Times(1)

	m.BeginEdit(bo)
	drive(t, m, m.CommitEdit(ClientForm{NationalID: "2-7", Name: "Bob", BirthDate: "1990-05-05"}))

	_, editing := m.Editing()
	assert.False(t, editing)
	assert.True(t, m.Form().IsEmpty())
	assert.Equal(t, "Bob", m.Clients()[1].Name)
	assert.Equal(t, Notice{Level: NoticeInfo, Text: "client updated"}, m.Notice())
}

// TestClientManager_CommitEditFailureClearsEditMode checks that a failed
// commit leaves edit mode but keeps the typed values.
func TestClientManager_CommitEditFailureClearsEditMode(t *testing.T) {
	m, remote := newClientManager(t)
	form := ClientForm{NationalID: "2-7", Name: "Bob", BirthDate: "bad"}

	remote.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).
		Return(statusErr("update client", http.StatusBadRequest, http.StatusOK))

	m.BeginEdit(bo)
	drive(t, m, m.CommitEdit(form))

	_, editing := m.Editing()
	assert.False(t, editing)
	assert.Equal(t, form, m.Form())
	assert.Equal(t, NoticeError, m.Notice().Level)
}

func TestClientManager_CommitResultForOtherRecordKeepsNewEdit(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{ana, bo}, nil)

	m.BeginEdit(ana)
	cmd := m.CommitEdit(ClientForm{Name: "Ana B"})
	m.BeginEdit(bo)
	drive(t, m, cmd)

	got, editing := m.Editing()
	require.True(t, editing)
	assert.Equal(t, bo.ID, got.ID)
	assert.Equal(t, "Bo", m.Form().Name)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestClientManager_DeleteSuccessDropsRecord(t *testing.T) {
	m, remote := newClientManager(t)
	gomock.InOrder(
		remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{ana, bo}, nil),
		remote.EXPECT().DeleteClient(gomock.Any(), int64(2)).Return(nil),
		remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{ana}, nil),
	)

	drive(t, m, m.Refresh())
	drive(t, m, m.Delete(2))

	assert.Equal(t, []int64{1}, ids(m.Clients()))
	assert.Equal(t, Notice{Level: NoticeInfo, Text: "client deleted"}, m.Notice())
}

func TestClientManager_DeleteFailureKeepsRecordWithoutRefresh(t *testing.T) {
	m, remote := newClientManager(t)
	five := models.Client{ID: 5, Name: "Five"}

	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{five}, nil).Times(1)
	remote.EXPECT().DeleteClient(gomock.Any(), int64(5)).
		Return(statusErr("delete client", http.StatusInternalServerError, http.StatusOK))

	drive(t, m, m.Refresh())
	drive(t, m, m.Delete(5))

	assert.Equal(t, []int64{5}, ids(m.Clients()))
	assert.Equal(t, NoticeError, m.Notice().Level)
	assert.Contains(t, m.Notice().Text, "could not delete client")
}

func TestClientManager_DeleteEditedClientCancelsEdit(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().DeleteClient(gomock.Any(), int64(1)).Return(nil)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{}, nil)

	m.BeginEdit(ana)
	drive(t, m, m.Delete(1))

	_, editing := m.Editing()
	assert.False(t, editing)
	assert.True(t, m.Form().IsEmpty())
}

// ── Accounts sub-view ───────────────────────────────────────────────────────

func TestClientManager_ViewAccounts(t *testing.T) {
	m, remote := newClientManager(t)
	savings := models.Account{ID: 10, Name: "Savings", ClientID: 2}
	remote.EXPECT().ListAccounts(gomock.Any(), int64(2)).Return([]models.Account{savings}, nil)

	drive(t, m, m.ViewAccounts(bo))

	require.True(t, m.AccountsVisible())
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, bo, selected)
	assert.Equal(t, int64(2), m.Accounts().ClientID())
	assert.Equal(t, []models.Account{savings}, m.Accounts().Accounts())
}

func TestClientManager_CloseAccounts(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().ListAccounts(gomock.Any(), int64(2)).Return(nil, nil)

	drive(t, m, m.ViewAccounts(bo))
	m.CloseAccounts()

	assert.False(t, m.AccountsVisible())
	assert.Nil(t, m.Accounts())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestClientManager_RetargetIgnoresStaleAccounts(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().ListAccounts(gomock.Any(), int64(1)).
		Return([]models.Account{{ID: 1, Name: "old", ClientID: 1}}, nil)
	remote.EXPECT().ListAccounts(gomock.Any(), int64(2)).
		Return([]models.Account{{ID: 2, Name: "new", ClientID: 2}}, nil)

	staleCmd := m.ViewAccounts(ana)
	drive(t, m, m.ViewAccounts(bo))
	drive(t, m, staleCmd)

	assert.Equal(t, int64(2), m.Accounts().ClientID())
	assert.Equal(t, []models.Account{{ID: 2, Name: "new", ClientID: 2}}, m.Accounts().Accounts())
}

func TestClientManager_AccountMessageWithoutSubViewIsDropped(t *testing.T) {
	m, _ := newClientManager(t)

	cmd := m.Update(AccountsLoadedMsg{ClientID: 1})

	assert.Nil(t, cmd)
	assert.False(t, m.AccountsVisible())
}

func TestClientManager_DeleteSelectedClientClosesAccounts(t *testing.T) {
	m, remote := newClientManager(t)
	remote.EXPECT().ListAccounts(gomock.Any(), int64(2)).Return(nil, nil)
	remote.EXPECT().DeleteClient(gomock.Any(), int64(2)).Return(nil)
	remote.EXPECT().ListClients(gomock.Any()).Return([]models.Client{ana}, nil)

	drive(t, m, m.ViewAccounts(bo))
	drive(t, m, m.Delete(2))

	assert.False(t, m.AccountsVisible())
}

func TestClientManager_DismissNotice(t *testing.T) {
	m, _ := newClientManager(t)
	m.Update(ClientsLoadedMsg{Err: errRefused})
	require.False(t, m.Notice().IsZero())

	m.DismissNotice()

	assert.True(t, m.Notice().IsZero())
}
