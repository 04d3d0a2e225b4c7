package manager

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/client-admin/internal/adapter"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

type updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// drive runs cmd and every follow-up command synchronously, feeding each
// result message back into m. It mimics the bubbletea loop one step at a
// time.
func drive(t *testing.T, m updater, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 10 {
			t.Fatal("command chain did not settle")
		}
		cmd = m.Update(cmd())
	}
}

func newClientManager(t *testing.T) (*ClientManager, *mock.MockRemoteService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteService(ctrl)
	return NewClientManager(remote, logger.Nop()), remote
}

func statusErr(op string, got, want int) error {
	return &adapter.UnexpectedStatusError{Op: op, StatusCode: got, Want: want, Body: http.StatusText(got)}
}

var errRefused = &adapter.NetworkError{Op: "list clients", Err: errors.New("connection refused")}
