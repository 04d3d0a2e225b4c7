package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/mock"
	"github.com/MKhiriev/client-admin/internal/service"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	clients  *mock.MockClientService
	accounts *mock.MockAccountService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler returns a handler over gomock services and its router.
func newTestHandler(t *testing.T) (*Handler, http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svcs := testServices{
		clients:  mock.NewMockClientService(ctrl),
		accounts: mock.NewMockAccountService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		ClientService:  svcs.clients,
		AccountService: svcs.accounts,
		AppInfoService: svcs.appInfo,
	}, logger.Nop())

	return h, h.Init(), svcs
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	if h.metrics == nil || h.traceIDs == nil || h.services == nil {
		t.Fatal("expected handler dependencies to be initialised")
	}
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func do(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
