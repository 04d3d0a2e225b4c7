package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/client-admin/internal/config"
	"github.com/MKhiriev/client-admin/internal/logger"
	"github.com/MKhiriev/client-admin/internal/utils"
	"github.com/MKhiriev/client-admin/models"
)

const (
	clientsPath  = "/clients"
	accountsPath = "/accounts"
)

type httpRemoteService struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteService constructs an HTTP/REST implementation of
// [RemoteService]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies adapterCfg.RequestTimeout to every call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteService(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpRemoteService{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListClients implements [RemoteService]: GET /clients, 200 with a JSON array.
func (h *httpRemoteService) ListClients(ctx context.Context) ([]models.Client, error) {
	const op = "list clients"

	resp, err := h.client.R().
		SetContext(ctx).
		Get(clientsPath)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if err = expectStatus(op, resp, http.StatusOK); err != nil {
		return nil, err
	}

	clients := make([]models.Client, 0)
	if err = json.Unmarshal(resp.Body(), &clients); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrDecodeResponse, err)
	}

	return clients, nil
}

// CreateClient implements [RemoteService]: POST /clients, 200 with the
// created client.
func (h *httpRemoteService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	const op = "create client"

	client.ID = 0
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(client).
		Post(clientsPath)
	if err != nil {
		return models.Client{}, &NetworkError{Op: op, Err: err}
	}
	if err = expectStatus(op, resp, http.StatusOK); err != nil {
		return models.Client{}, err
	}

	var created models.Client
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &created); err != nil {
			return models.Client{}, fmt.Errorf("%s: %w: %w", op, ErrDecodeResponse, err)
		}
	}

	return created, nil
}

// UpdateClient implements [RemoteService]: PUT /clients/{id}, 200.
func (h *httpRemoteService) UpdateClient(ctx context.Context, client models.Client) error {
	const op = "update client"

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(client).
		Put(idPath(clientsPath, client.ID))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	return expectStatus(op, resp, http.StatusOK)
}

// DeleteClient implements [RemoteService]: DELETE /clients/{id}, 200.
func (h *httpRemoteService) DeleteClient(ctx context.Context, id int64) error {
	const op = "delete client"

	resp, err := h.client.R().
		SetContext(ctx).
		Delete(idPath(clientsPath, id))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	return expectStatus(op, resp, http.StatusOK)
}

// ListAccounts implements [RemoteService]: GET /accounts?clientId={id}, 200
// with a JSON array.
func (h *httpRemoteService) ListAccounts(ctx context.Context, clientID int64) ([]models.Account, error) {
	const op = "list accounts"

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("clientId", strconv.FormatInt(clientID, 10)).
		Get(accountsPath)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if err = expectStatus(op, resp, http.StatusOK); err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0)
	if err = json.Unmarshal(resp.Body(), &accounts); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrDecodeResponse, err)
	}

	return accounts, nil
}

// CreateAccount implements [RemoteService]: POST /accounts, 201 with the
// created account.
func (h *httpRemoteService) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	const op = "create account"

	account.ID = 0
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		Post(accountsPath)
	if err != nil {
		return models.Account{}, &NetworkError{Op: op, Err: err}
	}
	if err = expectStatus(op, resp, http.StatusCreated); err != nil {
		return models.Account{}, err
	}

	var created models.Account
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &created); err != nil {
			return models.Account{}, fmt.Errorf("%s: %w: %w", op, ErrDecodeResponse, err)
		}
	}

	return created, nil
}

// UpdateAccount implements [RemoteService]: PUT /accounts/{id}, 204.
func (h *httpRemoteService) UpdateAccount(ctx context.Context, account models.Account) error {
	const op = "update account"

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		Put(idPath(accountsPath, account.ID))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	return expectStatus(op, resp, http.StatusNoContent)
}

// DeleteAccount implements [RemoteService]: DELETE /accounts/{id}, 204.
func (h *httpRemoteService) DeleteAccount(ctx context.Context, id int64) error {
	const op = "delete account"

	resp, err := h.client.R().
		SetContext(ctx).
		Delete(idPath(accountsPath, id))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	return expectStatus(op, resp, http.StatusNoContent)
}

func idPath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}
