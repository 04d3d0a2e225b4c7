package manager

import "github.com/MKhiriev/client-admin/models"

// ClientsLoadedMsg carries the result of a client list fetch.
type ClientsLoadedMsg struct {
	Clients []models.Client
	Err     error
}

// ClientCreatedMsg carries the result of a client create.
type ClientCreatedMsg struct {
	Client models.Client
	Err    error
}

// ClientUpdatedMsg carries the result of a client edit-commit.
type ClientUpdatedMsg struct {
	ID  int64
	Err error
}

// ClientDeletedMsg carries the result of a client delete.
type ClientDeletedMsg struct {
	ID  int64
	Err error
}

// AccountsLoadedMsg carries the result of an account list fetch for ClientID.
type AccountsLoadedMsg struct {
	ClientID int64
	Accounts []models.Account
	Err      error
}

// AccountCreatedMsg carries the result of an account create for ClientID.
type AccountCreatedMsg struct {
	ClientID int64
	Account  models.Account
	Err      error
}

// AccountUpdatedMsg carries the result of an account edit-commit.
type AccountUpdatedMsg struct {
	ClientID int64
	ID       int64
	Err      error
}

// AccountDeletedMsg carries the result of an account delete.
type AccountDeletedMsg struct {
	ClientID int64
	ID       int64
	Err      error
}
