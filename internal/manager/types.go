package manager

import (
	"cmp"
	"errors"
	"slices"

	"github.com/MKhiriev/client-admin/internal/adapter"
	"github.com/MKhiriev/client-admin/models"
)

// SortDirection is the order in which clients are listed by ID.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d SortDirection) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// sortClients orders clients by ID in place. Equal IDs keep server order.
func sortClients(clients []models.Client, dir SortDirection) {
	slices.SortStableFunc(clients, func(a, b models.Client) int {
		if dir == Descending {
			return cmp.Compare(b.ID, a.ID)
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// NoticeLevel tells the UI how to render a [Notice].
type NoticeLevel int

const (
	NoticeNone NoticeLevel = iota
	NoticeInfo
	NoticeError
)

// Notice is the last user-visible message produced by a manager.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool {
	return n.Level == NoticeNone
}

func infoNotice(text string) Notice {
	return Notice{Level: NoticeInfo, Text: text}
}

// errorNotice describes a failed call. Transport failures get a short
// human-readable reason instead of the raw dial error.
func errorNotice(text string, err error) Notice {
	var netErr *adapter.NetworkError
	if errors.As(err, &netErr) {
		return Notice{Level: NoticeError, Text: text + ": server is unreachable"}
	}
	return Notice{Level: NoticeError, Text: text + ": " + err.Error()}
}

// ClientForm holds the editable client fields. Values are sent as typed; the
// server decides whether they are valid.
type ClientForm struct {
	NationalID string
	Name       string
	BirthDate  string
}

// IsEmpty reports whether every field is blank.
func (f ClientForm) IsEmpty() bool {
	return f == ClientForm{}
}

func clientFormFrom(c models.Client) ClientForm {
	return ClientForm{NationalID: c.NationalID, Name: c.Name, BirthDate: c.BirthDate}
}

func (f ClientForm) toClient(id int64) models.Client {
	return models.Client{ID: id, NationalID: f.NationalID, Name: f.Name, BirthDate: f.BirthDate}
}

// AccountForm holds the editable account fields.
type AccountForm struct {
	Name string
}

// IsEmpty reports whether every field is blank.
func (f AccountForm) IsEmpty() bool {
	return f == AccountForm{}
}
