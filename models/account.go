// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a financial account owned by exactly one [Client].
//
// ClientID is the owning client's identifier; it is set on creation and is
// never edited by the user.
type Account struct {
	ID       int64  `json:"id,omitempty" db:"id"`
	Name     string `json:"name" db:"name"`
	ClientID int64  `json:"clientId" db:"client_id"`
}
