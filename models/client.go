// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Client is a customer record managed through the admin console.
//
// ID is assigned by the server on creation and never changes afterwards.
// BirthDate is an ISO calendar date in the "2006-01-02" layout.
type Client struct {
	ID         int64  `json:"id,omitempty" db:"id"`
	NationalID string `json:"nationalId" db:"national_id"`
	Name       string `json:"name" db:"name"`
	BirthDate  string `json:"birthDate" db:"birth_date"`
}
