// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/client-admin/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned identifier; it must be positive.
	FieldID = "id"

	// FieldNationalID targets the client's national identity number.
	FieldNationalID = "national_id"

	// FieldName targets the display name of a client or account.
	FieldName = "name"

	// FieldBirthDate targets the client's birth date.
	FieldBirthDate = "birth_date"

	// FieldClientID targets the owning client of an account.
	FieldClientID = "client_id"
)

// BirthDateLayout is the only accepted birth date format.
const BirthDateLayout = time.DateOnly

// RecordValidator implements [Validator] for [models.Client] and
// [models.Account]. Both value and pointer forms are accepted.
type RecordValidator struct {
	now func() time.Time
}

// NewRecordValidator constructs a RecordValidator and returns it as the
// Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{now: time.Now}
}

// Validate dispatches on the dynamic type of obj. Without fields, a client
// is checked for national ID, name and birth date and an account for name
// and client id; the id is only checked when asked for.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Client:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		return v.validateClient(ctx, *value, fields...)

	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateClient(_ context.Context, client models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNationalID, FieldName, FieldBirthDate}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if client.ID <= 0 {
				return ErrInvalidID
			}
		case FieldNationalID:
			if strings.TrimSpace(client.NationalID) == "" {
				return ErrEmptyNationalID
			}
		case FieldName:
			if strings.TrimSpace(client.Name) == "" {
				return ErrEmptyName
			}
		case FieldBirthDate:
			if err := v.validateBirthDate(client.BirthDate); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RecordValidator) validateAccount(_ context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldClientID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if account.ID <= 0 {
				return ErrInvalidID
			}
		case FieldName:
			if strings.TrimSpace(account.Name) == "" {
				return ErrEmptyName
			}
		case FieldClientID:
			if account.ClientID <= 0 {
				return ErrInvalidClientID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RecordValidator) validateBirthDate(value string) error {
	if value == "" {
		return ErrEmptyBirthDate
	}

	date, err := time.Parse(BirthDateLayout, value)
	if err != nil {
		return ErrInvalidBirthDate
	}
	if date.After(v.now()) {
		return ErrBirthDateInFuture
	}

	return nil
}
