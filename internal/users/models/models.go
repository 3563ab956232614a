// Package models defines the user record data model and the classified
// outcome type produced by one fetch attempt.
package models

import (
	"encoding/json"
	"errors"
)

// UserRecord is one fetched entity. All fields are optional, untrusted input
// from the upstream API; nil means the field was absent or not usable as its
// expected type. Records are built fresh per fetch and never mutated.
type UserRecord struct {
	ID       *int64
	Name     *string
	Username *string
	Email    *string
	Address  *Address
}

// Address carries the optional nested location fields of a user record.
type Address struct {
	City *string
}

var errNotObject = errors.New("element is not a JSON object")

// UnmarshalJSON decodes a user record leniently: unknown fields are ignored
// and a field of an unexpected type is treated as absent rather than failing
// the whole payload. Only a non-object element is rejected.
func (u *UserRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errNotObject
	}

	u.ID = asInt64(fields["id"])
	u.Name = asString(fields["name"])
	u.Username = asString(fields["username"])
	u.Email = asString(fields["email"])

	if raw, ok := fields["address"]; ok {
		var nested map[string]json.RawMessage
		if json.Unmarshal(raw, &nested) == nil {
			u.Address = &Address{City: asString(nested["city"])}
		}
	}
	return nil
}

// City resolves the optional nested city field, nil when any link is missing.
func (u UserRecord) City() *string {
	if u.Address == nil {
		return nil
	}
	return u.Address.City
}

func asString(raw json.RawMessage) *string {
	if raw == nil {
		return nil
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return &s
}

func asInt64(raw json.RawMessage) *int64 {
	if raw == nil {
		return nil
	}
	var n int64
	if json.Unmarshal(raw, &n) != nil {
		return nil
	}
	return &n
}

// DecodeUserList parses a response body expected to be a JSON array of
// objects. Any other top-level shape is an error; element contents are
// resolved leniently at render time, not here.
func DecodeUserList(body []byte) ([]UserRecord, error) {
	var users []UserRecord
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, err
	}
	return users, nil
}
