package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// UserRecordSuite tests lenient decoding of untrusted upstream payloads.
type UserRecordSuite struct {
	suite.Suite
}

func TestUserRecordSuite(t *testing.T) {
	suite.Run(t, new(UserRecordSuite))
}

func (s *UserRecordSuite) TestDecodeFullRecord() {
	body := []byte(`[{
		"id": 7,
		"name": "Kurtis Weissnat",
		"username": "Elwyn.Skiles",
		"email": "Telly.Hoeger@billy.biz",
		"address": {"city": "Howemouth", "zipcode": "58804-1099"},
		"company": {"name": "Johns Group"}
	}]`)

	users, err := DecodeUserList(body)
	s.Require().NoError(err)
	s.Require().Len(users, 1)

	u := users[0]
	s.Require().NotNil(u.ID)
	s.Equal(int64(7), *u.ID)
	s.Equal("Kurtis Weissnat", *u.Name)
	s.Equal("Elwyn.Skiles", *u.Username)
	s.Equal("Telly.Hoeger@billy.biz", *u.Email)
	s.Require().NotNil(u.City())
	s.Equal("Howemouth", *u.City())
}

func (s *UserRecordSuite) TestDecodeMissingFields() {
	users, err := DecodeUserList([]byte(`[{}]`))
	s.Require().NoError(err)
	s.Require().Len(users, 1)

	u := users[0]
	s.Nil(u.ID)
	s.Nil(u.Name)
	s.Nil(u.Username)
	s.Nil(u.Email)
	s.Nil(u.City())
}

func (s *UserRecordSuite) TestDecodeMistypedFieldsTreatedAsAbsent() {
	body := []byte(`[{
		"id": "not-a-number",
		"name": 42,
		"email": ["x"],
		"address": "downtown"
	}]`)

	users, err := DecodeUserList(body)
	s.Require().NoError(err)
	s.Require().Len(users, 1)

	u := users[0]
	s.Nil(u.ID)
	s.Nil(u.Name)
	s.Nil(u.Email)
	s.Nil(u.City())
}

func (s *UserRecordSuite) TestDecodeRejectsNonArray() {
	_, err := DecodeUserList([]byte(`{"users": []}`))
	s.Require().Error(err)
}

func (s *UserRecordSuite) TestDecodeRejectsNonObjectElement() {
	_, err := DecodeUserList([]byte(`[1, 2, 3]`))
	s.Require().Error(err)
}

func (s *UserRecordSuite) TestDecodeEmptyArray() {
	users, err := DecodeUserList([]byte(`[]`))
	s.Require().NoError(err)
	s.Empty(users)
}
