package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError_MessageAndUnwrap(t *testing.T) {
	underlying := errors.New("dial tcp: connection refused")
	err := NewFetchError(KindNetworkUnreachable, "failed to execute request", underlying)

	assert.Contains(t, err.Error(), "network_unreachable")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, underlying, errors.Unwrap(err))
}

func TestNewHTTPStatusError(t *testing.T) {
	err := NewHTTPStatusError(500, "Internal Server Error")

	assert.Equal(t, KindHTTPStatus, err.Kind)
	assert.Equal(t, 500, err.StatusCode)
	assert.Equal(t, "500: Internal Server Error", err.Message)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("refresh: %w", NewFetchError(KindTimeout, "request timeout", nil))

	assert.Equal(t, KindTimeout, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestFetchOutcome(t *testing.T) {
	ok := Success(nil)
	assert.False(t, ok.Failed())

	bad := Failure(NewFetchError(KindUnknown, "boom", nil))
	assert.True(t, bad.Failed())
}
