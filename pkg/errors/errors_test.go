package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrEmpty, "path is empty")
	assert.Equal(t, ErrEmpty, err.Code)
	assert.Equal(t, "[EMPTY] path is empty", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrInvalidExpansion, "cannot expand %q", "foo~")
	assert.Equal(t, ErrInvalidExpansion, err.Code)
	assert.Contains(t, err.Error(), `cannot expand "foo~"`)
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := Wrap(inner, ErrCwdAccess, "failed to get working directory")
	assert.Equal(t, ErrCwdAccess, err.Code)
	assert.Equal(t, inner, err.Unwrap())
	assert.Contains(t, err.Error(), "boom")

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, ErrCwdAccess, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCwdAccess, "ignored %d", 1))
}

func TestIs(t *testing.T) {
	err := New(ErrParentNotFound, "no parent")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, errors.Is(wrapped, New(ErrParentNotFound, "different message")))
	assert.False(t, errors.Is(wrapped, New(ErrEmpty, "no parent")))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrMultipleHomeSymbols, "more than one ~")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsErrorCode(err, ErrMultipleHomeSymbols))
	assert.True(t, IsErrorCode(wrapped, ErrMultipleHomeSymbols))
	assert.False(t, IsErrorCode(err, ErrInvalidExpansion))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrMultipleHomeSymbols))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrVarNotFound, GetErrorCode(New(ErrVarNotFound, "missing")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrInvalidExpansion, "bad reference").WithDetail("path", "/foo/${BAR")
	details := GetErrorDetails(err)
	assert.Equal(t, "/foo/${BAR", details["path"])

	err = err.WithDetails(map[string]interface{}{"var": "BAR"})
	assert.Equal(t, "BAR", err.Details["var"])

	assert.Nil(t, GetErrorDetails(fmt.Errorf("plain")))
}
