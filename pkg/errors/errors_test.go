package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "profile not found",
			wantStr: "[NOT_FOUND] profile not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "index out of range",
			wantStr: "[INVALID_INPUT] index out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyExists, "file %q exists", "a.md")
	assert.Equal(t, `[ALREADY_EXISTS] file "a.md" exists`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, errors.Wrap(nil, errors.ErrInternal, "ignored"))
		assert.NoError(t, errors.Wrapf(nil, errors.ErrInternal, "ignored %d", 1))
	})

	t.Run("wrapped error is reachable", func(t *testing.T) {
		base := stderrors.New("disk full")
		err := errors.Wrap(base, errors.ErrFileCreate, "failed to create file")

		require.Error(t, err)
		assert.Equal(t, "[FILE_CREATE] failed to create file: disk full", err.Error())
		assert.ErrorIs(t, err, base)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileCreate))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing").
		WithDetail("profile", "note").
		WithDetail("index", 3)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "note", details["profile"])
	assert.Equal(t, 3, details["index"])
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "one message")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrNotFound, "another message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrInternal, "one message")))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"coded error", errors.New(errors.ErrProfileStore, "x"), errors.ErrProfileStore},
		{"wrapped by fmt", fmt.Errorf("outer: %w", errors.New(errors.ErrDirCreate, "x")), errors.ErrDirCreate},
		{"plain error", stderrors.New("plain"), errors.ErrUnknown},
		{"nil", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetErrorCode(tt.err))
		})
	}
}
