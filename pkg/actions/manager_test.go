package actions_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/confname/pkg/actions"
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, string) (actions.Result, error) {
	return actions.Result{}, nil
}

func newHost(t *testing.T, ids ...string) *actions.Manager {
	t.Helper()
	m := actions.NewManager()
	for _, id := range ids {
		require.NoError(t, m.RegisterCommand(id, id+" label", noop))
	}
	return m
}

func TestManager_RegisterCommand(t *testing.T) {
	m := newHost(t, "a")

	err := m.RegisterCommand("a", "again", noop)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandRegister), "got %v", err)

	err = m.RegisterCommand("b", "no handler", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)

	cmd, err := m.Command("a")
	require.NoError(t, err)
	assert.Equal(t, "a label", cmd.Label)
}

func TestManager_UnregisterCommand(t *testing.T) {
	m := newHost(t, "a", "b")

	require.NoError(t, m.UnregisterCommand("a"))
	assert.Equal(t, []string{"b"}, m.Commands())
	assert.Error(t, m.UnregisterCommand("a"))
}

func TestManager_InsertAfter(t *testing.T) {
	m := newHost(t, actions.NewFileID, "x", "y", "z")
	require.NoError(t, m.AddToGroup(actions.NewGroupID, actions.NewFileID))

	require.NoError(t, m.InsertAfter(actions.NewGroupID, "x", actions.NewFileID))
	require.NoError(t, m.InsertAfter(actions.NewGroupID, "z", actions.NewFileID))
	require.NoError(t, m.InsertAfter(actions.NewGroupID, "y", "z"))

	assert.Equal(t, []string{actions.NewFileID, "z", "y", "x"}, m.Group(actions.NewGroupID))
}

func TestManager_InsertAfter_Errors(t *testing.T) {
	m := newHost(t, "x")

	err := m.InsertAfter(actions.NewGroupID, "unknown", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)

	require.NoError(t, m.InsertAfter(actions.NewGroupID, "x", "missing-anchor"))
	assert.Equal(t, []string{"x"}, m.Group(actions.NewGroupID))

	err = m.InsertAfter(actions.NewGroupID, "x", "missing-anchor")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)
}

func TestManager_RemoveFromGroup(t *testing.T) {
	m := newHost(t, "a", "b", "c")
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, m.AddToGroup("G", id))
	}

	require.NoError(t, m.RemoveFromGroup("G", "b"))
	assert.Equal(t, []string{"a", "c"}, m.Group("G"))

	err := m.RemoveFromGroup("G", "b")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
}

func TestManager_Invoke(t *testing.T) {
	m := actions.NewManager()
	var gotDir string
	require.NoError(t, m.RegisterCommand("make", "Make", func(_ context.Context, dir string) (actions.Result, error) {
		gotDir = dir
		return actions.Result{Path: dir + "/out"}, nil
	}))

	res, err := m.Invoke(context.Background(), "make", "/tmp/work")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/work", gotDir)
	assert.Equal(t, "/tmp/work/out", res.Path)

	_, err = m.Invoke(context.Background(), "missing", "/")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
}

func TestManager_RegisterNewFile(t *testing.T) {
	m := actions.NewManager()
	require.NoError(t, m.RegisterNewFile(noop))

	assert.Equal(t, []string{actions.NewFileID}, m.Group(actions.NewGroupID))

	err := m.RegisterNewFile(noop)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandRegister), "got %v", err)
}
