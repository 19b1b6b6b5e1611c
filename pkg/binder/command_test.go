package binder_test

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/confname/pkg/actions"
	"github.com/arthur-debert/confname/pkg/binder"
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noteProfile = profiles.Profile{ID: "note", DefaultExtension: "md", Template: "${NAME}-${NOW;yyyy-MM-dd}.${NAME}"}

func bindOne(t *testing.T, p profiles.Profile, creator binder.Creator, prompter binder.Prompter, opts binder.Options) *binder.Binder {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	b := binder.New(newRecordingHost(t), creator, prompter, opts)
	require.NoError(t, b.Reconcile(nil, []profiles.Profile{p}))
	return b
}

func TestInvoke_EndToEnd(t *testing.T) {
	creator := &fakeCreator{}
	prompter := &fakePrompter{name: "draft", ok: true}
	b := bindOne(t, noteProfile, creator, prompter, binder.Options{User: "alice"})

	res, err := b.Invoke(context.Background(), "note", "/work")

	require.NoError(t, err)
	assert.False(t, res.Cancelled)
	assert.Equal(t, "/work/draft-2024-03-05.draft", res.Path)
	assert.Equal(t, []createCall{{"/work", "draft-2024-03-05.draft", "md"}}, creator.calls)
	assert.Equal(t, []string{"New note file"}, prompter.titles)
}

func TestInvoke_Prompt(t *testing.T) {
	tests := []struct {
		name          string
		prompter      *fakePrompter
		wantCancelled bool
		wantName      string
	}{
		{"entered name", &fakePrompter{name: "report", ok: true}, false, "report"},
		{"name is trimmed", &fakePrompter{name: "  report \n", ok: true}, false, "report"},
		{"dismissed", &fakePrompter{name: "report", ok: false}, true, ""},
		{"blank", &fakePrompter{name: "   ", ok: true}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{}
			b := bindOne(t, profiles.Profile{ID: "plain"}, creator, tt.prompter, binder.Options{})

			res, err := b.Invoke(context.Background(), "plain", "/work")

			require.NoError(t, err)
			assert.Equal(t, tt.wantCancelled, res.Cancelled)
			if tt.wantCancelled {
				assert.Empty(t, creator.calls, "cancelled invocation must not create files")
				assert.Empty(t, res.Path)
				return
			}
			require.Len(t, creator.calls, 1)
			assert.Equal(t, tt.wantName, creator.calls[0].name)
		})
	}
}

func TestInvoke_PromptError(t *testing.T) {
	boom := stderrors.New("terminal gone")
	creator := &fakeCreator{}
	b := bindOne(t, noteProfile, creator, &fakePrompter{err: boom}, binder.Options{})

	_, err := b.Invoke(context.Background(), "note", "/work")

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, creator.calls)
}

func TestInvoke_NonInteractiveUsesStandIn(t *testing.T) {
	creator := &fakeCreator{}
	prompter := &fakePrompter{name: "never", ok: true}
	b := bindOne(t, profiles.Profile{ID: "x", Template: "${NAME}_${USER}"}, creator, prompter, binder.Options{
		NonInteractive: true,
		User:           "ci",
	})

	_, err := b.Invoke(context.Background(), "x", "/work")

	require.NoError(t, err)
	assert.Empty(t, prompter.titles)
	assert.Equal(t, "test_ci", creator.calls[0].name)
}

func TestInvoke_CustomStandIn(t *testing.T) {
	creator := &fakeCreator{}
	b := bindOne(t, profiles.Profile{ID: "x"}, creator, nil, binder.Options{NonInteractive: true, StandInName: "sample"})

	_, err := b.Invoke(context.Background(), "x", "/work")

	require.NoError(t, err)
	assert.Equal(t, "sample", creator.calls[0].name)
}

func TestInvoke_InteractiveWithoutPrompter(t *testing.T) {
	b := bindOne(t, noteProfile, &fakeCreator{}, nil, binder.Options{})

	_, err := b.Invoke(context.Background(), "note", "/work")

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
}

func TestInvoke_BaseNameWithDirectories(t *testing.T) {
	creator := &fakeCreator{}
	prompter := &fakePrompter{name: "meetings/2024/kickoff", ok: true}
	b := bindOne(t, profiles.Profile{ID: "m", DefaultExtension: "md", Template: "${NAME}"}, creator, prompter, binder.Options{})

	_, err := b.Invoke(context.Background(), "m", "/work")

	require.NoError(t, err)
	assert.Equal(t, []createCall{{filepath.Join("/work", "meetings", "2024"), "kickoff", "md"}}, creator.calls)
}

func TestInvoke_BaseNameWithoutFilePart(t *testing.T) {
	creator := &fakeCreator{}
	b := bindOne(t, noteProfile, creator, &fakePrompter{name: "dir/", ok: true}, binder.Options{})

	_, err := b.Invoke(context.Background(), "note", "/work")

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
	assert.Empty(t, creator.calls)
}

func TestInvoke_CreateErrorIsReturnedUnchanged(t *testing.T) {
	creatorErr := errors.New(errors.ErrAlreadyExists, "file exists")
	b := bindOne(t, noteProfile, &fakeCreator{err: creatorErr}, &fakePrompter{name: "draft", ok: true}, binder.Options{})

	res, err := b.Invoke(context.Background(), "note", "/work")

	assert.Same(t, creatorErr, err)
	assert.Equal(t, actions.Result{}, res)
}

func TestInvoke_CancelledContext(t *testing.T) {
	prompter := &fakePrompter{name: "draft", ok: true}
	b := bindOne(t, noteProfile, &fakeCreator{}, prompter, binder.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Invoke(ctx, "note", "/work")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, prompter.titles)
}

func TestInvoke_EmptyTemplateUsesBaseName(t *testing.T) {
	creator := &fakeCreator{}
	b := bindOne(t, profiles.Profile{ID: "plain", DefaultExtension: "txt"}, creator, &fakePrompter{name: "todo", ok: true}, binder.Options{})

	_, err := b.Invoke(context.Background(), "plain", "/work")

	require.NoError(t, err)
	assert.Equal(t, "todo", creator.calls[0].name)
}
