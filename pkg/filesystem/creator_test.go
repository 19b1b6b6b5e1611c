package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name, ext, want string
	}{
		{"draft", "md", "draft.md"},
		{"draft", ".md", "draft.md"},
		{"draft.txt", "md", "draft.txt"},
		{"draft-2024-03-05.draft", "md", "draft-2024-03-05.draft"},
		{"draft", "", "draft"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"+"+tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, filesystem.FileName(tt.name, tt.ext))
		})
	}
}

func TestSplitDirs(t *testing.T) {
	tests := []struct {
		in, dirs, leaf string
	}{
		{"note", "", "note"},
		{"a/note", "a", "note"},
		{"a/b/note", filepath.Join("a", "b"), "note"},
		{"/a/note", "a", "note"},
		{"a/", "a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			dirs, leaf := filesystem.SplitDirs(tt.in)
			assert.Equal(t, tt.dirs, dirs)
			assert.Equal(t, tt.leaf, leaf)
		})
	}
}

func TestCreator_CreateFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := filesystem.NewCreator(fs)

	path, err := c.CreateFile("/work", "notes/draft", "md")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", "notes", "draft.md"), path)
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreator_CreateFile_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := filesystem.NewCreator(fs)
	require.NoError(t, afero.WriteFile(fs, "/work/taken.md", []byte("x"), 0644))

	tests := []struct {
		name     string
		file     string
		wantCode errors.ErrorCode
	}{
		{"collision", "taken", errors.ErrAlreadyExists},
		{"empty", "  ", errors.ErrInvalidInput},
		{"escapes directory", "../outside", errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateFile("/work", tt.file, "md")
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
		})
	}

	content, err := afero.ReadFile(fs, "/work/taken.md")
	require.NoError(t, err)
	assert.Equal(t, "x", string(content), "existing file must not be touched")
}
