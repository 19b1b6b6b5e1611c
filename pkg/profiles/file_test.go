package profiles_test

import (
	"testing"

	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/profiles"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersister_MissingFileIsEmpty(t *testing.T) {
	p := &profiles.FilePersister{Path: "/project/.confname/profiles.toml", FS: afero.NewMemMapFs()}

	list, err := p.Load()

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFilePersister_RoundTrip(t *testing.T) {
	want := []profiles.Profile{noteProfile, {ID: "bare"}, logProfile}

	for _, path := range []string{"/p/profiles.toml", "/p/profiles.yaml", "/p/profiles.yml"} {
		t.Run(path, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			p := &profiles.FilePersister{Path: path, FS: fs}

			require.NoError(t, p.Save(want))
			got, err := p.Load()

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecode_TOML(t *testing.T) {
	data := []byte(`
[[profile]]
id = "note"
extension = "md"
template = "${NAME}-${NOW;yyyy-MM-dd}"

[[profile]]
id = "scratch"
template = ""
`)

	got, err := profiles.Decode(data, false)

	require.NoError(t, err)
	assert.Equal(t, []profiles.Profile{noteProfile, {ID: "scratch"}}, got)
}

func TestDecode_YAML(t *testing.T) {
	data := []byte(`
profiles:
  - id: log
    extension: txt
    template: ${NOW}
`)

	got, err := profiles.Decode(data, true)

	require.NoError(t, err)
	assert.Equal(t, []profiles.Profile{logProfile}, got)
}

func TestFilePersister_CorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/profiles.toml", []byte("[[profile"), 0644))

	_, err := (&profiles.FilePersister{Path: "/p/profiles.toml", FS: fs}).Load()

	assert.True(t, errors.IsErrorCode(err, errors.ErrProfileStore), "got %v", err)
}
