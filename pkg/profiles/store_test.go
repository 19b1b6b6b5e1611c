package profiles_test

import (
	"testing"

	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	noteProfile = profiles.Profile{ID: "note", DefaultExtension: "md", Template: "${NAME}-${NOW;yyyy-MM-dd}"}
	logProfile  = profiles.Profile{ID: "log", DefaultExtension: "txt", Template: "${NOW}"}
	adrProfile  = profiles.Profile{ID: "adr", DefaultExtension: "md", Template: "adr-${NAME}"}
)

func ids(list []profiles.Profile) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestStore_ListIsSnapshot(t *testing.T) {
	store := profiles.NewStore([]profiles.Profile{noteProfile})

	snapshot := store.List()
	require.NoError(t, store.Insert(logProfile, 1))
	snapshot[0].ID = "mutated"

	assert.Len(t, snapshot, 1)
	assert.Equal(t, []string{"note", "log"}, ids(store.List()))
}

func TestStore_SetAllCopiesInput(t *testing.T) {
	input := []profiles.Profile{noteProfile, logProfile}
	store := profiles.NewStore(nil)

	store.SetAll(input)
	input[0].ID = "changed"

	assert.Equal(t, []string{"note", "log"}, ids(store.List()))
}

func TestStore_Insert(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    []string
		wantErr bool
	}{
		{"at front", 0, []string{"adr", "note", "log"}, false},
		{"in middle", 1, []string{"note", "adr", "log"}, false},
		{"append", 2, []string{"note", "log", "adr"}, false},
		{"past end", 3, nil, true},
		{"negative", -1, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := profiles.NewStore([]profiles.Profile{noteProfile, logProfile})

			err := store.Insert(adrProfile, tt.index)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
				assert.Equal(t, 2, store.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(store.List()))
		})
	}
}

func TestStore_RemoveAt(t *testing.T) {
	store := profiles.NewStore([]profiles.Profile{noteProfile, logProfile, adrProfile})

	require.NoError(t, store.RemoveAt(1))
	assert.Equal(t, []string{"note", "adr"}, ids(store.List()))

	err := store.RemoveAt(2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	require.NoError(t, store.RemoveAt(0))
	require.NoError(t, store.RemoveAt(0))
	assert.Equal(t, 0, store.Len())
	assert.Error(t, store.RemoveAt(0))
}

func TestStore_ReplaceAt(t *testing.T) {
	store := profiles.NewStore([]profiles.Profile{noteProfile, logProfile})

	edited := noteProfile
	edited.Template = "${NAME}"
	require.NoError(t, store.ReplaceAt(0, edited))

	got, err := store.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "${NAME}", got.Template)

	assert.Error(t, store.ReplaceAt(5, edited))
	_, err = store.Get(-1)
	assert.Error(t, err)
}

func TestStore_ToleratesDuplicates(t *testing.T) {
	store := profiles.NewStore(nil)
	require.NoError(t, store.Insert(noteProfile, 0))

	other := noteProfile
	other.Template = "second"
	require.NoError(t, store.Insert(other, 1))

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.Find("note"))
	assert.Equal(t, -1, store.Find("missing"))
	assert.Equal(t, []string{"note"}, profiles.Duplicates(store.List()))
}

func TestDuplicates(t *testing.T) {
	list := []profiles.Profile{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "a"}, {ID: "c"}, {ID: "b"}}
	assert.Equal(t, []string{"a", "b"}, profiles.Duplicates(list))
	assert.Nil(t, profiles.Duplicates([]profiles.Profile{{ID: "a"}}))
}

func TestProfile_Normalize(t *testing.T) {
	p := profiles.Profile{ID: "note", DefaultExtension: "  ", Template: "\t"}.Normalize()

	assert.Equal(t, profiles.Profile{ID: "note"}, p)
	assert.Equal(t, "${NAME}", p.EffectiveTemplate())
	assert.Equal(t, noteProfile.Template, noteProfile.EffectiveTemplate())
}
