package profiles

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/confname/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Persister loads and saves the ordered profile list
type Persister interface {
	Load() ([]Profile, error)
	Save(profiles []Profile) error
}

// document is the on-disk shape shared by the TOML and YAML encodings
type document struct {
	Profiles []Profile `toml:"profile" yaml:"profiles"`
}

// FilePersister stores profiles in a single file. The encoding follows
// the extension: .yaml and .yml use YAML, anything else TOML.
type FilePersister struct {
	Path string
	FS   afero.Fs
}

// NewFilePersister creates a persister on the OS filesystem
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{Path: path, FS: afero.NewOsFs()}
}

// Load reads the profile file. A missing file is an empty list.
func (f *FilePersister) Load() ([]Profile, error) {
	logger := log.With().Str("path", f.Path).Logger()

	data, err := afero.ReadFile(f.FS, f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No profiles file, starting empty")
			return []Profile{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrProfileStore, "failed to read profiles from %s", f.Path)
	}

	profiles, err := Decode(data, f.isYAML())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProfileStore, "failed to parse profiles in %s", f.Path)
	}

	logger.Debug().Int("count", len(profiles)).Msg("Profiles loaded")
	return profiles, nil
}

// Save writes profiles, creating parent directories as needed
func (f *FilePersister) Save(profiles []Profile) error {
	data, err := Encode(profiles, f.isYAML())
	if err != nil {
		return errors.Wrap(err, errors.ErrProfileStore, "failed to encode profiles")
	}

	if err := f.FS.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(f.Path))
	}
	if err := afero.WriteFile(f.FS, f.Path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrProfileStore, "failed to write profiles to %s", f.Path)
	}

	log.Debug().Str("path", f.Path).Int("count", len(profiles)).Msg("Profiles saved")
	return nil
}

func (f *FilePersister) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(f.Path))
	return ext == ".yaml" || ext == ".yml"
}

// Decode parses a profiles document
func Decode(data []byte, asYAML bool) ([]Profile, error) {
	var doc document
	var err error
	if asYAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, err
	}
	if doc.Profiles == nil {
		return []Profile{}, nil
	}
	return doc.Profiles, nil
}

// Encode renders a profiles document
func Encode(profiles []Profile, asYAML bool) ([]byte, error) {
	doc := document{Profiles: profiles}
	if asYAML {
		return yaml.Marshal(doc)
	}
	return toml.Marshal(doc)
}
