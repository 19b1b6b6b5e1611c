package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/spf13/afero"
)

var log = logging.GetLogger("filesystem")

// Creator makes new, empty files and the directories leading to them
type Creator struct {
	fs afero.Fs
}

// NewCreator returns a creator on fs, or on the OS filesystem when fs is nil
func NewCreator(fs afero.Fs) *Creator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Creator{fs: fs}
}

// FileName appends defaultExt when name has no extension of its own
func FileName(name, defaultExt string) string {
	defaultExt = strings.TrimPrefix(defaultExt, ".")
	if defaultExt == "" || filepath.Ext(name) != "" {
		return name
	}
	return name + "." + defaultExt
}

// SplitDirs separates leading directories from the last element of a
// slash separated name: "a/b/note" gives ("a/b", "note").
func SplitDirs(name string) (dirs, leaf string) {
	name = filepath.ToSlash(name)
	i := strings.LastIndex(name, "/")
	if i < 0 {
		return "", name
	}
	return filepath.FromSlash(strings.Trim(name[:i], "/")), name[i+1:]
}

// CreateFile creates directory/name, adding defaultExt when name has no
// extension. It never overwrites. The created path is returned.
func (c *Creator) CreateFile(directory, name, defaultExt string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New(errors.ErrInvalidInput, "file name is empty")
	}

	rel := filepath.Clean(filepath.FromSlash(FileName(name, defaultExt)))
	if !filepath.IsLocal(rel) {
		return "", errors.Newf(errors.ErrInvalidInput, "file name %q leaves the target directory", name).
			WithDetail("directory", directory)
	}
	path := filepath.Join(directory, rel)
	logger := log.With().Str("path", path).Logger()

	if err := c.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", filepath.Dir(path))
	}

	if _, err := c.fs.Stat(path); err == nil {
		return "", errors.Newf(errors.ErrAlreadyExists, "file %s already exists", path).
			WithDetail("path", path)
	}

	f, err := c.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", errors.Newf(errors.ErrAlreadyExists, "file %s already exists", path).
				WithDetail("path", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileCreate, "failed to close %s", path)
	}

	logger.Info().Msg("File created")
	return path, nil
}
