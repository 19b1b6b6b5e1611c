package settings

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/confname/pkg/actions"
	"github.com/arthur-debert/confname/pkg/binder"
	"github.com/arthur-debert/confname/pkg/config"
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/filesystem"
	"github.com/arthur-debert/confname/pkg/profiles"
	"github.com/spf13/afero"
)

// Environment is a fully wired workspace: the command host with its plain
// "new file" command, and an unopened session bound into it.
type Environment struct {
	Host      *actions.Manager
	Session   *Session
	Persister *profiles.FilePersister
	Creator   *filesystem.Creator
}

// Setup describes how to build an Environment
type Setup struct {
	Config       *config.Config
	ProfilesPath string
	FS           afero.Fs
	Prompter     binder.Prompter
	Now          func() time.Time
}

// Build wires the host, creator, persister and binder described by s
func (s Setup) Build() (*Environment, error) {
	if s.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration")
	}
	if s.ProfilesPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no profiles file")
	}
	fs := s.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	creator := filesystem.NewCreator(fs)
	persister := &profiles.FilePersister{Path: s.ProfilesPath, FS: fs}

	host := actions.NewManager()
	if err := host.RegisterNewFile(NewFileHandler(creator, s.Prompter, s.Config)); err != nil {
		return nil, err
	}

	b := binder.New(host, creator, s.Prompter, binder.Options{
		Namespace:      s.Config.Namespace,
		GroupID:        s.Config.Group,
		AnchorID:       s.Config.Anchor,
		NonInteractive: s.Config.NonInteractive,
		StandInName:    s.Config.StandInName,
		User:           s.Config.User,
		Now:            s.Now,
	})

	log.Debug().
		Str("profiles", s.ProfilesPath).
		Str("namespace", s.Config.Namespace).
		Bool("non_interactive", s.Config.NonInteractive).
		Msg("Environment built")

	return &Environment{
		Host:      host,
		Session:   NewSession(persister, b),
		Persister: persister,
		Creator:   creator,
	}, nil
}

// NewFileHandler is the host's plain file command: the entered name is
// used as is, with no template and no default extension.
func NewFileHandler(creator binder.Creator, prompter binder.Prompter, cfg *config.Config) actions.Handler {
	return func(ctx context.Context, directory string) (actions.Result, error) {
		if err := ctx.Err(); err != nil {
			return actions.Result{}, err
		}

		var name string
		switch {
		case cfg != nil && cfg.NonInteractive:
			name = cfg.StandInName
		case prompter == nil:
			return actions.Result{}, errors.New(errors.ErrInvalidInput, "no prompt available for the file name")
		default:
			entered, ok, err := prompter.PromptForBaseName("New file")
			if err != nil {
				return actions.Result{}, err
			}
			if !ok || strings.TrimSpace(entered) == "" {
				return actions.Result{Cancelled: true}, nil
			}
			name = strings.TrimSpace(entered)
		}

		dirs, leaf := filesystem.SplitDirs(name)
		if leaf == "" {
			return actions.Result{}, errors.Newf(errors.ErrInvalidInput, "name %q has no file part", name)
		}

		path, err := creator.CreateFile(filepath.Join(directory, dirs), leaf, "")
		if err != nil {
			return actions.Result{}, err
		}
		return actions.Result{Path: path}, nil
	}
}
