package binder

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/confname/pkg/actions"
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/expand"
	"github.com/arthur-debert/confname/pkg/filesystem"
	"github.com/arthur-debert/confname/pkg/profiles"
)

// BoundCommand is the host command of one profile. It holds the profile
// as it was when bound.
type BoundCommand struct {
	ID      string
	Label   string
	Profile profiles.Profile

	binder *Binder
	stale  bool
}

// Title is the prompt title shown when asking for a base name
func (c *BoundCommand) Title() string {
	return "New " + c.Profile.ID + " file"
}

// Invoke asks for a base name, expands the profile template and creates
// the file under directory. A dismissed prompt returns a cancelled result
// and creates nothing. Creation errors are returned as the creator
// reported them.
func (c *BoundCommand) Invoke(ctx context.Context, directory string) (actions.Result, error) {
	if c.stale {
		return actions.Result{}, errors.Newf(errors.ErrNotFound, "command '%s' is no longer bound", c.ID)
	}
	if err := ctx.Err(); err != nil {
		return actions.Result{}, err
	}

	logger := log.With().Str("id", c.ID).Logger()

	baseName, ok, err := c.baseName()
	if err != nil {
		return actions.Result{}, err
	}
	if !ok {
		logger.Debug().Msg("Base name prompt dismissed")
		return actions.Result{Cancelled: true}, nil
	}

	dirs, leaf := filesystem.SplitDirs(baseName)
	if leaf == "" {
		return actions.Result{}, errors.Newf(errors.ErrInvalidInput, "base name %q has no file part", baseName)
	}

	opts := c.binder.opts
	user := opts.User
	if user == "" {
		user = expand.OSUser()
	}
	resolved := expand.Expand(c.Profile.EffectiveTemplate(), expand.Context{
		BaseName:  leaf,
		Timestamp: opts.Now(),
		User:      user,
	})

	logger.Debug().
		Str("baseName", baseName).
		Str("resolved", resolved).
		Msg("Template expanded")

	path, err := c.binder.creator.CreateFile(filepath.Join(directory, dirs), resolved, c.Profile.DefaultExtension)
	if err != nil {
		return actions.Result{}, err
	}
	return actions.Result{Path: path}, nil
}

func (c *BoundCommand) baseName() (string, bool, error) {
	opts := c.binder.opts
	if opts.NonInteractive {
		return opts.StandInName, true, nil
	}
	if c.binder.prompter == nil {
		return "", false, errors.New(errors.ErrInvalidInput, "no prompter configured for interactive use")
	}

	name, ok, err := c.binder.prompter.PromptForBaseName(c.Title())
	if err != nil {
		return "", false, err
	}
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", false, nil
	}
	return name, true, nil
}
