package confname

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/arthur-debert/confname/pkg/settings"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// reloadDelay coalesces the burst of events editors produce on save
const reloadDelay = 150 * time.Millisecond

func newWatchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}

			path := ws.env.Persister.Path
			if err := opts.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", filepath.Dir(path))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return withSession(ws, func(s *settings.Session) error {
				fmt.Fprintf(out, MsgWatching, path)
				return watchProfiles(ctx, s, path, func(count int, err error) {
					if err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), err)
						return
					}
					fmt.Fprintf(out, MsgReloaded, count)
				})
			})
		},
	}
}

// watchProfiles reloads session whenever the file at path changes, until
// ctx is done. The parent directory is watched so that editors replacing
// the file by rename are seen too. onReload gets the profile count after
// each reload, or the reload error.
func watchProfiles(ctx context.Context, session *settings.Session, path string, onReload func(int, error)) error {
	logger := logging.GetLogger("cmd.watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot start file watcher")
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot watch %s", filepath.Dir(target))
	}
	logger.Debug().Str("path", target).Msg("Watching profiles file")

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			logger.Trace().Str("op", event.Op.String()).Msg("Profiles file event")
			timer.Reset(reloadDelay)

		case <-timer.C:
			err := session.Reload()
			if err != nil {
				logger.Warn().Err(err).Msg("Reload failed, keeping current bindings")
			}
			onReload(len(session.Profiles()), err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}
