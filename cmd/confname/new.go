package confname

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/confname/pkg/binder"
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/arthur-debert/confname/pkg/prompt"
	"github.com/spf13/cobra"
)

func newNewCmd(opts *globalOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:               "new <profile> [base-name]",
		Short:             MsgNewShort,
		Long:              MsgNewLong,
		Example:           MsgNewExample,
		GroupID:           "core",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: opts.profileIDsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.new")
			profileID := args[0]

			// A base name on the command line answers the prompt
			var overrides map[string]interface{}
			var prompter binder.Prompter
			if len(args) == 2 {
				prompter = prompt.Static{Name: args[1]}
				overrides = map[string]interface{}{"non_interactive": false}
			} else {
				prompter = promptFor(cmd)
			}

			ws, err := opts.open(cmd, prompter, overrides)
			if err != nil {
				return err
			}

			target, err := targetDir(dir)
			if err != nil {
				return err
			}

			session := ws.env.Session
			if err := session.Open(); err != nil {
				return err
			}
			defer func() {
				if err := session.Close(); err != nil {
					logger.Warn().Err(err).Msg("Failed to unbind commands")
				}
			}()

			b := session.Binder()
			if _, ok := b.Lookup(profileID); !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownProfile, profileID)
			}

			fieldLogger := logging.WithFields(map[string]interface{}{
				"profile":   profileID,
				"directory": target,
			})
			fieldLogger.Info().Msg("Creating file")

			result, err := ws.env.Host.Invoke(cmd.Context(), b.CommandID(profileID), target)
			if err != nil {
				return err
			}

			if result.Cancelled {
				fmt.Fprintln(cmd.OutOrStdout(), MsgCancelled)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgFileCreated, result.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", MsgFlagDir)
	return cmd
}

// promptFor asks on the terminal when stdin is one and reads a line of
// input otherwise
func promptFor(cmd *cobra.Command) binder.Prompter {
	if in, ok := cmd.InOrStdin().(*os.File); ok {
		return prompt.ForTerminal(in, cmd.ErrOrStderr())
	}
	return &prompt.Line{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()}
}

func targetDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", dir)
	}
	return abs, nil
}
