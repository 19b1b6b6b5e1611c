package confname

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/confname/pkg/binder"
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/expand"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/arthur-debert/confname/pkg/profiles"
	"github.com/arthur-debert/confname/pkg/settings"
	"github.com/arthur-debert/confname/pkg/style"
	"github.com/spf13/cobra"
)

func newProfilesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile"},
		Short:   MsgProfilesShort,
		Long:    MsgProfilesLong,
		Example: MsgProfilesExample,
		GroupID: "core",
	}

	cmd.AddCommand(newProfilesListCmd(opts))
	cmd.AddCommand(newProfilesAddCmd(opts))
	cmd.AddCommand(newProfilesEditCmd(opts))
	cmd.AddCommand(newProfilesRemoveCmd(opts))
	cmd.AddCommand(newProfilesValidateCmd(opts))
	return cmd
}

// withSession opens the workspace session around fn. Edits made by fn are
// saved and reconciled by the session itself.
func withSession(ws *workspace, fn func(*settings.Session) error) (err error) {
	session := ws.env.Session
	if err := session.Open(); err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(session)
}

func newProfilesListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgProfilesListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}
			list, err := ws.env.Persister.Load()
			if err != nil {
				return err
			}

			rows := profileRows(list, ws.env.Session.Binder())

			format, err := opts.outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == style.FormatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			table, err := style.RenderProfileTable(rows)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

// profileRows marks every profile that a later one with the same id
// shadows, and names the command of the others
func profileRows(list []profiles.Profile, b *binder.Binder) []style.ProfileRow {
	last := make(map[string]int, len(list))
	for i, p := range list {
		last[p.ID] = i
	}

	rows := make([]style.ProfileRow, len(list))
	for i, p := range list {
		rows[i] = style.ProfileRow{Index: i, Profile: p}
		if last[p.ID] != i {
			rows[i].Shadowed = true
			continue
		}
		if p.ID != "" {
			rows[i].CommandID = b.CommandID(p.ID)
		}
	}
	return rows
}

func newProfilesAddCmd(opts *globalOptions) *cobra.Command {
	var (
		extension      string
		template       string
		at             int
		allowDuplicate bool
	)

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: MsgProfilesAddShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := profiles.Profile{ID: args[0], DefaultExtension: extension, Template: template}.Normalize()
			if p.ID == "" {
				return errors.New(errors.ErrInvalidInput, "profile id is empty")
			}

			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}

			return withSession(ws, func(s *settings.Session) error {
				if s.Find(p.ID) >= 0 && !allowDuplicate {
					return errors.Newf(errors.ErrAlreadyExists, MsgErrProfileExists, p.ID)
				}

				index := at
				if index < 0 {
					index = len(s.Profiles())
				}
				if err := s.Insert(p, index); err != nil {
					return err
				}

				logger := logging.GetLogger("cmd.profiles")
				logger.Info().Str("profile", p.ID).Int("index", index).Msg("Profile added")
				fmt.Fprintf(cmd.OutOrStdout(), MsgProfileAdded, p.ID, index)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", MsgFlagExtension)
	cmd.Flags().StringVarP(&template, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().IntVar(&at, "at", -1, MsgFlagAt)
	cmd.Flags().BoolVar(&allowDuplicate, "allow-duplicate", false, MsgFlagAllowDuplicate)
	return cmd
}

func newProfilesEditCmd(opts *globalOptions) *cobra.Command {
	var (
		newID     string
		extension string
		template  string
	)

	cmd := &cobra.Command{
		Use:               "edit <id>",
		Short:             MsgProfilesEditShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: opts.profileIDsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}

			return withSession(ws, func(s *settings.Session) error {
				index := s.Find(args[0])
				if index < 0 {
					return errors.Newf(errors.ErrNotFound, MsgErrUnknownProfile, args[0])
				}

				p := s.Profiles()[index]
				flags := cmd.Flags()
				if flags.Changed("id") {
					p.ID = newID
				}
				if flags.Changed("extension") {
					p.DefaultExtension = extension
				}
				if flags.Changed("template") {
					p.Template = template
				}
				if strings.TrimSpace(p.ID) == "" {
					return errors.New(errors.ErrInvalidInput, "profile id is empty")
				}

				if err := s.ReplaceAt(index, p); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgProfileUpdated, p.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&newID, "id", "", MsgFlagNewID)
	cmd.Flags().StringVarP(&extension, "extension", "e", "", MsgFlagExtension)
	cmd.Flags().StringVarP(&template, "template", "t", "", MsgFlagTemplate)
	return cmd
}

func newProfilesRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "remove <id>",
		Aliases:           []string{"rm"},
		Short:             MsgProfilesRemoveShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: opts.profileIDsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}

			return withSession(ws, func(s *settings.Session) error {
				index := s.Find(args[0])
				if index < 0 {
					return errors.Newf(errors.ErrNotFound, MsgErrUnknownProfile, args[0])
				}
				if err := s.RemoveAt(index); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgProfileRemoved, args[0])
				return nil
			})
		},
	}
}

// problem is one finding of profiles validate
type problem struct {
	fatal   bool
	message string
}

func validateProfiles(list []profiles.Profile) []problem {
	var problems []problem

	last := make(map[string]int, len(list))
	for i, p := range list {
		last[p.ID] = i
	}

	for i, p := range list {
		if p.ID == "" {
			problems = append(problems, problem{fatal: true, message: fmt.Sprintf(MsgValidateBlankID, i)})
			continue
		}
		if last[p.ID] != i {
			problems = append(problems, problem{message: fmt.Sprintf(MsgValidateShadowed, p.ID, i)})
		}
		if p.Template == "" {
			problems = append(problems, problem{message: fmt.Sprintf(MsgValidateNoTmpl, p.ID)})
			continue
		}

		for _, seg := range expand.Segments(p.Template) {
			switch {
			case seg.Placeholder && !expand.IsKnown(seg.Text):
				problems = append(problems, problem{message: fmt.Sprintf(MsgValidateUnknown, p.ID, seg.Text)})
			case !seg.Placeholder && strings.ContainsAny(seg.Text, `/\`):
				problems = append(problems, problem{message: fmt.Sprintf(MsgValidateSeparator, p.ID)})
			}
		}
	}
	return problems
}

func newProfilesValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: MsgProfilesValidateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}
			list, err := ws.env.Persister.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			problems := validateProfiles(list)
			if len(problems) == 0 {
				fmt.Fprintln(out, style.SuccessIndicator+" "+fmt.Sprintf(MsgProfilesValid, len(list)))
				return nil
			}

			fatal := 0
			for _, p := range problems {
				indicator := style.WarningIndicator
				if p.fatal {
					indicator = style.ErrorIndicator
					fatal++
				}
				fmt.Fprintln(out, indicator+" "+p.message)
			}

			if fatal > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrValidation, fatal)
			}
			return nil
		},
	}
}
