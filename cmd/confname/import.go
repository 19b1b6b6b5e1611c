package confname

import (
	"fmt"

	"github.com/arthur-debert/confname/pkg/profiles"
	"github.com/arthur-debert/confname/pkg/settings"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newImportCmd(opts *globalOptions) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:     "import <xml-file>",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := afero.ReadFile(opts.fs, args[0])
			if err != nil {
				return fmt.Errorf(MsgErrReadImport, args[0], err)
			}
			imported, err := profiles.ImportXML(data)
			if err != nil {
				return err
			}

			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}

			return withSession(ws, func(s *settings.Session) error {
				list := imported
				if !replace {
					list = append(s.Profiles(), imported...)
				}
				if err := s.SetConfiguration(list); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgProfilesImported, len(imported), args[0])
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, MsgFlagReplace)
	return cmd
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "export [file]",
		Short:   MsgExportShort,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}
			list, err := ws.env.Persister.Load()
			if err != nil {
				return err
			}

			data, err := profiles.ExportXML(list)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return afero.WriteFile(opts.fs, args[0], data, 0644)
		},
	}
}
