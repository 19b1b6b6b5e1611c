package confname

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arthur-debert/confname/pkg/config"
	"github.com/arthur-debert/confname/pkg/style"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open(cmd, nil, nil)
			if err != nil {
				return err
			}

			format, err := opts.outputFormat(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if format == style.FormatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Config   *config.Config `json:"config"`
					Sources  []string       `json:"sources"`
					Profiles string         `json:"profiles_file"`
				}{ws.config, configSources(ws), ws.env.Persister.Path})
			}

			data, err := toml.Marshal(ws.config)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, style.MutedStyle.Render("# sources: "+fmt.Sprint(configSources(ws))))
			fmt.Fprintln(out, style.MutedStyle.Render("# profiles: "+ws.env.Persister.Path))
			_, err = out.Write(data)
			return err
		},
	}
}

// configSources lists the configuration layers that contributed, lowest
// precedence first
func configSources(ws *workspace) []string {
	sources := []string{"defaults"}
	for _, path := range []string{ws.paths.UserConfigPath(), ws.paths.ProjectConfigPath()} {
		if _, err := os.Stat(path); err == nil {
			sources = append(sources, path)
		}
	}
	return append(sources, "environment", "flags")
}
