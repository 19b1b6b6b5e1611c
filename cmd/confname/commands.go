package confname

import (
	"embed"
	"fmt"
	"os"

	"github.com/arthur-debert/confname/internal/version"
	"github.com/arthur-debert/confname/pkg/binder"
	"github.com/arthur-debert/confname/pkg/cobrax/topics"
	"github.com/arthur-debert/confname/pkg/config"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/arthur-debert/confname/pkg/paths"
	"github.com/arthur-debert/confname/pkg/settings"
	"github.com/arthur-debert/confname/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalOptions holds the persistent flags
type globalOptions struct {
	verbosity     int
	project       string
	noInteractive bool
	format        string

	// fs is where profiles and new files live. Tests swap in a memory fs.
	fs afero.Fs
}

// workspace is everything a command needs once flags are parsed
type workspace struct {
	paths  paths.Paths
	config *config.Config
	env    *settings.Environment
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&globalOptions{fs: afero.NewOsFs()})
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "confname",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.project, "project", "p", "", MsgFlagProject)
	rootCmd.PersistentFlags().BoolVar(&opts.noInteractive, "no-interactive", false, MsgFlagNoInteractive)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newNewCmd(opts))
	rootCmd.AddCommand(newProfilesCmd(opts))
	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	plain := style.DetectFormat(os.Stdout) != style.FormatTerminal
	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(plain),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// open resolves paths and configuration and builds the environment.
// overrides are applied on top of every config source except the
// --no-interactive flag. The session is returned closed.
func (o *globalOptions) open(cmd *cobra.Command, prompter binder.Prompter, overrides map[string]interface{}) (*workspace, error) {
	p, err := paths.New(o.project)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning+"\n", p.ProjectRoot())
	}

	src := config.Sources{
		UserFile:    p.UserConfigPath(),
		ProjectFile: p.ProjectConfigPath(),
		Overrides:   make(map[string]interface{}, len(overrides)+1),
	}
	for k, v := range overrides {
		src.Overrides[k] = v
	}
	if o.noInteractive {
		src.Overrides["non_interactive"] = true
	}
	cfg, err := config.Load(src)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	profilesPath := p.ProfilesPath(cfg.ProfilesFile)
	log.Debug().
		Str("project", p.ProjectRoot()).
		Str("profiles", profilesPath).
		Msg("Workspace resolved")

	env, err := settings.Setup{
		Config:       cfg,
		ProfilesPath: profilesPath,
		FS:           o.fs,
		Prompter:     prompter,
	}.Build()
	if err != nil {
		return nil, err
	}

	return &workspace{paths: p, config: cfg, env: env}, nil
}

// outputFormat resolves --format against stdout
func (o *globalOptions) outputFormat(cmd *cobra.Command) (style.Format, error) {
	f, err := style.ParseFormat(o.format)
	if err != nil {
		return style.FormatAuto, err
	}
	if f != style.FormatAuto {
		return style.Resolve(f, os.Stdout), nil
	}
	if out, ok := cmd.OutOrStdout().(*os.File); ok {
		return style.Resolve(f, out), nil
	}
	return style.Resolve(style.FormatText, os.Stdout), nil
}

// profileIDsCompletion completes profile ids from the project's profiles
func (o *globalOptions) profileIDsCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ws, err := o.open(cmd, nil, nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	list, err := ws.env.Persister.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	seen := make(map[string]bool, len(list))
	var ids []string
	for _, p := range list {
		if p.ID != "" && !seen[p.ID] {
			seen[p.ID] = true
			ids = append(ids, p.ID)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
