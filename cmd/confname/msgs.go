package confname

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort             = "Create files named from per-project templates"
	MsgNewShort              = "Create a file from a profile"
	MsgProfilesShort         = "Manage file profiles"
	MsgProfilesListShort     = "List profiles and their commands"
	MsgProfilesAddShort      = "Add a profile"
	MsgProfilesEditShort     = "Change a profile"
	MsgProfilesRemoveShort   = "Remove a profile"
	MsgProfilesValidateShort = "Check profiles for problems"
	MsgImportShort           = "Import profiles from XML settings"
	MsgExportShort           = "Export profiles as XML settings"
	MsgWatchShort            = "Keep profile commands bound while the profiles file changes"
	MsgConfigShort           = "Show the effective configuration"
	MsgTopicsShort           = "Display available documentation topics"
	MsgTopicsLong            = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort       = "Generate shell completion script"
	MsgVersionShort          = "Print version information"

	// Status messages
	MsgFileCreated       = "Created %s\n"
	MsgCancelled         = "Cancelled, no file created."
	MsgProfileAdded      = "Added profile '%s' at position %d\n"
	MsgProfileUpdated    = "Updated profile '%s'\n"
	MsgProfileRemoved    = "Removed profile '%s'\n"
	MsgProfilesImported  = "Imported %d profile(s) from %s\n"
	MsgProfilesValid     = "All %d profile(s) look good."
	MsgWatching          = "Watching %s (Ctrl-C to stop)\n"
	MsgReloaded          = "Reloaded %d profile(s)\n"
	MsgValidateBlankID   = "profile at position %d has no id"
	MsgValidateShadowed  = "profile '%s' at position %d is shadowed by a later one"
	MsgValidateUnknown   = "profile '%s' uses unknown placeholder ${%s}, it expands to nothing"
	MsgValidateNoTmpl    = "profile '%s' has no template, the base name is used as is"
	MsgValidateSeparator = "profile '%s' template contains a path separator"
	MsgVersionFormat     = "confname version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrInitPaths      = "failed to initialize paths: %w"
	MsgErrLoadConfig     = "failed to load configuration: %w"
	MsgErrUnknownProfile = "no profile '%s'"
	MsgErrProfileExists  = "profile '%s' already exists, use --allow-duplicate to add it anyway"
	MsgErrValidation     = "%d profile problem(s) found"
	MsgErrReadImport     = "failed to read %s: %w"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProject        = "Project root (default: $CONFNAME_PROJECT, the git root, or the current directory)"
	MsgFlagNoInteractive  = "Never prompt, use the configured stand-in base name"
	MsgFlagFormat         = "Output format: auto, term, text or json"
	MsgFlagDir            = "Directory to create the file in (default: current directory)"
	MsgFlagExtension      = "Default extension, added when the expanded name has none"
	MsgFlagTemplate       = "Filename template, e.g. '${NOW;yyyy-MM-dd}-${NAME}'"
	MsgFlagNewID          = "New id for the profile"
	MsgFlagAt             = "Position to insert at (default: end of the list)"
	MsgFlagAllowDuplicate = "Add even when a profile with the same id exists"
	MsgFlagReplace        = "Replace the current profiles instead of appending"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/profiles-long.txt
	msgProfilesLongRaw string
	MsgProfilesLong    = strings.TrimSpace(msgProfilesLongRaw)

	//go:embed msgs/profiles-example.txt
	msgProfilesExampleRaw string
	MsgProfilesExample    = strings.TrimRight(msgProfilesExampleRaw, "\n")

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
