// Package paths provides centralized path handling for confname.
//
// It resolves the project root that commands operate in and the XDG
// directories confname reads from and writes to.
//
// # Project Root
//
// The project root is chosen in this order:
//
//  1. the --project flag
//  2. the CONFNAME_PROJECT environment variable
//  3. the root of the enclosing git repository
//  4. the current working directory (UsedFallback reports true)
//
// # Environment Variables
//
//   - CONFNAME_PROJECT: project root
//   - CONFNAME_CONFIG_DIR: overrides $XDG_CONFIG_HOME/confname
//   - CONFNAME_STATE_DIR: overrides $XDG_STATE_HOME/confname
//
// # Usage
//
//	p, err := paths.New(flagValue)
//	if err != nil {
//		return err
//	}
//	profilesFile := p.ProfilesPath(cfg.ProfilesFile)
package paths
