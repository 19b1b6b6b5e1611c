// Package profiles holds the ordered list of file profiles and the
// formats it is stored in.
package profiles

import (
	"strings"

	"github.com/arthur-debert/confname/pkg/logging"
)

var log = logging.GetLogger("profiles")

// Profile identifies a kind of file the user can create
type Profile struct {
	// ID names the profile and derives the bound command id and label
	ID string `toml:"id" yaml:"id" json:"id"`
	// DefaultExtension is appended when the resolved name has no extension
	DefaultExtension string `toml:"extension,omitempty" yaml:"extension,omitempty" json:"extension,omitempty"`
	// Template is expanded into the filename; empty means the base name
	Template string `toml:"template" yaml:"template" json:"template"`
}

// Normalize clears fields that contain only whitespace, the way the
// editing dialog treats blank input as unset
func (p Profile) Normalize() Profile {
	return Profile{
		ID:               blankToEmpty(p.ID),
		DefaultExtension: blankToEmpty(p.DefaultExtension),
		Template:         blankToEmpty(p.Template),
	}
}

// EffectiveTemplate returns the template to expand. A profile without a
// template produces the base name unchanged.
func (p Profile) EffectiveTemplate() string {
	if p.Template == "" {
		return "${NAME}"
	}
	return p.Template
}

func blankToEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// Duplicates returns identifiers that occur more than once, in order of
// their first repeat
func Duplicates(list []Profile) []string {
	seen := make(map[string]int, len(list))
	var dups []string
	for _, p := range list {
		seen[p.ID]++
		if seen[p.ID] == 2 {
			dups = append(dups, p.ID)
		}
	}
	return dups
}
