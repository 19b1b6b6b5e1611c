package style

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/confname/pkg/expand"
	"github.com/arthur-debert/confname/pkg/profiles"
	"github.com/pterm/pterm"
)

// ProfileRow is one line of the profile listing
type ProfileRow struct {
	Index     int              `json:"index"`
	Profile   profiles.Profile `json:"profile"`
	CommandID string           `json:"command,omitempty"`
	// Shadowed is set when a later profile with the same id is bound instead
	Shadowed bool `json:"shadowed,omitempty"`
}

// HighlightTemplate colors the placeholders of template. Placeholders
// that expand to nothing get the warning style.
func HighlightTemplate(template string) string {
	var out strings.Builder
	for _, seg := range expand.Segments(template) {
		if !seg.Placeholder {
			out.WriteString(seg.Text)
			continue
		}
		text := "${" + seg.Text + "}"
		if expand.IsKnown(seg.Text) {
			out.WriteString(PlaceholderStyle.Render(text))
		} else {
			out.WriteString(UnknownPlaceholderStyle.Render(text))
		}
	}
	return out.String()
}

// RenderProfileTable renders rows as a table with a header line
func RenderProfileTable(rows []ProfileRow) (string, error) {
	if len(rows) == 0 {
		return MutedStyle.Render("No profiles defined"), nil
	}

	data := pterm.TableData{{"#", "ID", "EXTENSION", "TEMPLATE", "COMMAND"}}
	for _, r := range rows {
		id := ProfileIDStyle.Render(r.Profile.ID)
		command := r.CommandID
		if r.Shadowed {
			id = MutedStyle.Render(r.Profile.ID)
			command = MutedStyle.Render("(shadowed)")
		}

		data = append(data, []string{
			strconv.Itoa(r.Index),
			id,
			r.Profile.DefaultExtension,
			HighlightTemplate(r.Profile.Template),
			command,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
