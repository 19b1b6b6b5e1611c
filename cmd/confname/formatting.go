package confname

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/confname/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpStyled reports whether help output goes to a color terminal
func helpStyled() bool {
	return style.DetectFormat(os.Stdout) == style.FormatTerminal
}

func formatBold(s string) string {
	if !helpStyled() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
