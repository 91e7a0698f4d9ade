package output

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

// Sprint helpers shared by the text renderers. fatih/color disables itself
// on non-terminals and under NO_COLOR; SetupColor adds the --no-color flag
// on top.
var (
	Bold      = color.New(color.Bold).SprintFunc()
	Green     = color.New(color.FgGreen).SprintFunc()
	GreenBold = color.New(color.FgGreen, color.Bold).SprintFunc()
	Yellow    = color.New(color.FgYellow).SprintFunc()
	Red       = color.New(color.FgRed).SprintFunc()
	Dim       = color.New(color.Faint).SprintFunc()
)

// SetupColor forces colors off when requested by flag or when stdout is
// not a terminal. fatih/color additionally honors NO_COLOR on its own.
func SetupColor(noColor bool) {
	if noColor || !IsTerminal() {
		color.NoColor = true
	}
}

// ShortenPath abbreviates the user's home directory prefix to "~".
func ShortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
