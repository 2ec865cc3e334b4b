package app

import (
	"strings"

	"github.com/pterm/pterm"
)

// helpSection is a heading of the help text and its template body.
type helpSection struct {
	title string
	body  string
}

func helpText() string {
	sections := []helpSection{
		{"DESCRIPTION", "\t\t{{.Usage}}"},
		{"USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}"},
		{"VERSION", "\t\t{{.Version}}"},
		{
			"COMMANDS",
			"{{range .Commands}}{{if not .HideHelp}}   " +
				pterm.Green("{{join .Names `, `}}") +
				"{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
		},
		{
			"OPTIONS",
			"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}" +
				pterm.Green("-{{$element}}") + ",{{end}}{{end}} " +
				pterm.Green("--{{.Name}} {{.DefaultText}}") +
				"\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		},
		{"ENVIRONMENTAL VARIABLES", "\t\t" + envHelp()},
	}

	var b strings.Builder

	for _, s := range sections {
		b.WriteString(pterm.Yellow(s.title))
		b.WriteString("\n")
		b.WriteString(s.body)
		b.WriteString("\n\n")
	}

	return b.String()
}

func envHelp() string {
	vars := [][2]string{
		{"POINTAGE_NO_COLOR, NO_COLOR", "set to any value to avoid printing ANSI escape sequences for color output."},
		{"POINTAGE_DEVICE_URL", "base URL of the biometric device gateway. Also read from a .env file."},
		{"POINTAGE_DSN", "connection string of the scheduling database. Also read from a .env file."},
		{"POINTAGE_ENV", "suffix added to the config, database and log file names."},
	}

	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		lines = append(lines, v[0]+": "+v[1])
	}

	return "\n" + strings.Join(lines, "\n\n")
}
