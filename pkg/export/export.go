// Package export builds the text block pasted into the flight controller CLI.
package export

import "strings"

// SaveDirective persists the pasted settings on the flight controller.
const SaveDirective = "save"

// Placeholder is shown when the report carries no commands.
var Placeholder = []string{
	"# Nothing brewed yet: upload a blackbox log and let the cat have a look first",
	"# No magic found in the box yet.",
}

// Lines returns the command lines to display, without the save directive.
func Lines(commands []string) []string {
	if len(commands) == 0 {
		return append([]string(nil), Placeholder...)
	}
	return append([]string(nil), commands...)
}

// Commands joins the lines with newlines and appends the save directive.
// Command syntax is not checked.
func Commands(commands []string) string {
	return strings.Join(Lines(commands), "\n") + "\n" + SaveDirective
}
