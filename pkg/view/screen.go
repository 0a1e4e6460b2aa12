package view

import (
	"fmt"
	"strings"
)

type Screen string

const (
	LogAnalysis      Screen = "LOG_ANALYSIS"
	Dashboard        Screen = "DASHBOARD"
	PIDMasterConsole Screen = "PID_MASTER_CONSOLE"
	FilterSetup      Screen = "FILTER_SETUP"
	CLICommands      Screen = "CLI_COMMANDS"
)

// Screens is the sidebar order.
var Screens = []Screen{LogAnalysis, Dashboard, PIDMasterConsole, FilterSetup, CLICommands}

var labels = map[Screen]string{
	LogAnalysis:      "Blackbox expedition",
	Dashboard:        "Airframe health report",
	PIDMasterConsole: "PID altar",
	FilterSetup:      "Noise exorcism",
	CLICommands:      "CLI portal",
}

func (s Screen) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// NeedsReport reports whether the screen renders analysis data. Such screens
// fall back to placeholder content before a report is loaded.
func (s Screen) NeedsReport() bool {
	return s == Dashboard || s == CLICommands
}

func ParseScreen(raw string) (Screen, error) {
	s := Screen(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := labels[s]; !ok {
		return "", fmt.Errorf("unknown screen %q", raw)
	}
	return s, nil
}
