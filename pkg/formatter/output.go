package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/nekotune/pkg/model"
	"github.com/helmcode/nekotune/pkg/recommend"
)

// Report is everything the analyze command prints.
type Report struct {
	File     string                `json:"file" yaml:"file"`
	Analysis *model.AnalysisResult `json:"analysis" yaml:"analysis"`
	Judgment recommend.Judgment    `json:"judgment" yaml:"judgment"`
	Outlook  recommend.Outlook     `json:"outlook" yaml:"outlook"`
	Export   string                `json:"export" yaml:"export"`
}

// ValidateFormat checks an output format before any work is done for it.
func ValidateFormat(format string) error {
	switch format {
	case "human", "", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported output format: %s (supported: human, json, yaml)", format)
}

// DisplayResults formats and displays the analysis results
func DisplayResults(w io.Writer, report *Report, format string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	switch format {
	case "json":
		return displayJSON(w, report)
	case "yaml":
		return displayYAML(w, report)
	default:
		displayHuman(w, report)
		return nil
	}
}

func displayJSON(w io.Writer, report *Report) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, report *Report) error {
	output, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayHuman(w io.Writer, report *Report) {
	pink := color.New(color.FgHiMagenta, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	a := report.Analysis
	fmt.Fprintln(w)

	pink.Fprintf(w, "🐾 NEKOTUNE REPORT  %s\n", report.File)
	fmt.Fprintf(w, "   Overall %.0f  |  vibration %.0f  |  responsiveness %.0f  |  fidelity %s\n\n",
		a.OverallScore(), a.VibrationScore, a.ResponsivenessScore, a.LogFidelity)

	white.Fprintln(w, "💬 SUGGESTION:")
	fmt.Fprintln(w, wrapText(a.Suggestion, 80, "   "))
	fmt.Fprintln(w)

	fs, ms := a.FlightStats, a.MotorStatus
	cyan.Fprintln(w, "📊 FLIGHT STATS:")
	fmt.Fprintf(w, "   Duration %s  |  loop %s  |  noise %s  |  avg throttle %.0f%%  |  latency %.1fms\n",
		fs.Duration, fs.LoopRate, fs.NoiseLevel, fs.AvgThrottle, fs.LatencyMs)
	fmt.Fprintf(w, "   Motors M1 %.0f%%  M2 %.0f%%  M3 %.0f%%  M4 %.0f%%  |  predicted temp %s\n\n",
		ms.M1, ms.M2, ms.M3, ms.M4, tempString(ms.PredictedTemp))

	if len(a.FFTData) > 0 {
		raw := make([]float64, len(a.FFTData))
		filtered := make([]float64, len(a.FFTData))
		for i, p := range a.FFTData {
			raw[i], filtered[i] = p.Raw, p.Filtered
		}
		cyan.Fprintln(w, "〰️  NOISE SPECTRUM (raw vs filtered):")
		fmt.Fprintln(w, asciigraph.PlotMany([][]float64{raw, filtered},
			asciigraph.Height(10), asciigraph.Width(64), asciigraph.Offset(6),
			asciigraph.Caption(fmt.Sprintf("%.0f-%.0f Hz", a.FFTData[0].Freq, a.FFTData[len(a.FFTData)-1].Freq))))
		fmt.Fprintln(w)
	}

	if len(a.StepResponse) > 0 {
		setpoint := make([]float64, len(a.StepResponse))
		actual := make([]float64, len(a.StepResponse))
		for i, p := range a.StepResponse {
			setpoint[i], actual[i] = p.Setpoint, p.Actual
		}
		cyan.Fprintln(w, "🎯 STEP RESPONSE (setpoint vs actual):")
		fmt.Fprintln(w, asciigraph.PlotMany([][]float64{setpoint, actual},
			asciigraph.Height(8), asciigraph.Width(64), asciigraph.Offset(6),
			asciigraph.Caption("based on "+a.LogFidelity+" analysis")))
		fmt.Fprintln(w)
	}

	if len(a.Diagnostics) > 0 {
		yellow.Fprintln(w, "🔧 BUILD CHECKUP:")
		for i, d := range a.Diagnostics {
			fmt.Fprintf(w, "   %d. %s %s: %s\n", i+1, getStatusIcon(d.Status), d.Module, d.Issue)
			if d.Advice != "" {
				fmt.Fprintf(w, "      Advice: %s\n", d.Advice)
			}
		}
		fmt.Fprintln(w)
	}

	j := report.Judgment
	getSeverityColor(j.Severity).Fprintf(w, "🐱 FILTER VERDICT: %s\n", j.Title)
	fmt.Fprintln(w, wrapText(j.Body, 80, "   "))
	fmt.Fprintf(w, "   Handling: %s  |  risk: %s\n\n", report.Outlook.Handling, report.Outlook.Risk)

	pink.Fprintln(w, "⌨️  CLI COMMANDS:")
	for _, line := range strings.Split(report.Export, "\n") {
		fmt.Fprintf(w, "   %s\n", color.GreenString(line))
	}
	fmt.Fprintln(w)

	// Footer
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Remove the props and check motor temperature after the first flight"))
}

func tempString(c float64) string {
	s := fmt.Sprintf("%.0f°C", c)
	if c > 70 {
		return color.RedString(s)
	}
	return color.GreenString(s)
}

func getSeverityColor(s recommend.Severity) *color.Color {
	switch s {
	case recommend.Aggressive:
		return color.New(color.FgRed, color.Bold)
	case recommend.Conservative:
		return color.New(color.FgBlue, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

func getStatusIcon(status string) string {
	switch strings.ToLower(status) {
	case model.StatusNormal:
		return "🟢"
	case model.StatusWarning:
		return "🟡"
	case model.StatusDanger:
		return "🔴"
	default:
		return "⚪"
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
