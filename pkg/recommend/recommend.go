package recommend

import "github.com/helmcode/nekotune/pkg/model"

type Severity string

const (
	Aggressive   Severity = "aggressive"
	Conservative Severity = "conservative"
	Balanced     Severity = "balanced"
)

// Thresholds on either filter multiplier.
const (
	AggressiveAbove   = 1.4
	ConservativeBelow = 0.8
)

type Judgment struct {
	Title    string   `json:"title" yaml:"title"`
	Body     string   `json:"body" yaml:"body"`
	Severity Severity `json:"severity" yaml:"severity"`
}

// Judge classifies the current filter multipliers. The aggressive rule is
// checked first, so a high gyro multiplier wins over a low D-term one.
func Judge(f model.FilterSettings) Judgment {
	if f.GyroMultiplier > AggressiveAbove || f.DTermMultiplier > AggressiveAbove {
		return Judgment{
			Title: "Race mode!",
			Body: "These filters are very aggressive. Latency is minimal, which suits hard racing and freestyle, " +
				"but make sure every frame screw has thread locker: high frequency noise will cook the motors " +
				"in no time. Feel the motor temperature after the first test flight.",
			Severity: Aggressive,
		}
	}
	if f.GyroMultiplier < ConservativeBelow || f.DTermMultiplier < ConservativeBelow {
		return Judgment{
			Title: "Safe and steady.",
			Body: "Filtering is heavy. The quad will fly calmer on a noisy frame, but the sticks may feel a little " +
				"sticky. If the log shows low noise, raise the multipliers step by step to unlock more response.",
			Severity: Conservative,
		}
	}
	return Judgment{
		Title: "Perfect balance~",
		Body: "Latency and noise rejection are in the sweet spot. Control feels crisp without putting extra " +
			"load on the motors. Keep flying this way.",
		Severity: Balanced,
	}
}

// Outlook is the one-line airframe prediction shown under the judgment.
type Outlook struct {
	Handling string `json:"handling" yaml:"handling"`
	Risk     string `json:"risk" yaml:"risk"`
}

func Forecast(f model.FilterSettings) Outlook {
	o := Outlook{Handling: "mild", Risk: "low"}
	if f.GyroMultiplier > 1.3 {
		o.Handling = "very sensitive"
	}
	if f.DTermMultiplier > 1.5 {
		o.Risk = "high"
	}
	return o
}
