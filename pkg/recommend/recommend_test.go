package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helmcode/nekotune/pkg/model"
)

func TestJudge(t *testing.T) {
	tests := []struct {
		name string
		gyro float64
		dt   float64
		want Severity
	}{
		{"defaults", 1.0, 1.0, Balanced},
		{"lower edge inclusive", 0.8, 0.8, Balanced},
		{"upper edge inclusive", 1.4, 1.4, Balanced},
		{"gyro high", 1.45, 1.0, Aggressive},
		{"dterm high", 1.0, 2.0, Aggressive},
		{"gyro low", 0.75, 1.0, Conservative},
		{"dterm low", 1.2, 0.5, Conservative},
		{"high wins over low", 1.5, 0.5, Aggressive},
		{"low and high other way", 0.5, 1.9, Aggressive},
		{"both low", 0.5, 0.6, Conservative},
		{"negative", -1, 1, Conservative},
		{"far out of range", 100, 100, Aggressive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := Judge(model.FilterSettings{GyroMultiplier: tt.gyro, DTermMultiplier: tt.dt})
			assert.Equal(t, tt.want, j.Severity)
			assert.NotEmpty(t, j.Title)
			assert.NotEmpty(t, j.Body)
		})
	}
}

func TestJudgeGrid(t *testing.T) {
	for g := 0.0; g <= 2.5; g += 0.05 {
		for d := 0.0; d <= 2.5; d += 0.05 {
			got := Judge(model.FilterSettings{GyroMultiplier: g, DTermMultiplier: d}).Severity
			switch {
			case g > 1.4 || d > 1.4:
				assert.Equal(t, Aggressive, got, "g=%v d=%v", g, d)
			case g < 0.8 || d < 0.8:
				assert.Equal(t, Conservative, got, "g=%v d=%v", g, d)
			default:
				assert.Equal(t, Balanced, got, "g=%v d=%v", g, d)
			}
		}
	}
}

func TestJudgeNaN(t *testing.T) {
	j := Judge(model.FilterSettings{GyroMultiplier: math.NaN(), DTermMultiplier: math.NaN()})
	assert.Equal(t, Balanced, j.Severity)
}

func TestForecast(t *testing.T) {
	assert.Equal(t, Outlook{Handling: "mild", Risk: "low"}, Forecast(model.DefaultFilterSettings()))
	assert.Equal(t, Outlook{Handling: "very sensitive", Risk: "low"}, Forecast(model.FilterSettings{GyroMultiplier: 1.35, DTermMultiplier: 1.5}))
	assert.Equal(t, Outlook{Handling: "mild", Risk: "high"}, Forecast(model.FilterSettings{GyroMultiplier: 1.3, DTermMultiplier: 1.55}))
}
