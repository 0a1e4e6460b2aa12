package model

import "math"

func DefaultTraditionalPID() TraditionalPID {
	return TraditionalPID{
		Roll:  PIDAxis{P: 45, I: 80, D: 35, DMax: 30, FF: 120},
		Pitch: PIDAxis{P: 50, I: 85, D: 40, DMax: 35, FF: 125},
		Yaw:   PIDAxis{P: 45, I: 80, D: 0, DMax: 0, FF: 100},
	}
}

func DefaultModernPID() ModernPID {
	return ModernPID{
		MasterMultiplier:   1.0,
		DDamping:           1.0,
		PITracking:         1.0,
		StickResponseFF:    1.0,
		DynamicDampingDMax: 1.0,
		DriftWobbleIGain:   1.0,
		PitchRollDRatio:    1.0,
		PitchRollPIFFRatio: 1.0,
	}
}

func DefaultFilterSettings() FilterSettings {
	return FilterSettings{GyroMultiplier: 1.0, DTermMultiplier: 1.0}
}

func DefaultHardwareSpecs() HardwareSpecs {
	return HardwareSpecs{SizeInch: 5, MotorKV: 1950, BatteryS: 6}
}

// BatteryCells lists the cell counts offered in the airframe form.
var BatteryCells = []int{1, 2, 3, 4, 6, 8}

// MockAnalysis is shown on report screens until a real report is loaded.
// The series are generated deterministically so repeated renders match.
func MockAnalysis() *AnalysisResult {
	fft := make([]FFTPoint, 41)
	for i := range fft {
		base, floor := 10.0, 1.0
		switch {
		case i < 8:
			base, floor = 40, 4
		case i > 15 && i < 22:
			base = 55
		}
		// deterministic ripple in place of sensor noise
		ripple := 40 + 40*math.Sin(float64(i)*1.7)
		fft[i] = FFTPoint{
			Freq:     float64(i * 15),
			Raw:      base + ripple,
			Filtered: floor + 4 + 4*math.Cos(float64(i)*0.9),
		}
	}

	step := make([]StepPoint, 30)
	for i := range step {
		p := StepPoint{Time: float64(i)}
		if i > 5 {
			t := float64(i - 5)
			p.Setpoint = 100
			p.Actual = 100 + math.Exp(-t*0.3)*30*math.Sin(t*0.8)
		}
		step[i] = p
	}

	return &AnalysisResult{
		LogFidelity: FidelityStandard,
		Suggestion: "Standard log received. Without DEBUG fields the gyro phase lag still shows a lazy D term " +
			"that overshoots on hard stops, and the spectrum has a frame resonance near 180Hz. Tighten the arm " +
			"screws first, then enable `set debug_mode = GYRO_SCALED` for a sharper noise picture next time.",
		VibrationScore:      82,
		ResponsivenessScore: 88,
		FlightStats: FlightStats{
			Duration:    "03:45",
			LoopRate:    "8.0 kHz",
			NoiseLevel:  "low",
			AvgThrottle: 42,
			LatencyMs:   4.2,
		},
		MotorStatus:  MotorStatus{M1: 45, M2: 42, M3: 48, M4: 44, PredictedTemp: 52},
		FFTData:      fft,
		StepResponse: step,
		Diagnostics: []Diagnostic{
			{Module: "Log depth", Status: StatusNormal, Issue: "Standard gyro analysis", Advice: "Enable GYRO_SCALED debug for high fidelity analysis"},
			{Module: "Frame stiffness", Status: StatusWarning, Issue: "Mechanical resonance detected at 180Hz", Advice: "Check the arm screws"},
			{Module: "Power quality", Status: StatusNormal, Issue: "Noise level well controlled", Advice: "Keep it up"},
			{Module: "Prop balance", Status: StatusWarning, Issue: "M2 motor noise slightly high", Advice: "A prop may be chipped"},
		},
		CLICommands: []string{},
	}
}
