package model

// PIDAxis holds the classic gains for one rotational axis.
type PIDAxis struct {
	P    float64 `json:"p" yaml:"p"`
	I    float64 `json:"i" yaml:"i"`
	D    float64 `json:"d" yaml:"d"`
	DMax float64 `json:"dMax" yaml:"dMax"`
	FF   float64 `json:"ff" yaml:"ff"`
}

type TraditionalPID struct {
	Roll  PIDAxis `json:"roll" yaml:"roll"`
	Pitch PIDAxis `json:"pitch" yaml:"pitch"`
	Yaw   PIDAxis `json:"yaw" yaml:"yaw"`
}

// ModernPID is the slider form of the tune: every field is a multiplier
// applied on top of the firmware defaults.
type ModernPID struct {
	MasterMultiplier   float64 `json:"masterMultiplier" yaml:"masterMultiplier"`
	DDamping           float64 `json:"dDamping" yaml:"dDamping"`
	PITracking         float64 `json:"piTracking" yaml:"piTracking"`
	StickResponseFF    float64 `json:"stickResponseFF" yaml:"stickResponseFF"`
	DynamicDampingDMax float64 `json:"dynamicDampingDMax" yaml:"dynamicDampingDMax"`
	DriftWobbleIGain   float64 `json:"driftWobbleIGain" yaml:"driftWobbleIGain"`
	PitchRollDRatio    float64 `json:"pitchRollDRatio" yaml:"pitchRollDRatio"`
	PitchRollPIFFRatio float64 `json:"pitchRollPIFFRatio" yaml:"pitchRollPIFFRatio"`
}

type FilterSettings struct {
	GyroMultiplier  float64 `json:"gyroMultiplier" yaml:"gyroMultiplier"`
	DTermMultiplier float64 `json:"dTermMultiplier" yaml:"dTermMultiplier"`
}

// HardwareSpecs describes the airframe. It only feeds the prompt.
type HardwareSpecs struct {
	SizeInch float64 `json:"sizeInch" yaml:"sizeInch"`
	MotorKV  float64 `json:"motorKV" yaml:"motorKV"`
	BatteryS int     `json:"batteryS" yaml:"batteryS"`
}

// Log fidelity tags returned by the analysis service.
const (
	FidelityStandard = "standard"
	FidelityHigh     = "high"
	FidelityExtreme  = "extreme"
)

// Diagnostic status values.
const (
	StatusNormal  = "normal"
	StatusWarning = "warning"
	StatusDanger  = "danger"
)

type Diagnostic struct {
	Module string `json:"module" yaml:"module"`
	Status string `json:"status" yaml:"status"`
	Issue  string `json:"issue" yaml:"issue"`
	Advice string `json:"advice" yaml:"advice"`
}

type FlightStats struct {
	Duration    string  `json:"duration" yaml:"duration"`
	LoopRate    string  `json:"loopRate" yaml:"loopRate"`
	NoiseLevel  string  `json:"noiseLevel" yaml:"noiseLevel"`
	AvgThrottle float64 `json:"avgThrottle" yaml:"avgThrottle"`
	LatencyMs   float64 `json:"latencyMs" yaml:"latencyMs"`
}

type MotorStatus struct {
	M1            float64 `json:"m1" yaml:"m1"`
	M2            float64 `json:"m2" yaml:"m2"`
	M3            float64 `json:"m3" yaml:"m3"`
	M4            float64 `json:"m4" yaml:"m4"`
	PredictedTemp float64 `json:"predictedTemp" yaml:"predictedTemp"`
}

type FFTPoint struct {
	Freq     float64 `json:"freq" yaml:"freq"`
	Raw      float64 `json:"raw" yaml:"raw"`
	Filtered float64 `json:"filtered" yaml:"filtered"`
}

type StepPoint struct {
	Time     float64 `json:"time" yaml:"time"`
	Setpoint float64 `json:"setpoint" yaml:"setpoint"`
	Actual   float64 `json:"actual" yaml:"actual"`
}

// AnalysisResult is the report returned by the analysis service. It is
// rendered verbatim; nothing in it is computed locally.
type AnalysisResult struct {
	LogFidelity         string          `json:"logFidelity" yaml:"logFidelity"`
	Suggestion          string          `json:"suggestion" yaml:"suggestion"`
	PIDs                *TraditionalPID `json:"pids,omitempty" yaml:"pids,omitempty"`
	ModernPIDs          *ModernPID      `json:"modernPids,omitempty" yaml:"modernPids,omitempty"`
	Filters             *FilterSettings `json:"filters,omitempty" yaml:"filters,omitempty"`
	CLICommands         []string        `json:"cliCommands" yaml:"cliCommands"`
	VibrationScore      float64         `json:"vibrationScore" yaml:"vibrationScore"`
	ResponsivenessScore float64         `json:"responsivenessScore" yaml:"responsivenessScore"`
	FlightStats         FlightStats     `json:"flightStats" yaml:"flightStats"`
	MotorStatus         MotorStatus     `json:"motorStatus" yaml:"motorStatus"`
	FFTData             []FFTPoint      `json:"fftData" yaml:"fftData"`
	StepResponse        []StepPoint     `json:"stepResponse" yaml:"stepResponse"`
	Diagnostics         []Diagnostic    `json:"diagnostics" yaml:"diagnostics"`
}

// OverallScore is the headline number on the report.
func (a *AnalysisResult) OverallScore() float64 {
	return (a.VibrationScore + a.ResponsivenessScore) / 2
}
