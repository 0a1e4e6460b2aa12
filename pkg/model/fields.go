package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownField = errors.New("unknown parameter field")

// Axes and AxisFields give the display order of the classic PID grid.
var (
	Axes       = []string{"roll", "pitch", "yaw"}
	AxisFields = []string{"p", "i", "d", "dMax", "ff"}
)

// Slider describes the input widget for one multiplier. The bounds belong to
// the widget only; the model accepts any value.
type Slider struct {
	Key   string
	Label string
	Desc  string
	Min   float64
	Max   float64
	Step  float64
}

var ModernSliders = []Slider{
	{Key: "masterMultiplier", Label: "Master multiplier", Desc: "Scales the whole tune", Min: 0.1, Max: 2.0, Step: 0.05},
	{Key: "dDamping", Label: "Damping (D gain)", Desc: "Less overshoot and wobble", Min: 0.1, Max: 2.0, Step: 0.05},
	{Key: "piTracking", Label: "Tracking (P & I gain)", Desc: "Tighter stick following", Min: 0.1, Max: 2.0, Step: 0.05},
	{Key: "stickResponseFF", Label: "Stick response (FF)", Desc: "Snappier stick input", Min: 0.1, Max: 2.0, Step: 0.05},
	{Key: "dynamicDampingDMax", Label: "Dynamic damping (D Max)", Desc: "Braking on hard stops", Min: 0.1, Max: 2.0, Step: 0.05},
	{Key: "driftWobbleIGain", Label: "Drift / wobble (I gain)", Desc: "Holds attitude at low speed", Min: 0.1, Max: 2.0, Step: 0.05},
	{Key: "pitchRollDRatio", Label: "Pitch damping (P:R D)", Desc: "Pitch to roll damping balance", Min: 0.1, Max: 2.0, Step: 0.05},
	{Key: "pitchRollPIFFRatio", Label: "Pitch tracking (P:R P/I/FF)", Desc: "Pitch to roll tracking balance", Min: 0.1, Max: 2.0, Step: 0.05},
}

var FilterSliders = []Slider{
	{Key: "gyroMultiplier", Label: "Gyro filter multiplier", Desc: "Clarity of the raw gyro signal", Min: 0.5, Max: 2.0, Step: 0.05},
	{Key: "dTermMultiplier", Label: "D-term filter multiplier", Desc: "High frequency noise let through the D term", Min: 0.5, Max: 2.0, Step: 0.05},
}

// Axis returns a pointer to the named axis.
func (t *TraditionalPID) Axis(name string) (*PIDAxis, error) {
	switch strings.ToLower(name) {
	case "roll":
		return &t.Roll, nil
	case "pitch":
		return &t.Pitch, nil
	case "yaw":
		return &t.Yaw, nil
	}
	return nil, fmt.Errorf("%w: axis %q", ErrUnknownField, name)
}

func (a *PIDAxis) field(name string) (*float64, error) {
	switch name {
	case "p":
		return &a.P, nil
	case "i":
		return &a.I, nil
	case "d":
		return &a.D, nil
	case "dMax":
		return &a.DMax, nil
	case "ff":
		return &a.FF, nil
	}
	return nil, fmt.Errorf("%w: pid field %q", ErrUnknownField, name)
}

// Get reads one gain by field name (p, i, d, dMax, ff).
func (a *PIDAxis) Get(name string) (float64, error) {
	f, err := a.field(name)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

// Set writes one gain by field name. No range checks.
func (a *PIDAxis) Set(name string, v float64) error {
	f, err := a.field(name)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (m *ModernPID) field(key string) (*float64, error) {
	switch key {
	case "masterMultiplier":
		return &m.MasterMultiplier, nil
	case "dDamping":
		return &m.DDamping, nil
	case "piTracking":
		return &m.PITracking, nil
	case "stickResponseFF":
		return &m.StickResponseFF, nil
	case "dynamicDampingDMax":
		return &m.DynamicDampingDMax, nil
	case "driftWobbleIGain":
		return &m.DriftWobbleIGain, nil
	case "pitchRollDRatio":
		return &m.PitchRollDRatio, nil
	case "pitchRollPIFFRatio":
		return &m.PitchRollPIFFRatio, nil
	}
	return nil, fmt.Errorf("%w: modern multiplier %q", ErrUnknownField, key)
}

func (m *ModernPID) Get(key string) (float64, error) {
	f, err := m.field(key)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

func (m *ModernPID) Set(key string, v float64) error {
	f, err := m.field(key)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *FilterSettings) field(key string) (*float64, error) {
	switch key {
	case "gyroMultiplier":
		return &f.GyroMultiplier, nil
	case "dTermMultiplier":
		return &f.DTermMultiplier, nil
	}
	return nil, fmt.Errorf("%w: filter multiplier %q", ErrUnknownField, key)
}

func (f *FilterSettings) Get(key string) (float64, error) {
	p, err := f.field(key)
	if err != nil {
		return 0, err
	}
	return *p, nil
}

func (f *FilterSettings) Set(key string, v float64) error {
	p, err := f.field(key)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
