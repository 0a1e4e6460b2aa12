package view

import (
	"errors"
	"strings"
	"sync"

	"github.com/helmcode/nekotune/pkg/export"
	"github.com/helmcode/nekotune/pkg/model"
	"github.com/helmcode/nekotune/pkg/recommend"
)

var ErrUploadInProgress = errors.New("an analysis is already running")

// State is everything one dashboard session holds in memory.
type State struct {
	Screen    Screen
	LogLoaded bool
	Uploading bool
	FileName  string
	Status    string

	PIDs    model.TraditionalPID
	Modern  model.ModernPID
	Filters model.FilterSettings
	Specs   model.HardwareSpecs

	// Analysis is replaced wholesale, never edited in place.
	Analysis *model.AnalysisResult
}

// ReportOrMock returns the loaded report or the placeholder report.
func (s State) ReportOrMock() *model.AnalysisResult {
	if s.Analysis != nil {
		return s.Analysis
	}
	return model.MockAnalysis()
}

func (s State) Judgment() recommend.Judgment {
	return recommend.Judge(s.Filters)
}

func (s State) Outlook() recommend.Outlook {
	return recommend.Forecast(s.Filters)
}

// ExportLines are the command lines shown on the CLI screen.
func (s State) ExportLines() []string {
	if s.Analysis == nil {
		return export.Lines(nil)
	}
	return export.Lines(s.Analysis.CLICommands)
}

// ExportText is the clipboard payload.
func (s State) ExportText() string {
	if s.Analysis == nil {
		return export.Commands(nil)
	}
	return export.Commands(s.Analysis.CLICommands)
}

// Controller owns the state of one session. All mutations go through its
// methods and each runs to completion under the lock.
type Controller struct {
	mu sync.Mutex
	st State
}

func NewController() *Controller {
	return &Controller{st: State{
		Screen:  LogAnalysis,
		PIDs:    model.DefaultTraditionalPID(),
		Modern:  model.DefaultModernPID(),
		Filters: model.DefaultFilterSettings(),
		Specs:   model.DefaultHardwareSpecs(),
	}}
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st
}

// Navigate switches screens. Every screen is reachable from every other.
func (c *Controller) Navigate(s Screen) {
	c.mu.Lock()
	c.st.Screen = s
	c.mu.Unlock()
}

func (c *Controller) SetAxisField(axis, field string, v float64) error {
	return c.SetAxisFields(map[string]float64{axis + "." + field: v})
}

// SetAxisFields applies gains keyed "axis.field" (e.g. "roll.p"). Either
// every value is applied or none is.
func (c *Controller) SetAxisFields(values map[string]float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	pids := c.st.PIDs
	for key, v := range values {
		axis, field, _ := strings.Cut(key, ".")
		a, err := pids.Axis(axis)
		if err != nil {
			return err
		}
		if err := a.Set(field, v); err != nil {
			return err
		}
	}
	c.st.PIDs = pids
	return nil
}

func (c *Controller) SetModernField(key string, v float64) error {
	return c.SetModernFields(map[string]float64{key: v})
}

// SetModernFields applies all multipliers or none of them.
func (c *Controller) SetModernFields(values map[string]float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	modern := c.st.Modern
	for key, v := range values {
		if err := modern.Set(key, v); err != nil {
			return err
		}
	}
	c.st.Modern = modern
	return nil
}

func (c *Controller) SetFilterField(key string, v float64) error {
	return c.SetFilterFields(map[string]float64{key: v})
}

// SetFilterFields applies all multipliers or none of them.
func (c *Controller) SetFilterFields(values map[string]float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	filters := c.st.Filters
	for key, v := range values {
		if err := filters.Set(key, v); err != nil {
			return err
		}
	}
	c.st.Filters = filters
	return nil
}

func (c *Controller) SetSpecs(specs model.HardwareSpecs) {
	c.mu.Lock()
	c.st.Specs = specs
	c.mu.Unlock()
}

// BeginUpload marks an analysis as running and disables further uploads.
func (c *Controller) BeginUpload(fileName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.Uploading {
		return ErrUploadInProgress
	}
	c.st.Uploading = true
	c.st.FileName = fileName
	c.st.Status = ""
	return nil
}

// SetStatus shows a progress line while an upload is running.
func (c *Controller) SetStatus(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.Uploading {
		c.st.Status = msg
	}
}

// FailUpload returns to the idle upload screen with msg shown. The parameter
// and report models are left untouched.
func (c *Controller) FailUpload(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Uploading = false
	c.st.Status = msg
	c.st.Screen = LogAnalysis
}

// ApplyAnalysis installs a new report in one step: parameter slices carried
// by the report replace the current ones, the log is marked loaded and the
// dashboard is shown regardless of the current screen.
func (c *Controller) ApplyAnalysis(r *model.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Analysis = r
	if r.PIDs != nil {
		c.st.PIDs = *r.PIDs
	}
	if r.ModernPIDs != nil {
		c.st.Modern = *r.ModernPIDs
	}
	if r.Filters != nil {
		c.st.Filters = *r.Filters
	}
	c.st.LogLoaded = true
	c.st.Uploading = false
	c.st.Status = ""
	c.st.Screen = Dashboard
}
