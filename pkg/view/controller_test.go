package view

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/nekotune/pkg/export"
	"github.com/helmcode/nekotune/pkg/model"
	"github.com/helmcode/nekotune/pkg/recommend"
)

func fullReport() *model.AnalysisResult {
	r := model.MockAnalysis()
	r.PIDs = &model.TraditionalPID{
		Roll:  model.PIDAxis{P: 1, I: 2, D: 3, DMax: 4, FF: 5},
		Pitch: model.PIDAxis{P: 6, I: 7, D: 8, DMax: 9, FF: 10},
		Yaw:   model.PIDAxis{P: 11, I: 12, D: 0, DMax: 0, FF: 13},
	}
	modern := model.DefaultModernPID()
	modern.MasterMultiplier = 1.25
	r.ModernPIDs = &modern
	r.Filters = &model.FilterSettings{GyroMultiplier: 1.6, DTermMultiplier: 1.1}
	r.CLICommands = []string{"set p_roll = 1", "set gyro_lpf1_static_hz = 250"}
	return r
}

func TestInitialState(t *testing.T) {
	st := NewController().Snapshot()
	assert.Equal(t, LogAnalysis, st.Screen)
	assert.False(t, st.LogLoaded)
	assert.False(t, st.Uploading)
	assert.Nil(t, st.Analysis)
	assert.Equal(t, model.DefaultTraditionalPID(), st.PIDs)
	assert.Equal(t, model.DefaultModernPID(), st.Modern)
	assert.Equal(t, model.DefaultFilterSettings(), st.Filters)
}

func TestNavigateAnyToAny(t *testing.T) {
	c := NewController()
	for _, from := range Screens {
		for _, to := range Screens {
			c.Navigate(from)
			c.Navigate(to)
			assert.Equal(t, to, c.Snapshot().Screen)
		}
	}
}

func TestScreensBeforeReportUsePlaceholders(t *testing.T) {
	c := NewController()
	for _, s := range Screens {
		c.Navigate(s)
		st := c.Snapshot()
		assert.NotPanics(t, func() {
			r := st.ReportOrMock()
			require.NotNil(t, r)
			assert.NotEmpty(t, r.FFTData)
			assert.Equal(t, export.Placeholder, st.ExportLines())
			assert.Equal(t, export.Commands(nil), st.ExportText())
		})
	}
}

func TestApplyAnalysisOverridesAll(t *testing.T) {
	c := NewController()
	c.Navigate(FilterSetup)
	require.NoError(t, c.BeginUpload("flight.bbl"))

	r := fullReport()
	c.ApplyAnalysis(r)

	st := c.Snapshot()
	assert.Equal(t, Dashboard, st.Screen)
	assert.True(t, st.LogLoaded)
	assert.False(t, st.Uploading)
	assert.Same(t, r, st.Analysis)
	assert.Equal(t, *r.PIDs, st.PIDs)
	assert.Equal(t, *r.ModernPIDs, st.Modern)
	assert.Equal(t, *r.Filters, st.Filters)
	assert.Equal(t, recommend.Aggressive, st.Judgment().Severity)
	assert.Equal(t, "set p_roll = 1\nset gyro_lpf1_static_hz = 250\nsave", st.ExportText())
}

func TestApplyAnalysisKeepsMissingSlices(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SetAxisField("roll", "p", 99))
	require.NoError(t, c.SetModernField("dDamping", 1.7))
	require.NoError(t, c.SetFilterField("dTermMultiplier", 0.6))
	before := c.Snapshot()

	r := model.MockAnalysis()
	c.ApplyAnalysis(r)

	st := c.Snapshot()
	assert.Equal(t, before.PIDs, st.PIDs)
	assert.Equal(t, before.Modern, st.Modern)
	assert.Equal(t, before.Filters, st.Filters)
	assert.Equal(t, Dashboard, st.Screen)
	assert.True(t, st.LogLoaded)
}

func TestApplyAnalysisPartialOverride(t *testing.T) {
	c := NewController()
	r := model.MockAnalysis()
	r.Filters = &model.FilterSettings{GyroMultiplier: 0.7, DTermMultiplier: 0.9}
	c.ApplyAnalysis(r)

	st := c.Snapshot()
	assert.Equal(t, model.DefaultTraditionalPID(), st.PIDs)
	assert.Equal(t, model.DefaultModernPID(), st.Modern)
	assert.Equal(t, *r.Filters, st.Filters)
}

func TestFailUploadLeavesModels(t *testing.T) {
	c := NewController()
	c.ApplyAnalysis(fullReport())
	before := c.Snapshot()

	c.Navigate(CLICommands)
	require.NoError(t, c.BeginUpload("next.bbl"))
	assert.ErrorIs(t, c.BeginUpload("again.bbl"), ErrUploadInProgress)
	c.SetStatus("sniffing")
	assert.Equal(t, "sniffing", c.Snapshot().Status)

	c.FailUpload("sorry")

	st := c.Snapshot()
	assert.False(t, st.Uploading)
	assert.Equal(t, LogAnalysis, st.Screen)
	assert.Equal(t, "sorry", st.Status)
	assert.Same(t, before.Analysis, st.Analysis)
	assert.Equal(t, before.PIDs, st.PIDs)
	assert.Equal(t, before.Modern, st.Modern)
	assert.Equal(t, before.Filters, st.Filters)

	// upload is enabled again
	require.NoError(t, c.BeginUpload("retry.bbl"))
}

func TestSetStatusIgnoredWhenIdle(t *testing.T) {
	c := NewController()
	c.SetStatus("late progress")
	assert.Empty(t, c.Snapshot().Status)
}

func TestSettersRejectUnknownFields(t *testing.T) {
	c := NewController()
	assert.ErrorIs(t, c.SetAxisField("collective", "p", 1), model.ErrUnknownField)
	assert.ErrorIs(t, c.SetAxisField("roll", "q", 1), model.ErrUnknownField)
	assert.ErrorIs(t, c.SetModernField("nope", 1), model.ErrUnknownField)
	assert.ErrorIs(t, c.SetFilterField("nope", 1), model.ErrUnknownField)
	assert.Equal(t, NewController().Snapshot(), c.Snapshot())
}

func TestBatchSettersAreAllOrNothing(t *testing.T) {
	c := NewController()

	err := c.SetAxisFields(map[string]float64{"roll.p": 99, "pitch.q": 1})
	assert.ErrorIs(t, err, model.ErrUnknownField)
	err = c.SetModernFields(map[string]float64{"masterMultiplier": 1.9, "nope": 1})
	assert.ErrorIs(t, err, model.ErrUnknownField)
	err = c.SetFilterFields(map[string]float64{"gyroMultiplier": 1.9, "nope": 1})
	assert.ErrorIs(t, err, model.ErrUnknownField)
	assert.Equal(t, NewController().Snapshot(), c.Snapshot())

	require.NoError(t, c.SetAxisFields(map[string]float64{"roll.p": 99, "yaw.ff": 80}))
	require.NoError(t, c.SetFilterFields(map[string]float64{"gyroMultiplier": 1.9, "dTermMultiplier": 0.7}))
	st := c.Snapshot()
	assert.Equal(t, 99.0, st.PIDs.Roll.P)
	assert.Equal(t, 80.0, st.PIDs.Yaw.FF)
	assert.Equal(t, model.FilterSettings{GyroMultiplier: 1.9, DTermMultiplier: 0.7}, st.Filters)
}

func TestConcurrentEdits(t *testing.T) {
	c := NewController()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(v float64) {
			defer wg.Done()
			_ = c.SetFilterField("gyroMultiplier", v)
		}(float64(i))
		go func() {
			defer wg.Done()
			_ = c.Snapshot().Judgment()
		}()
	}
	wg.Wait()
}

func TestParseScreen(t *testing.T) {
	s, err := ParseScreen("filter_setup")
	require.NoError(t, err)
	assert.Equal(t, FilterSetup, s)

	_, err = ParseScreen("SETTINGS")
	assert.Error(t, err)

	assert.True(t, Dashboard.NeedsReport())
	assert.False(t, PIDMasterConsole.NeedsReport())
	assert.Equal(t, "PID altar", PIDMasterConsole.Label())
}

func TestSessions(t *testing.T) {
	s, err := NewSessions(2)
	require.NoError(t, err)

	id1, c1 := s.Create()
	got, ok := s.Get(id1)
	require.True(t, ok)
	assert.Same(t, c1, got)

	_, ok = s.Get("")
	assert.False(t, ok)

	id2, _ := s.Create()
	assert.NotEqual(t, id1, id2)
	s.Create()
	assert.Equal(t, 2, s.Len())

	_, ok = s.Get(id1)
	assert.False(t, ok, "oldest session is evicted")
}
