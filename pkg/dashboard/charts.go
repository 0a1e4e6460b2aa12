package dashboard

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/helmcode/nekotune/pkg/model"
)

const (
	pink = "#ff79c6"
	grey = "#4b5563"
)

func fftChart(r *model.AnalysisResult) *charts.Line {
	x := make([]string, len(r.FFTData))
	raw := make([]opts.LineData, len(r.FFTData))
	filtered := make([]opts.LineData, len(r.FFTData))
	for i, p := range r.FFTData {
		x[i] = strconv.FormatFloat(p.Freq, 'f', -1, 64)
		raw[i] = opts.LineData{Value: p.Raw}
		filtered[i] = opts.LineData{Value: p.Filtered}
	}

	subtitle := "reconstructed from the filtered signal"
	if r.LogFidelity == model.FidelityExtreme {
		subtitle = "raw gyro noise components"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "FFT noise fingerprint", Theme: "dark", Width: "100%", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: "FFT noise fingerprint (0-600Hz)", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hz"}),
	)
	line.SetXAxis(x).
		AddSeries("raw", raw,
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: "rgba(75,85,99,0.05)"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: grey}),
		).
		AddSeries("filtered", filtered,
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: "rgba(255,121,198,0.25)"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: pink}),
		)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}))
	return line
}

func stepChart(r *model.AnalysisResult) *charts.Line {
	x := make([]string, len(r.StepResponse))
	setpoint := make([]opts.LineData, len(r.StepResponse))
	actual := make([]opts.LineData, len(r.StepResponse))
	for i, p := range r.StepResponse {
		x[i] = strconv.FormatFloat(p.Time, 'f', -1, 64)
		setpoint[i] = opts.LineData{Value: p.Setpoint}
		actual[i] = opts.LineData{Value: p.Actual}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Step response", Theme: "dark", Width: "100%", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: "Stick tracking", Subtitle: "based on " + r.LogFidelity + " analysis"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 150}),
	)
	line.SetXAxis(x).
		AddSeries("setpoint", setpoint,
			charts.WithLineChartOpts(opts.LineChart{Step: "end", ShowSymbol: opts.Bool(false)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: grey}),
		).
		AddSeries("actual", actual,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: pink}),
		)
	return line
}

// handleFFTChart renders the noise spectrum of the session's report, or of
// the placeholder report before one is loaded.
func (s *Server) handleFFTChart(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	s.renderChart(w, fftChart(c.Snapshot().ReportOrMock()))
}

func (s *Server) handleStepChart(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	s.renderChart(w, stepChart(c.Snapshot().ReportOrMock()))
}

func (s *Server) renderChart(w http.ResponseWriter, line *charts.Line) {
	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		http.Error(w, fmt.Sprintf("failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
