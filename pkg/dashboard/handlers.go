package dashboard

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/helmcode/nekotune/pkg/analyzer"
	"github.com/helmcode/nekotune/pkg/model"
	"github.com/helmcode/nekotune/pkg/recommend"
	"github.com/helmcode/nekotune/pkg/view"
)

const uploadField = "log"

var funcs = template.FuncMap{
	"fixed": func(digits int, v float64) string { return strconv.FormatFloat(v, 'f', digits, 64) },
}

type sliderView struct {
	model.Slider
	Value float64
}

type fieldView struct {
	Name  string
	Value float64
}

type axisView struct {
	Name   string
	Fields []fieldView
}

type pageData struct {
	State       view.State
	Screens     []view.Screen
	Report      *model.AnalysisResult
	Mock        bool
	Judgment    recommend.Judgment
	Outlook     recommend.Outlook
	ExportLines []string
	Modern      []sliderView
	Filters     []sliderView
	Axes        []axisView
	Batteries   []int
}

func newPageData(st view.State) pageData {
	d := pageData{
		State:       st,
		Screens:     view.Screens,
		Report:      st.ReportOrMock(),
		Mock:        st.Analysis == nil && st.Screen.NeedsReport(),
		Judgment:    st.Judgment(),
		Outlook:     st.Outlook(),
		ExportLines: st.ExportLines(),
		Batteries:   model.BatteryCells,
	}
	for _, sl := range model.ModernSliders {
		v, _ := st.Modern.Get(sl.Key)
		d.Modern = append(d.Modern, sliderView{Slider: sl, Value: v})
	}
	for _, sl := range model.FilterSliders {
		v, _ := st.Filters.Get(sl.Key)
		d.Filters = append(d.Filters, sliderView{Slider: sl, Value: v})
	}
	pids := st.PIDs
	for _, name := range model.Axes {
		axis, _ := pids.Axis(name)
		av := axisView{Name: name}
		for _, f := range model.AxisFields {
			v, _ := axis.Get(f)
			av.Fields = append(av.Fields, fieldView{Name: f, Value: v})
		}
		d.Axes = append(d.Axes, av)
	}
	return d
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "page.html", newPageData(c.Snapshot())); err != nil {
		log.Printf("Render page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	screen, err := view.ParseScreen(r.FormValue("screen"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.Navigate(screen)
	back(w, r)
}

func (s *Server) handleSpecs(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	specs := c.Snapshot().Specs

	var err error
	if specs.SizeInch, err = formFloat(r, "sizeInch", specs.SizeInch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if specs.MotorKV, err = formFloat(r, "motorKV", specs.MotorKV); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if raw := r.FormValue("batteryS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("batteryS: %v", err), http.StatusBadRequest)
			return
		}
		specs.BatteryS = n
	}
	c.SetSpecs(specs)
	back(w, r)
}

// handleUpload takes the file name from the multipart header and discards the
// file body unread. Names without a .bbl suffix are ignored, as are uploads
// while another analysis is running.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)

	name, err := uploadedFileName(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !analyzer.AcceptLogFile(name) {
		back(w, r)
		return
	}
	if err := c.BeginUpload(name); err != nil {
		back(w, r)
		return
	}
	s.startAnalysis(c, name, c.Snapshot().Specs)
	back(w, r)
}

func uploadedFileName(r *http.Request) (string, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return "", fmt.Errorf("expected multipart upload: %w", err)
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("read upload: %w", err)
		}
		if part.FormName() == uploadField && part.FileName() != "" {
			name := part.FileName()
			_ = part.Close()
			return name, nil
		}
		_ = part.Close()
	}
}

func (s *Server) handleModern(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	values, err := formFloats(r, sliderKeys(model.ModernSliders))
	if err == nil {
		err = c.SetModernFields(values)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	back(w, r)
}

func (s *Server) handleTraditional(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	var keys []string
	for _, axis := range model.Axes {
		for _, field := range model.AxisFields {
			keys = append(keys, axis+"."+field)
		}
	}
	values, err := formFloats(r, keys)
	if err == nil {
		err = c.SetAxisFields(values)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	back(w, r)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	values, err := formFloats(r, sliderKeys(model.FilterSliders))
	if err == nil {
		err = c.SetFilterFields(values)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	back(w, r)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, c.Snapshot().ExportText())
}

// formFloats parses every key the form carries. Nothing is returned unless
// all of them parse.
func formFloats(r *http.Request, keys []string) (map[string]float64, error) {
	values := make(map[string]float64, len(keys))
	for _, key := range keys {
		raw := strings.TrimSpace(r.FormValue(key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", key, err)
		}
		values[key] = v
	}
	return values, nil
}

func sliderKeys(sliders []model.Slider) []string {
	keys := make([]string, len(sliders))
	for i, sl := range sliders {
		keys[i] = sl.Key
	}
	return keys
}

func formFloat(r *http.Request, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", key, err)
	}
	return v, nil
}

func back(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
