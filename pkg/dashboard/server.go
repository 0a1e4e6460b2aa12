// Package dashboard serves the browser UI: one page per screen, form posts
// for every edit, and server-rendered charts.
package dashboard

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/helmcode/nekotune/pkg/analyzer"
	"github.com/helmcode/nekotune/pkg/model"
	"github.com/helmcode/nekotune/pkg/view"
)

const sessionCookie = "nekotune_session"

//go:embed templates/*.html
var templateFS embed.FS

// Requester runs one analysis. *analyzer.Analyzer satisfies it.
type Requester interface {
	RequestAnalysis(ctx context.Context, fileName string, specs model.HardwareSpecs, progress analyzer.ProgressFunc) (*model.AnalysisResult, error)
}

type Server struct {
	sessions  *view.Sessions
	requester Requester
	tmpl      *template.Template
	mux       *http.ServeMux

	// analyses outlive the upload request; they use this context and are
	// tracked so shutdown can wait for them.
	baseCtx context.Context
	cancel  context.CancelFunc
	running sync.WaitGroup
}

func New(sessions *view.Sessions, requester Requester) (*Server, error) {
	tmpl, err := template.New("page.html").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		sessions:  sessions,
		requester: requester,
		tmpl:      tmpl,
		mux:       http.NewServeMux(),
		baseCtx:   ctx,
		cancel:    cancel,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /navigate", s.handleNavigate)
	s.mux.HandleFunc("POST /specs", s.handleSpecs)
	s.mux.HandleFunc("POST /upload", s.handleUpload)
	s.mux.HandleFunc("POST /pid/modern", s.handleModern)
	s.mux.HandleFunc("POST /pid/traditional", s.handleTraditional)
	s.mux.HandleFunc("POST /filters", s.handleFilters)
	s.mux.HandleFunc("GET /export.txt", s.handleExport)
	s.mux.HandleFunc("GET /charts/fft", s.handleFFTChart)
	s.mux.HandleFunc("GET /charts/step", s.handleStepChart)
}

func (s *Server) Handler() http.Handler { return s.mux }

// Wait blocks until every running analysis has finished.
func (s *Server) Wait() { s.running.Wait() }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// and aborts analyses still in flight.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting dashboard on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.cancel()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Dashboard shutdown error: %v", err)
	}
	s.cancel()
	s.Wait()
	return nil
}

// session returns the caller's controller, starting a new session when the
// cookie is missing or has been evicted.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *view.Controller {
	if ck, err := r.Cookie(sessionCookie); err == nil {
		if c, ok := s.sessions.Get(ck.Value); ok {
			return c
		}
	}
	id, c := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c
}

// startAnalysis runs the request in the background. The controller applies
// the result (or the failure) in one step when it resolves.
func (s *Server) startAnalysis(c *view.Controller, fileName string, specs model.HardwareSpecs) {
	s.running.Add(1)
	go func() {
		defer s.running.Done()
		res, err := s.requester.RequestAnalysis(s.baseCtx, fileName, specs, c.SetStatus)
		if err != nil {
			c.FailUpload(analyzer.Apology)
			return
		}
		c.ApplyAnalysis(res)
	}()
}
