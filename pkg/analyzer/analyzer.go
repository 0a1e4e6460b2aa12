package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/helmcode/nekotune/pkg/llm"
	"github.com/helmcode/nekotune/pkg/model"
	"github.com/helmcode/nekotune/pkg/parser"
	"github.com/helmcode/nekotune/pkg/prompts"
	"github.com/helmcode/nekotune/pkg/schema"
)

var ErrNotBlackbox = errors.New("not a blackbox log: expected a .bbl file")

// Apology is the only failure text shown to the pilot.
const Apology = "Oops, the cat got distracted for a moment... please check the blackbox file format, meow!"

// ProgressMessages are shown while the request is in flight. They are
// cosmetic: no incremental work happens between them.
var ProgressMessages = []string{
	"Meow~ sniffing the field headers in the log...",
	"Judging data clarity... are there DEBUG fields in here?",
	"Purr purr~ building the analysis matrix from the available data...",
	"Writing the build and tuning report with cat paws!",
}

const DefaultProgressInterval = 800 * time.Millisecond

type Stage string

const (
	StageTransport Stage = "transport"
	StageDecode    Stage = "decode"
)

// AnalysisError is a terminal failure of one analysis request.
type AnalysisError struct {
	Stage Stage
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis %s failed: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// ProgressFunc receives human readable status lines.
type ProgressFunc func(status string)

type Analyzer struct {
	llm      llm.LLM
	interval time.Duration
}

func NewWithLLM(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l, interval: DefaultProgressInterval}
}

// WithProgressInterval changes the delay between progress messages.
func (a *Analyzer) WithProgressInterval(d time.Duration) *Analyzer {
	a.interval = d
	return a
}

// AcceptLogFile reports whether name looks like a blackbox log.
func AcceptLogFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".bbl")
}

// RequestAnalysis asks the analysis service about the named log. Progress
// messages run alongside the call and stop as soon as it returns. There is
// no retry; a failed call or an invalid response yields *AnalysisError and
// no partial result.
func (a *Analyzer) RequestAnalysis(ctx context.Context, fileName string, specs model.HardwareSpecs, progress ProgressFunc) (*model.AnalysisResult, error) {
	if !AcceptLogFile(fileName) {
		return nil, ErrNotBlackbox
	}

	stop := a.startProgress(ctx, progress)
	defer stop()

	rawResp, err := a.llm.Chat(ctx, llm.Request{
		Prompt: prompts.BuildAnalysisPrompt(fileName, specs),
		Schema: schema.AnalysisSchema(),
	})
	if err != nil {
		log.Printf("Analysis failed for %s (%s): %v", fileName, a.llm.Model(), err)
		return nil, &AnalysisError{Stage: StageTransport, Err: err}
	}

	result, err := parser.ParseAnalysisResponse(rawResp)
	if err != nil {
		log.Printf("Analysis failed for %s (%s): %v", fileName, a.llm.Model(), err)
		return nil, &AnalysisError{Stage: StageDecode, Err: err}
	}
	return result, nil
}

func (a *Analyzer) startProgress(ctx context.Context, progress ProgressFunc) func() {
	if progress == nil || len(ProgressMessages) == 0 {
		return func() {}
	}
	progress(ProgressMessages[0])

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for _, msg := range ProgressMessages[1:] {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				progress(msg)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		wg.Wait()
	}
}
