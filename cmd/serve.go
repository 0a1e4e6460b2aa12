package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/helmcode/nekotune/pkg/analyzer"
	"github.com/helmcode/nekotune/pkg/config"
	"github.com/helmcode/nekotune/pkg/dashboard"
	"github.com/helmcode/nekotune/pkg/llm"
	"github.com/helmcode/nekotune/pkg/view"
)

type serveOptions struct {
	addr     string
	provider string
	model    string
}

func NewServeCmd() *cobra.Command {
	o := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tuning dashboard in the browser",
		Long: `Start the NekoTune dashboard. Every browser gets its own session with
its own parameters and report; sessions live in memory only.

Examples:
  # Listen on the default address (:8080 or NEKOTUNE_ADDR)
  nekotune serve

  # Listen on localhost only, using Claude for analysis
  nekotune serve --addr 127.0.0.1:9000 --provider claude`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), o)
		},
	}

	cmd.Flags().StringVar(&o.addr, "addr", "", "Listen address (default NEKOTUNE_ADDR or :8080)")
	cmd.Flags().StringVar(&o.provider, "provider", "", providerUsage())
	cmd.Flags().StringVar(&o.model, "model", "", "Model name override")

	return cmd
}

func runServe(ctx context.Context, o *serveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(o.provider, o.model)
	if err != nil {
		return err
	}
	if o.addr != "" {
		cfg.Addr = o.addr
	}

	client, err := llm.NewFactory().CreateLLM(ctx, cfg.Provider, cfg.LLMOptions())
	if err != nil {
		return fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	sessions, err := view.NewSessions(cfg.MaxSessions)
	if err != nil {
		return err
	}
	srv, err := dashboard.New(sessions, analyzer.NewWithLLM(client))
	if err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Dashboard ready at http://%s (%s)", displayAddr(cfg.Addr), client.Model()))
	return srv.ListenAndServe(ctx, cfg.Addr)
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
