package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmcode/nekotune/pkg/analyzer"
	"github.com/helmcode/nekotune/pkg/config"
	"github.com/helmcode/nekotune/pkg/export"
	"github.com/helmcode/nekotune/pkg/formatter"
	"github.com/helmcode/nekotune/pkg/llm"
	"github.com/helmcode/nekotune/pkg/model"
	"github.com/helmcode/nekotune/pkg/recommend"
	"github.com/helmcode/nekotune/pkg/view"
)

type analyzeOptions struct {
	specs        model.HardwareSpecs
	outputFormat string
	provider     string
	model        string
}

func NewAnalyzeCmd() *cobra.Command {
	o := &analyzeOptions{specs: model.DefaultHardwareSpecs()}

	cmd := &cobra.Command{
		Use:   "analyze FILE.bbl",
		Short: "Analyze a blackbox log and print a tuning report",
		Long: `Send a blackbox log name and the airframe profile to the analysis service
and print the tuning report with ready-to-paste CLI commands.

Only the file name is sent. The log contents are never read.

Examples:
  # Analyze a 5 inch 6S quad with default settings
  nekotune analyze LOG00042.BBL

  # Describe a 3 inch 4S build
  nekotune analyze btfl_001.bbl --size 3 --kv 3800 --cells 4

  # Machine readable output
  nekotune analyze btfl_001.bbl -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), o, args[0])
		},
	}

	cmd.Flags().Float64Var(&o.specs.SizeInch, "size", o.specs.SizeInch, "Prop size in inches")
	cmd.Flags().Float64Var(&o.specs.MotorKV, "kv", o.specs.MotorKV, "Motor KV")
	cmd.Flags().IntVar(&o.specs.BatteryS, "cells", o.specs.BatteryS, "Battery cell count (S)")
	cmd.Flags().StringVarP(&o.outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&o.provider, "provider", "", providerUsage())
	cmd.Flags().StringVar(&o.model, "model", "", "Model name override")

	return cmd
}

func runAnalyze(ctx context.Context, o *analyzeOptions, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	name := filepath.Base(path)
	if !analyzer.AcceptLogFile(name) {
		return fmt.Errorf("%s: %w", name, analyzer.ErrNotBlackbox)
	}

	if err := formatter.ValidateFormat(o.outputFormat); err != nil {
		return err
	}

	cfg, err := config.Load(o.provider, o.model)
	if err != nil {
		return err
	}

	client, err := llm.NewFactory().CreateLLM(ctx, cfg.Provider, cfg.LLMOptions())
	if err != nil {
		return fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	human := o.outputFormat == "human" || o.outputFormat == ""
	if human {
		printHeader(name, o.specs, client.Model())
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Start()

	ctrl := view.NewController()
	ctrl.SetSpecs(o.specs)
	if err := ctrl.BeginUpload(name); err != nil {
		s.Stop()
		return err
	}

	result, err := analyzer.NewWithLLM(client).RequestAnalysis(ctx, name, o.specs, func(status string) {
		s.Lock()
		s.Suffix = " " + status
		s.Unlock()
	})
	s.Stop()
	if err != nil {
		ctrl.FailUpload(analyzer.Apology)
		printError(analyzer.Apology)
		return err
	}
	ctrl.ApplyAnalysis(result)
	if human {
		printSuccess("Analysis complete")
	}

	st := ctrl.Snapshot()
	report := &formatter.Report{
		File:     name,
		Analysis: st.Analysis,
		Judgment: recommend.Judge(st.Filters),
		Outlook:  recommend.Forecast(st.Filters),
		Export:   export.Commands(st.Analysis.CLICommands),
	}
	return formatter.DisplayResults(os.Stdout, report, o.outputFormat)
}

func providerUsage() string {
	return "LLM provider (" + llm.JoinProviders(llm.NewFactory().GetAvailableProviders()) + ")"
}

func printHeader(name string, specs model.HardwareSpecs, modelName string) {
	pink := color.New(color.FgHiMagenta, color.Bold)
	fmt.Println()
	pink.Println("🐱 NekoTune blackbox analysis")
	fmt.Printf("📝 Log: %s\n", name)
	fmt.Printf("🚁 Airframe: %g inch / %g KV / %dS\n", specs.SizeInch, specs.MotorKV, specs.BatteryS)
	fmt.Printf("🤖 Model: %s\n", modelName)
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Fprintf(os.Stderr, "✗ %s\n", msg)
}
