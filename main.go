package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"system-indicators/collector"
	"system-indicators/config"
	"system-indicators/engine"
	"system-indicators/ui"

	"github.com/spf13/cobra"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	env         config.Env
	configPath  string
	sampleCount int
	samplePlain bool
)

var rootCmd = &cobra.Command{
	Use:           "system-indicators",
	Short:         "Always-visible row of CPU, memory, temperature, network and disk indicators",
	Version:       fmt.Sprintf("%s (%s) built on %s", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runDisplay,
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print indicator rows to stdout, one per second",
	Args:  cobra.NoArgs,
	RunE:  runSample,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and list the indicators",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	env = config.LoadEnv()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", env.ConfigPath, "Path to config file")
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 2, "Number of rows to print")
	sampleCmd.Flags().BoolVar(&samplePlain, "plain", false, "Print text only, without colors")

	rootCmd.AddCommand(sampleCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT/SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// buildEngine loads config and wires the real sources. Config errors are
// returned before anything is drawn.
func buildEngine() (*config.Config, *engine.Engine, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	collector.DetectCapabilities(env.SysfsRoot)

	sources, closer := collector.NewSources(env.SysfsRoot)
	eng, err := engine.New(cfg.Indicators, sources, engine.Interval, slog.Default())
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := closer.Close(); err != nil {
			slog.Warn("Closing sources failed", "err", err)
		}
	}
	return cfg, eng, cleanup, nil
}

func runDisplay(cmd *cobra.Command, args []string) error {
	logCloser, err := setupLogger(env.LogFile, env.LogLevel, false)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logCloser.Close()

	slog.Info("Starting", "version", version, "commit", commit, "config", configPath)

	cfg, eng, cleanup, err := buildEngine()
	if err != nil {
		slog.Error("Startup failed", "err", err)
		return err
	}
	defer cleanup()

	ctx, stop := signalContext()
	defer stop()

	if err := ui.Run(ctx, eng, cfg.Geometry); err != nil {
		slog.Error("Display stopped", "err", err)
		return err
	}
	slog.Info("Shutting down")
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	if _, err := setupLogger("", env.LogLevel, true); err != nil {
		return err
	}
	if sampleCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", sampleCount)
	}

	_, eng, cleanup, err := buildEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signalContext()
	defer stop()

	out := cmd.OutOrStdout()
	for i := 0; i < sampleCount; i++ {
		if i > 0 {
			select {
			case <-time.After(engine.NextDelay(time.Now())):
			case <-ctx.Done():
				return nil
			}
		}
		labels := eng.Sweep(ctx)
		if samplePlain {
			fmt.Fprintln(out, ui.PlainRow(labels))
		} else {
			fmt.Fprintln(out, ui.RenderRow(labels))
		}
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	if _, err := setupLogger("", env.LogLevel, true); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d indicators, geometry %+v\n", cfg.Path, len(cfg.Indicators), cfg.Geometry)
	for i, spec := range cfg.Indicators {
		band := "-"
		if spec.Band != nil {
			band = fmt.Sprintf("%g-%g", spec.Band.Low, spec.Band.High)
		}
		fmt.Fprintf(out, "%2d  %-32s red=%s\n", i+1, spec.Name(), band)
	}
	return nil
}
