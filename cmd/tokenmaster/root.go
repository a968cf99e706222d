package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokenmaster/config"
	"github.com/randalmurphal/tokenmaster/counting"
	"github.com/randalmurphal/tokenmaster/provider"
	_ "github.com/randalmurphal/tokenmaster/providers"
)

// Version is set at build time.
var Version = "dev"

// app holds global flags and the state shared by subcommands.
type app struct {
	cfgFile  string
	envFiles []string
	verbose  bool
	jsonOut  bool

	cfg      config.File
	registry *prometheus.Registry
	svc      *counting.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tokenmaster",
		Short: "Count and compare tokens across LLM tokenizers",
		Long: `tokenmaster estimates how many tokens a text occupies for a range of
LLM tokenizers and how much of each model's context window it fills.

Gemini models are counted by the configured backend when one is available.
All other models use a local character-class estimate tuned per tokenizer
family, which never fails.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.svc != nil {
				return a.svc.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (.yaml, .toml or .json)")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "env files to load (default .env)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print JSON")

	root.AddCommand(
		newEstimateCmd(a),
		newCompareCmd(a),
		newModelsCmd(a),
		newFitCmd(a),
		newReportCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup configures logging, loads configuration and builds the service.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if err := config.LoadEnv(a.envFiles...); err != nil {
		return err
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	remote, err := provider.FromConfig(cfg.Remote)
	if err != nil {
		slog.Warn("authoritative counting disabled",
			slog.String("backend", cfg.Remote.Backend),
			slog.Any("error", err))
		remote = nil
	}

	a.registry = prometheus.NewRegistry()
	a.svc, err = counting.New(
		counting.WithRemote(remote),
		counting.WithCacheSize(cfg.CacheSize),
		counting.WithTimeout(cfg.Remote.Timeout),
		counting.WithMetrics(counting.NewMetrics(a.registry)),
	)
	return err
}

// readInput returns the text to count: the arguments joined by spaces, the
// named file, or stdin when there are no arguments or the only one is "-".
func readInput(cmd *cobra.Command, file string, args []string) (string, error) {
	if file != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("give either --file or text arguments, not both")
		}
		return readFile(file)
	}
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
