package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokenmaster/config"
	"github.com/randalmurphal/tokenmaster/counting"
	"github.com/randalmurphal/tokenmaster/model"
)

type compareEntry struct {
	counting.Entry
	Error string `json:"error,omitempty"`
}

type compareOutput struct {
	Characters int            `json:"characters"`
	Entries    []compareEntry `json:"entries"`
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		models      string
		file        string
		watch       bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "compare [text...|-]",
		Short: "Compare token counts across models",
		Long: `Count a text for several models and show how much of each context
window it fills.

With --watch the file given by --file is re-counted every time it changes
until interrupted.

Examples:
  tokenmaster compare "The quick brown fox"
  tokenmaster compare --models gpt-4o,qwen-3,llama-3.1 --file doc.md
  tokenmaster compare --file draft.md --watch --metrics-addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := a.cfg.CompareModels()
			if models != "" {
				ids = model.ParseIDs(models)
			}

			if !watch {
				text, err := readInput(cmd, file, args)
				if err != nil {
					return err
				}
				return a.printComparison(cmd.Context(), cmd.OutOrStdout(), text, ids)
			}

			if file == "" {
				return errors.New("--watch requires --file")
			}
			if metricsAddr != "" {
				srv := a.serveMetrics(metricsAddr)
				defer srv.Close()
			}
			return a.watchComparison(cmd.Context(), cmd.OutOrStdout(), file, ids)
		},
	}

	cmd.Flags().StringVar(&models, "models", "", "comma-separated model IDs (default from config, else all)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-count when --file changes")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while watching")
	return cmd
}

func (a *app) printComparison(ctx context.Context, w io.Writer, text string, ids []model.ID) error {
	cmp := a.svc.Compare(ctx, text, ids...)

	if a.jsonOut {
		out := compareOutput{Characters: cmp.Characters, Entries: make([]compareEntry, 0, len(cmp.Entries))}
		for _, e := range cmp.Entries {
			out.Entries = append(out.Entries, compareEntry{Entry: e, Error: errString(e.Err)})
		}
		return writeJSON(w, out)
	}

	if len(cmp.Entries) == 0 {
		fmt.Fprintln(w, "no text")
		return nil
	}

	tw := newTable(w, "MODEL", "PROVIDER", "TOKENS", "CONTEXT", "FILL", "SOURCE")
	for _, e := range cmp.Entries {
		row(tw, e.Name, e.Provider, e.Tokens, e.ContextWindow, counting.FormatFill(e.FillPercent), e.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d characters\n", cmp.Characters)
	return nil
}

func (a *app) watchComparison(ctx context.Context, w io.Writer, file string, ids []model.ID) error {
	recount := func() {
		text, err := readFile(file)
		if err != nil {
			slog.Warn("cannot read watched file", slog.String("path", file), slog.Any("error", err))
			return
		}
		fmt.Fprintf(w, "\n== %s (%s)\n", file, time.Now().Format(time.TimeOnly))
		if err := a.printComparison(ctx, w, text, ids); err != nil {
			slog.Warn("comparison failed", slog.Any("error", err))
		}
	}

	recount()
	debounce := a.cfg.Debounce
	if debounce <= 0 {
		debounce = config.DefaultDebounce
	}
	return config.Watch(ctx, file, debounce, recount)
}

func (a *app) serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server stopped", slog.String("addr", addr), slog.Any("error", err))
		}
	}()
	slog.Info("serving metrics", slog.String("addr", addr))
	return srv
}
