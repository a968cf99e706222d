package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/tokens"
	"github.com/randalmurphal/tokenmaster/truncate"
)

type fitOutput struct {
	truncate.Result
	Model    model.ID `json:"model"`
	Limit    int      `json:"limit"`
	Strategy string   `json:"strategy"`
	Original int      `json:"original_tokens"`
}

func newFitCmd(a *app) *cobra.Command {
	var (
		modelFlag string
		file      string
		maxTokens int
		reserve   int
		strategy  string
	)

	cmd := &cobra.Command{
		Use:   "fit [text...|-]",
		Short: "Truncate text to a token limit",
		Long: `Truncate a text so its estimated token count fits a limit, and print
the result.

Without --max the limit is the model's context window minus --reserve.

Examples:
  tokenmaster fit --model gpt-4o --max 500 --file long.md
  tokenmaster fit --model qwen-3 --max 2000 --strategy middle < log.txt
  tokenmaster fit --model claude-3-5-sonnet --reserve 8000 --file corpus.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, file, args)
			if err != nil {
				return err
			}

			id := a.cfg.SelectedModel()
			if modelFlag != "" {
				id = model.NormalizeID(modelFlag)
			}

			name := a.cfg.Strategy
			if cmd.Flags().Changed("strategy") {
				name = strategy
			}
			strat, err := truncate.ParseStrategy(name)
			if err != nil {
				return err
			}

			limit := maxTokens
			if limit <= 0 {
				budget := tokens.BudgetFor(id).WithReserved(reserve)
				if budget.Total == 0 {
					return fmt.Errorf("model %q has no known context window; pass --max", id)
				}
				limit = budget.Available()
			}

			res := truncate.New(id, strat).Truncate(text, limit)
			original := tokens.EstimateTokens(string(id), text)
			if res.Truncated {
				slog.Info("truncated text",
					slog.String("model", string(id)),
					slog.Int("original_tokens", original),
					slog.Int("tokens", res.Tokens),
					slog.Int("limit", limit))
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), fitOutput{
					Result:   res,
					Model:    id,
					Limit:    limit,
					Strategy: strat.String(),
					Original: original,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "model ID (default from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file")
	cmd.Flags().IntVar(&maxTokens, "max", 0, "token limit (default: context window)")
	cmd.Flags().IntVar(&reserve, "reserve", 0, "tokens to keep free when using the context window")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "end", "what to drop: end, middle or start")
	return cmd
}
