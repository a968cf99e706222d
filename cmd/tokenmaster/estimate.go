package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokenmaster/counting"
	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/tokens"
)

type estimateOutput struct {
	Model      model.ID        `json:"model"`
	Tokens     int             `json:"tokens"`
	Source     counting.Source `json:"source"`
	Family     string          `json:"family"`
	Characters int             `json:"characters"`
	CJK        int             `json:"cjk"`
	Error      string          `json:"error,omitempty"`
}

func newEstimateCmd(a *app) *cobra.Command {
	var (
		modelFlag string
		file      string
		offline   bool
	)

	cmd := &cobra.Command{
		Use:   "estimate [text...|-]",
		Short: "Count tokens for one model",
		Long: `Count the tokens of a text for one model.

Text is read from the arguments, from --file, or from stdin.

Examples:
  tokenmaster estimate --model deepseek-v3 "你好，世界"
  cat notes.md | tokenmaster estimate --model gpt-5
  tokenmaster estimate --offline --file prompt.txt`,
		Aliases: []string{"count"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, file, args)
			if err != nil {
				return err
			}

			id := a.cfg.SelectedModel()
			if modelFlag != "" {
				id = model.NormalizeID(modelFlag)
			}

			var res counting.Count
			if offline {
				res = counting.Count{Model: id, Tokens: tokens.EstimateTokens(string(id), text), Source: counting.SourceEstimate}
			} else {
				res = a.svc.Count(cmd.Context(), id, text)
			}
			stats := counting.Stats(text)

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), estimateOutput{
					Model:      res.Model,
					Tokens:     res.Tokens,
					Source:     res.Source,
					Family:     tokens.FamilyFor(string(id)),
					Characters: stats.Characters,
					CJK:        stats.CJK,
					Error:      errString(res.Err),
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d tokens (%s, %s, %d chars)\n",
				res.Tokens, res.Model, res.Source, stats.Characters)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "model ID (default from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file")
	cmd.Flags().BoolVar(&offline, "offline", false, "always use the local estimator")
	return cmd
}
