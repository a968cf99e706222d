package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokenmaster/counting"
	"github.com/randalmurphal/tokenmaster/model"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		modelFlag string
		file      string
	)

	cmd := &cobra.Command{
		Use:   "report [text...|-]",
		Short: "Print a shareable analysis summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, file, args)
			if err != nil {
				return err
			}

			id := a.cfg.SelectedModel()
			if modelFlag != "" {
				id = model.NormalizeID(modelFlag)
			}

			res := a.svc.Count(cmd.Context(), id, text)
			fmt.Fprintln(cmd.OutOrStdout(), counting.Report(id, res.Tokens, counting.Stats(text).Characters))
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "model ID (default from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file")
	return cmd
}
