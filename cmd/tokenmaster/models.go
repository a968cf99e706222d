package main

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/tokens"
)

type modelOutput struct {
	model.Info
	Family        string         `json:"family"`
	Profile       tokens.Profile `json:"profile"`
	Authoritative bool           `json:"authoritative"`
	Color         string         `json:"color"`
}

func newModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List supported models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := model.Supported()
			out := make([]modelOutput, 0, len(infos))
			for _, info := range infos {
				profile, _ := tokens.ProfileFor(string(info.ID))
				out = append(out, modelOutput{
					Info:          info,
					Family:        tokens.FamilyFor(string(info.ID)),
					Profile:       profile,
					Authoritative: a.svc.Authoritative(info.ID),
					Color:         info.Provider.Color(),
				})
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			tw := newTable(cmd.OutOrStdout(), "ID", "NAME", "PROVIDER", "CONTEXT", "FAMILY", "COUNTING")
			for _, m := range out {
				mode := "estimate"
				if m.Authoritative {
					mode = "remote"
				}
				row(tw, m.ID, m.Name, m.Provider, m.ContextWindow, m.Family, mode)
			}
			return tw.Flush()
		},
	}
}
