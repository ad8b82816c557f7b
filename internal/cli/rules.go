package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gedcheck/internal/rules"
)

// RuleInfo describes one catalog rule for listing.
type RuleInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter(rootOpts, cmd)
			catalog := rules.NewCatalog(rules.DefaultThresholds())

			infos := make([]RuleInfo, 0, len(catalog.IDs()))
			for _, r := range catalog.Rules() {
				infos = append(infos, RuleInfo{ID: string(r.ID), Description: r.Description})
			}

			if out.Format == "json" {
				return out.Success(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(out.Writer, "%s  %s\n", info.ID, info.Description)
			}
			return nil
		},
	}
}
