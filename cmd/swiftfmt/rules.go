package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/swiftfmt/internal/config"
	"github.com/donaldgifford/swiftfmt/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available rules",
	Long:  `List every registered rule in execution order and whether the active configuration enables it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		selected, err := rules.Select(cfg.Rules)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range rules.FormatRules() {
			state := "disabled"
			if slices.Contains(selected, r) {
				state = "enabled"
			}
			fmt.Fprintf(out, "%-42s %s\n", r.Name(), state)
		}
		return nil
	},
}
