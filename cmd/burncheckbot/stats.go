package main

import (
	"encoding/json"
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/domain/stats"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print statistics from the ledger file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			if path == "" {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				path = cfg.Stats.Path
			}

			doc, err := stats.ReadFile(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				data, err := json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintln(out, stats.FormatSummary(doc))
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the raw JSON document")
	cmd.Flags().String("file", "", "Path to the stats file (defaults to stats.path from config)")
	return cmd
}
