package main

import (
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/domain/certificate"
	"github.com/spf13/cobra"
)

func newFontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "Check which certificate fonts are available",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var candidates []certificate.FontCandidate
			for _, f := range cfg.Certificate.Fonts {
				candidates = append(candidates, certificate.FontCandidate{Path: f.Path, Description: f.Description})
			}

			out := cmd.OutOrStdout()
			locator := certificate.NewFontLocator(candidates)

			fmt.Fprintln(out, "Проверка шрифтов для грамоты:")
			for _, p := range locator.Probe() {
				switch {
				case p.Available:
					fmt.Fprintf(out, "✅ %s: %s\n", p.Description, p.Path)
				case p.Err != nil:
					fmt.Fprintf(out, "❌ %s: %s (%v)\n", p.Description, p.Path, p.Err)
				default:
					fmt.Fprintf(out, "❌ %s: %s\n", p.Description, p.Path)
				}
			}

			if f, ok := locator.Resolve(); ok {
				fmt.Fprintf(out, "\nБудет использован: %s\n", f.Description)
			} else {
				fmt.Fprintln(out, "\nНи один шрифт не найден, будет использован встроенный без кириллицы.")
			}
			return nil
		},
	}
}
