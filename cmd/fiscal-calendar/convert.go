package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/username/fiscal-calendar/internal/config"
	"github.com/username/fiscal-calendar/internal/fiscal"
)

func convertCmd() *cobra.Command {
	var from string
	var to string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "convert --from <representation> --to <representation> VALUE...",
		Short: "Convert dates or fiscal week labels between representations",
		Long: `Convert one or more values between calendar and fiscal representations.

Sources: date (YYYY-MM-DD), fiscal week (WW.YYYY)
Targets: week beginning, week ending, fiscal week, fiscal month, fiscal year

All values are validated before any conversion runs; one bad value fails
the whole batch. Results print in input order, one per line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			converter, err := newConverter(cfg)
			if err != nil {
				return err
			}

			fromDir, err := fiscal.ParseFrom(from)
			if err != nil {
				return err
			}
			toDir, err := fiscal.ParseTo(to)
			if err != nil {
				return err
			}

			results, err := converter.ConvertAll(args, fromDir, toDir)
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(os.Stdout)
				return encoder.Encode(results)
			}

			for _, result := range results {
				fmt.Println(result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source representation: date or fiscal week")
	cmd.Flags().StringVar(&to, "to", "", "Target representation: week beginning, week ending, fiscal week, fiscal month or fiscal year")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as a JSON array")

	return cmd
}
