package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/username/fiscal-calendar/internal/config"
	"github.com/username/fiscal-calendar/pkg/dateutil"
)

func yearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "Print the configured fiscal alignment table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			converter, err := newConverter(cfg)
			if err != nil {
				return err
			}
			table := converter.Table()

			fmt.Println("  Year | Offset | Weeks | Fiscal year starts")
			fmt.Println("-------+--------+-------+-------------------")
			for _, info := range table.Info() {
				fmt.Printf("  %d | %+6d | %5d | %s\n",
					info.Year, info.Offset, info.Weeks, dateutil.FormatDate(info.Start))
			}
			fmt.Printf("\nConvertible dates: %s to %s\n",
				dateutil.FormatDate(table.MinDate()),
				dateutil.FormatDate(table.MaxDate()))

			return nil
		},
	}
}
