package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/fiscal-calendar/pkg/rolljoin"
)

func joinCmd() *cobra.Command {
	var leftPath string
	var rightPath string
	var leftKey string
	var rightKey string
	var direction string
	var window float64
	var output string

	cmd := &cobra.Command{
		Use:   "join --left left.csv --right right.csv --left-key ts --right-key ts",
		Short: "Rolling-join two CSV tables on a numeric key column",
		Long: `Join every row of the left table with the right-table row whose key is
nearest under the chosen direction: backward takes the closest key at or
below, forward the closest at or above, nearest whichever is closer
(ties go backward). Left rows keep their order; unmatched rows pass
through with empty right-side columns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := rolljoin.ParseDirection(direction)
			if err != nil {
				return err
			}

			leftHeader, leftRows, err := readTableCSV(leftPath, leftKey)
			if err != nil {
				return err
			}
			rightHeader, rightRows, err := readTableCSV(rightPath, rightKey)
			if err != nil {
				return err
			}

			joined, err := rolljoin.Join(leftRows, rightRows, leftKey, rightKey, rolljoin.Options{
				Direction: dir,
				Window:    window,
			})
			if err != nil {
				return fmt.Errorf("join failed: %w", err)
			}

			logger.Info("Joined tables",
				zap.Int("left_rows", len(leftRows)),
				zap.Int("right_rows", len(rightRows)),
				zap.String("direction", dir.String()),
				zap.Float64("window", window))

			columns := joinedColumns(leftHeader, rightHeader, rightKey)
			if err := writeTableCSV(output, columns, joined); err != nil {
				return err
			}
			if output != "" {
				fmt.Printf("✅ Wrote %d rows to %s\n", len(joined), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&leftPath, "left", "", "Left CSV table (row order preserved)")
	cmd.Flags().StringVar(&rightPath, "right", "", "Right CSV table")
	cmd.Flags().StringVar(&leftKey, "left-key", "", "Numeric key column in the left table")
	cmd.Flags().StringVar(&rightKey, "right-key", "", "Numeric key column in the right table")
	cmd.Flags().StringVar(&direction, "direction", "backward", "Match direction: backward, forward or nearest")
	cmd.Flags().Float64Var(&window, "window", 0, "Maximum key distance for a match (0 = unbounded)")
	cmd.Flags().StringVar(&output, "output", "", "Output CSV path (default: stdout)")

	return cmd
}
