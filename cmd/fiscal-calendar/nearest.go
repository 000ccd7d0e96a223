package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/fiscal-calendar/pkg/geoutil"
)

func nearestCmd() *cobra.Command {
	var originsPath string
	var candidatesPath string
	var unit string
	var output string

	cmd := &cobra.Command{
		Use:   "nearest --origins origins.csv --candidates candidates.csv",
		Short: "Match every origin point to its nearest candidate point",
		Long: `Match every point in the origins file to the geographically nearest
point in the candidates file. Both files need an id,lat,lon header.
Writes id,nearest_id,distance rows in origin order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedUnit, err := geoutil.ParseUnit(unit)
			if err != nil {
				return err
			}

			origins, err := readPointsCSV(originsPath)
			if err != nil {
				return err
			}
			candidates, err := readPointsCSV(candidatesPath)
			if err != nil {
				return err
			}

			matches, err := geoutil.NearestNeighbors(origins, candidates, parsedUnit)
			if err != nil {
				return fmt.Errorf("nearest-neighbour search failed: %w", err)
			}

			logger.Info("Matched origins to candidates",
				zap.Int("origins", len(origins)),
				zap.Int("candidates", len(candidates)),
				zap.String("unit", string(parsedUnit)))

			if err := writeMatchesCSV(output, matches); err != nil {
				return err
			}
			if output != "" {
				fmt.Printf("✅ Wrote %d matches to %s\n", len(matches), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&originsPath, "origins", "", "CSV file of points to match (id,lat,lon)")
	cmd.Flags().StringVar(&candidatesPath, "candidates", "", "CSV file of points to match against (id,lat,lon)")
	cmd.Flags().StringVar(&unit, "unit", "kilometres", "Distance unit: kilometres or miles")
	cmd.Flags().StringVar(&output, "output", "", "Output CSV path (default: stdout)")

	return cmd
}
