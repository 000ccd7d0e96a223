package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/username/fiscal-calendar/pkg/geoutil"
	"github.com/username/fiscal-calendar/pkg/rolljoin"
)

// readPointsCSV loads geographic points from a CSV file with an
// id,lat,lon header.
func readPointsCSV(path string) ([]geoutil.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	header := records[0]
	if len(header) < 3 || !strings.EqualFold(header[0], "id") ||
		!strings.EqualFold(header[1], "lat") || !strings.EqualFold(header[2], "lon") {
		return nil, fmt.Errorf("%s: expected header id,lat,lon, got %s", path, strings.Join(header, ","))
	}

	points := make([]geoutil.Point, 0, len(records)-1)
	for i, record := range records[1:] {
		lat, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: latitude %q is not numeric", path, i+2, record[1])
		}
		lon, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: longitude %q is not numeric", path, i+2, record[2])
		}

		points = append(points, geoutil.Point{ID: record[0], Lat: lat, Lon: lon})
	}

	return points, nil
}

// writeMatchesCSV writes nearest-neighbour matches as id,nearest_id,distance
// rows, to stdout when no path is given.
func writeMatchesCSV(path string, matches []geoutil.Match) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"id", "nearest_id", "distance"}); err != nil {
		return err
	}
	for _, match := range matches {
		record := []string{
			match.OriginID,
			match.NearestID,
			strconv.FormatFloat(match.Distance, 'f', 3, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// readTableCSV loads a CSV table with a header row, parsing the key column
// as a number and keeping every other column as text.
func readTableCSV(path, keyColumn string) ([]string, []rolljoin.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}

	header := records[0]
	keyIndex := -1
	for i, column := range header {
		if column == keyColumn {
			keyIndex = i
			break
		}
	}
	if keyIndex < 0 {
		return nil, nil, fmt.Errorf("%s has no column %q (header: %s)", path, keyColumn, strings.Join(header, ","))
	}

	rows := make([]rolljoin.Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row := make(rolljoin.Row, len(header))
		for j, column := range header {
			if j == keyIndex {
				key, err := strconv.ParseFloat(record[j], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("%s row %d: key %q is not numeric", path, i+2, record[j])
				}
				row[column] = key
			} else {
				row[column] = record[j]
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// joinedColumns fixes the output column order: left columns first, then the
// right columns that survive the merge.
func joinedColumns(leftHeader, rightHeader []string, rightKey string) []string {
	columns := make([]string, len(leftHeader), len(leftHeader)+len(rightHeader))
	copy(columns, leftHeader)

	seen := make(map[string]bool, len(leftHeader))
	for _, column := range leftHeader {
		seen[column] = true
	}
	for _, column := range rightHeader {
		if column == rightKey || seen[column] {
			continue
		}
		columns = append(columns, column)
	}

	return columns
}

// writeTableCSV writes joined rows under the given column order, to stdout
// when no path is given. Cells absent from a row print empty.
func writeTableCSV(path string, columns []string, rows []rolljoin.Row) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, column := range columns {
			record[i] = formatCell(row[column])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// formatCell renders one cell for CSV output
func formatCell(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
