package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/username/fiscal-calendar/pkg/geoutil"
	"github.com/username/fiscal-calendar/pkg/rolljoin"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestReadPointsCSV(t *testing.T) {
	path := writeTempCSV(t, "id,lat,lon\nlondon,51.5074,-0.1278\nparis,48.8566,2.3522\n")

	points, err := readPointsCSV(path)
	if err != nil {
		t.Fatalf("readPointsCSV() error = %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("points count = %d, want 2", len(points))
	}
	if points[0].ID != "london" || points[0].Lat != 51.5074 || points[0].Lon != -0.1278 {
		t.Errorf("points[0] = %+v, want london 51.5074 -0.1278", points[0])
	}
	if points[1].ID != "paris" {
		t.Errorf("points[1].ID = %q, want paris", points[1].ID)
	}
}

func TestReadPointsCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong header", "name,x,y\nlondon,51.5,0\n"},
		{"non-numeric latitude", "id,lat,lon\nlondon,north,-0.1278\n"},
		{"non-numeric longitude", "id,lat,lon\nlondon,51.5074,east\n"},
		{"empty file", ""},
		{"ragged row", "id,lat,lon\nlondon,51.5074\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.content)
			if _, err := readPointsCSV(path); err == nil {
				t.Error("readPointsCSV() expected error")
			}
		})
	}

	if _, err := readPointsCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("readPointsCSV() expected error for missing file")
	}
}

func TestReadTableCSV(t *testing.T) {
	path := writeTempCSV(t, "ts,signal\n1,a\n7.5,b\n")

	header, rows, err := readTableCSV(path, "ts")
	if err != nil {
		t.Fatalf("readTableCSV() error = %v", err)
	}

	if len(header) != 2 || header[0] != "ts" || header[1] != "signal" {
		t.Errorf("header = %v, want [ts signal]", header)
	}
	if len(rows) != 2 {
		t.Fatalf("rows count = %d, want 2", len(rows))
	}
	if key, ok := rows[0]["ts"].(float64); !ok || key != 1 {
		t.Errorf("rows[0][ts] = %v, want float64 1", rows[0]["ts"])
	}
	if key, ok := rows[1]["ts"].(float64); !ok || key != 7.5 {
		t.Errorf("rows[1][ts] = %v, want float64 7.5", rows[1]["ts"])
	}
	if signal, ok := rows[0]["signal"].(string); !ok || signal != "a" {
		t.Errorf("rows[0][signal] = %v, want string a", rows[0]["signal"])
	}
}

func TestReadTableCSV_Errors(t *testing.T) {
	t.Run("missing key column", func(t *testing.T) {
		path := writeTempCSV(t, "ts,signal\n1,a\n")
		if _, _, err := readTableCSV(path, "time"); err == nil {
			t.Error("readTableCSV() expected error for missing key column")
		}
	})

	t.Run("non-numeric key", func(t *testing.T) {
		path := writeTempCSV(t, "ts,signal\nnoon,a\n")
		if _, _, err := readTableCSV(path, "ts"); err == nil {
			t.Error("readTableCSV() expected error for non-numeric key")
		}
	})
}

func TestJoinedColumns(t *testing.T) {
	left := []string{"ts", "signal"}
	right := []string{"time", "price", "signal"}

	columns := joinedColumns(left, right, "time")

	// The right key is dropped and the colliding column keeps its left slot.
	want := []string{"ts", "signal", "price"}
	if len(columns) != len(want) {
		t.Fatalf("columns = %v, want %v", columns, want)
	}
	for i := range want {
		if columns[i] != want[i] {
			t.Errorf("columns[%d] = %q, want %q", i, columns[i], want[i])
		}
	}
}

func TestWriteTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	columns := []string{"ts", "signal", "price"}
	rows := []rolljoin.Row{
		{"ts": 1.0, "signal": "a", "price": 100.5},
		{"ts": 2.5, "signal": "b"}, // no match: price column missing
	}

	if err := writeTableCSV(path, columns, rows); err != nil {
		t.Fatalf("writeTableCSV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := "ts,signal,price\n1,a,100.5\n2.5,b,\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestWriteMatchesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")
	matches := []geoutil.Match{
		{OriginID: "lyon", NearestID: "paris", Distance: 391.499},
		{OriginID: "hamburg", NearestID: "berlin", Distance: 255.1},
	}

	if err := writeMatchesCSV(path, matches); err != nil {
		t.Fatalf("writeMatchesCSV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("output lines = %d, want 3", len(lines))
	}
	if lines[0] != "id,nearest_id,distance" {
		t.Errorf("header = %q, want id,nearest_id,distance", lines[0])
	}
	if lines[1] != "lyon,paris,391.499" {
		t.Errorf("row = %q, want lyon,paris,391.499", lines[1])
	}
	if lines[2] != "hamburg,berlin,255.100" {
		t.Errorf("row = %q, want hamburg,berlin,255.100", lines[2])
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"whole float", 3.0, "3"},
		{"fractional float", 3.25, "3.25"},
		{"int", 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCell(tt.in); got != tt.want {
				t.Errorf("formatCell(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
