package rolljoin

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Row is one record of a table keyed by column name
type Row = map[string]interface{}

// Direction selects which side of the left key a right row may match on.
type Direction int

const (
	// Backward matches the latest right key at or before the left key.
	Backward Direction = iota
	// Forward matches the earliest right key at or after the left key.
	Forward
	// Nearest matches the closer of the backward and forward candidates,
	// preferring backward on a tie.
	Nearest
)

// String renders the direction name
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	case Nearest:
		return "nearest"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection reads a direction name, ignoring case and surrounding
// whitespace.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backward":
		return Backward, nil
	case "forward":
		return Forward, nil
	case "nearest":
		return Nearest, nil
	}
	return 0, fmt.Errorf("unknown roll direction %q (want backward, forward or nearest)", s)
}

// Options controls how a rolling join matches rows.
type Options struct {
	Direction Direction

	// Window caps the allowed |left key - right key| gap. Zero or negative
	// means unbounded. Time keys measure the gap in seconds.
	Window float64
}

// Join performs a rolling join of right onto left. Every left row appears
// exactly once in the result, in its original order; matched rows gain the
// right row's columns (the left value wins on a name collision and the
// right key column is not copied), unmatched rows pass through untouched.
// Key columns must hold numeric or time.Time values.
func Join(left, right []Row, leftOn, rightOn string, opts Options) ([]Row, error) {
	if leftOn == "" || rightOn == "" {
		return nil, fmt.Errorf("join key columns must be named")
	}

	rightKeys := make([]float64, len(right))
	for i, row := range right {
		k, err := keyValue(row, rightOn)
		if err != nil {
			return nil, fmt.Errorf("right row %d: %w", i, err)
		}
		rightKeys[i] = k
	}

	leftKeys := make([]float64, len(left))
	for i, row := range left {
		k, err := keyValue(row, leftOn)
		if err != nil {
			return nil, fmt.Errorf("left row %d: %w", i, err)
		}
		leftKeys[i] = k
	}

	// Sort the right side once; ties keep their original order, so a
	// backward match lands on the latest duplicate and a forward match on
	// the earliest.
	order := make([]int, len(right))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rightKeys[order[i]] < rightKeys[order[j]]
	})

	sortedKeys := make([]float64, len(order))
	sortedRows := make([]Row, len(order))
	for i, idx := range order {
		sortedKeys[i] = rightKeys[idx]
		sortedRows[i] = right[idx]
	}

	out := make([]Row, len(left))
	for i, row := range left {
		match, ok := findMatch(sortedKeys, leftKeys[i], opts)
		if !ok {
			out[i] = cloneRow(row)
			continue
		}
		out[i] = mergeRow(row, sortedRows[match], rightOn)
	}

	return out, nil
}

// findMatch locates the index of the matching right key, honouring the
// roll direction and window.
func findMatch(keys []float64, key float64, opts Options) (int, bool) {
	if len(keys) == 0 {
		return 0, false
	}

	// First index with keys[i] >= key; backward candidate sits just below.
	fwd := sort.Search(len(keys), func(i int) bool { return keys[i] >= key })
	bwd := sort.Search(len(keys), func(i int) bool { return keys[i] > key }) - 1

	inWindow := func(i int) bool {
		if i < 0 || i >= len(keys) {
			return false
		}
		return opts.Window <= 0 || math.Abs(keys[i]-key) <= opts.Window
	}

	switch opts.Direction {
	case Backward:
		if inWindow(bwd) {
			return bwd, true
		}
	case Forward:
		if inWindow(fwd) {
			return fwd, true
		}
	case Nearest:
		bwdOK := inWindow(bwd)
		fwdOK := inWindow(fwd)
		switch {
		case bwdOK && fwdOK:
			if math.Abs(keys[fwd]-key) < math.Abs(keys[bwd]-key) {
				return fwd, true
			}
			return bwd, true
		case bwdOK:
			return bwd, true
		case fwdOK:
			return fwd, true
		}
	}

	return 0, false
}

// keyValue extracts an orderable join key from a row column. Numeric types
// map to their value; time.Time maps to Unix seconds with sub-second
// precision.
func keyValue(row Row, column string) (float64, error) {
	v, ok := row[column]
	if !ok {
		return 0, fmt.Errorf("missing join key column %q", column)
	}

	var key float64
	switch n := v.(type) {
	case float64:
		key = n
	case float32:
		key = float64(n)
	case int:
		key = float64(n)
	case int32:
		key = float64(n)
	case int64:
		key = float64(n)
	case uint:
		key = float64(n)
	case uint32:
		key = float64(n)
	case uint64:
		key = float64(n)
	case time.Time:
		key = float64(n.UnixNano()) / float64(time.Second)
	default:
		return 0, fmt.Errorf("join key column %q has non-orderable type %T", column, v)
	}

	if math.IsNaN(key) {
		return 0, fmt.Errorf("join key column %q is NaN", column)
	}
	return key, nil
}

func cloneRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

func mergeRow(left, right Row, rightOn string) Row {
	out := make(Row, len(left)+len(right))
	for k, v := range left {
		out[k] = v
	}
	for k, v := range right {
		if k == rightOn {
			continue
		}
		if _, exists := out[k]; exists {
			continue
		}
		out[k] = v
	}
	return out
}
