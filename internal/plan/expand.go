package plan

import (
	"math"
	"strconv"
	"strings"
)

// Set is one performed (or planned) set expanded from a detail row. The
// optional fields distinguish "cell did not parse" (nil) from a literal
// zero, which matters for RPE display.
type Set struct {
	Reps         int
	RepsValid    bool
	RPE          *float64
	Weight       *float64
	ActualWeight *float64

	// Actual RPE is carried as a bound pair so coalescing can widen it
	// across merged sets. A single-value RPE has equal bounds.
	LowerActualRPE float64
	UpperActualRPE float64
}

// Exercise is one fully expanded plan block.
type Exercise struct {
	Name string
	Sets []Set
}

// Expand turns a block's six detail rows into individual sets, one Set
// value per planned set. Rows never get rejected here: a non-numeric
// reps cell marks the set invalid and the marker propagates into the
// rendered line, and a non-numeric set count simply contributes nothing.
func Expand(b Block) Exercise {
	ex := Exercise{Name: b.Name}
	for _, row := range b.Details {
		numSets, _ := strconv.Atoi(strings.TrimSpace(row.Sets))

		reps, err := strconv.Atoi(strings.TrimSpace(row.Reps))
		set := Set{
			Reps:         reps,
			RepsValid:    err == nil,
			RPE:          parseOptionalFloat(row.RPE),
			Weight:       parseOptionalFloat(row.Weight),
			ActualWeight: parseOptionalFloat(row.ActualWeight),
		}
		set.LowerActualRPE, set.UpperActualRPE = parseRPERange(row.ActualRPE)

		for i := 0; i < numSets; i++ {
			ex.Sets = append(ex.Sets, set)
		}
	}
	return ex
}

// parseOptionalFloat parses a cell as a float, returning nil when the
// cell is empty, not numeric, or not finite. Absent is distinct from
// zero. ParseFloat accepts "NaN" and "Inf", but neither is a weight or
// an RPE, and NaN would never compare equal during coalescing.
func parseOptionalFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseRPERange parses an actual-RPE cell like "7", "7-8", or "-8".
// An unparsable lower bound defaults to 0; an unparsable or missing
// upper bound collapses the range to the lower bound.
func parseRPERange(s string) (lower, upper float64) {
	parts := strings.Split(s, "-")

	lower, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		lower = 0
	}

	upper = lower
	if len(parts) >= 2 {
		if u, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			upper = u
		}
	}
	return lower, upper
}
