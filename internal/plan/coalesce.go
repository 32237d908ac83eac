package plan

import (
	"fmt"
	"strconv"
)

// Line is a run of consecutive identical sets collapsed into one
// rendered log line.
type Line struct {
	Count int
	Set   Set
}

// Coalesce folds a set sequence into minimal lines, merging strictly
// adjacent sets that share reps and actual weight. RPE and planned
// weight are deliberately ignored by the run test: merging widens the
// representative's actual-RPE bounds instead. Runs never merge across a
// break, even when a textually identical run appears again later.
func Coalesce(sets []Set) []Line {
	var lines []Line
	for _, set := range sets {
		if len(lines) > 0 && sameRun(lines[len(lines)-1].Set, set) {
			last := &lines[len(lines)-1]
			last.Count++
			last.Set.LowerActualRPE = min(last.Set.LowerActualRPE, set.LowerActualRPE)
			last.Set.UpperActualRPE = max(last.Set.UpperActualRPE, set.UpperActualRPE)
			continue
		}
		lines = append(lines, Line{Count: 1, Set: set})
	}
	return lines
}

// sameRun reports whether two sets belong to the same coalesced run.
func sameRun(a, b Set) bool {
	if a.RepsValid != b.RepsValid || a.Reps != b.Reps {
		return false
	}
	if (a.ActualWeight == nil) != (b.ActualWeight == nil) {
		return false
	}
	return a.ActualWeight == nil || *a.ActualWeight == *b.ActualWeight
}

// String renders one coalesced line, e.g. "80kg 2x8 @ 7-8".
func (l Line) String() string {
	return fmt.Sprintf("%skg %dx%s @ %s",
		optionalFloatToken(l.Set.ActualWeight),
		l.Count,
		repsToken(l.Set),
		rpeDisplay(l.Set.LowerActualRPE, l.Set.UpperActualRPE),
	)
}

// invalidToken stands in for a cell that did not parse. The line still
// renders; bad plan data is visible in the output rather than rejected.
const invalidToken = "?"

func repsToken(s Set) string {
	if !s.RepsValid {
		return invalidToken
	}
	return strconv.Itoa(s.Reps)
}

func optionalFloatToken(f *float64) string {
	if f == nil {
		return invalidToken
	}
	return formatFloat(*f)
}

// rpeDisplay renders an actual-RPE bound pair. A zero bound means the
// effort was below anything worth tracking and renders as "<5"; this is
// an explicit rule for zero, not a missing-value fallback.
func rpeDisplay(lower, upper float64) string {
	low := "<5"
	if lower != 0 {
		low = formatFloat(lower)
	}
	if lower == upper {
		return low
	}
	return low + "-" + formatFloat(upper)
}

// formatFloat renders without trailing zeros: 7 -> "7", 7.5 -> "7.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
