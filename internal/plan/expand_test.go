package plan

import "testing"

func detailRow(cells [6]string) Row {
	row, _ := NewRow(cells[:])
	return row
}

// TestExpandRepeatsSets verifies that one detail row produces numSets
// independent set values.
func TestExpandRepeatsSets(t *testing.T) {
	block := Block{
		Name: "Bench Press",
		Details: []Row{
			detailRow([6]string{"3", "8", "7", "80", "80", "7-8"}),
		},
	}
	ex := Expand(block)

	if ex.Name != "Bench Press" {
		t.Errorf("name = %q, want Bench Press", ex.Name)
	}
	if len(ex.Sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(ex.Sets))
	}
	for i, s := range ex.Sets {
		if !s.RepsValid || s.Reps != 8 {
			t.Errorf("set %d reps = %d (valid=%v), want 8", i, s.Reps, s.RepsValid)
		}
		if s.ActualWeight == nil || *s.ActualWeight != 80 {
			t.Errorf("set %d actual weight = %v, want 80", i, s.ActualWeight)
		}
		if s.LowerActualRPE != 7 || s.UpperActualRPE != 8 {
			t.Errorf("set %d rpe bounds = %v-%v, want 7-8", i, s.LowerActualRPE, s.UpperActualRPE)
		}
	}
}

// TestExpandZeroOrInvalidSetCount verifies that non-positive and
// non-numeric set counts contribute no sets.
func TestExpandZeroOrInvalidSetCount(t *testing.T) {
	block := Block{
		Name: "Squat",
		Details: []Row{
			detailRow([6]string{"0", "5", "8", "100", "100", "8"}),
			detailRow([6]string{"-2", "5", "8", "100", "100", "8"}),
			detailRow([6]string{"x", "5", "8", "100", "100", "8"}),
			detailRow([6]string{"2", "5", "8", "100", "100", "8"}),
		},
	}
	ex := Expand(block)

	if len(ex.Sets) != 2 {
		t.Errorf("sets = %d, want 2 (only the last row contributes)", len(ex.Sets))
	}
}

// TestExpandInvalidReps verifies that a non-numeric reps cell marks the
// set invalid instead of rejecting the row.
func TestExpandInvalidReps(t *testing.T) {
	block := Block{
		Name: "Squat",
		Details: []Row{
			detailRow([6]string{"2", "five", "8", "100", "100", "8"}),
		},
	}
	ex := Expand(block)

	if len(ex.Sets) != 2 {
		t.Fatalf("sets = %d, want 2", len(ex.Sets))
	}
	if ex.Sets[0].RepsValid {
		t.Error("RepsValid = true, want false for non-numeric reps")
	}
}

// TestExpandOptionalFields verifies that unparsable optional cells come
// back absent, never zero.
func TestExpandOptionalFields(t *testing.T) {
	block := Block{
		Name: "Deadlift",
		Details: []Row{
			detailRow([6]string{"1", "5", "", "n/a", "", ""}),
		},
	}
	ex := Expand(block)

	if len(ex.Sets) != 1 {
		t.Fatalf("sets = %d, want 1", len(ex.Sets))
	}
	s := ex.Sets[0]
	if s.RPE != nil {
		t.Errorf("RPE = %v, want nil", *s.RPE)
	}
	if s.Weight != nil {
		t.Errorf("Weight = %v, want nil", *s.Weight)
	}
	if s.ActualWeight != nil {
		t.Errorf("ActualWeight = %v, want nil", *s.ActualWeight)
	}
	if s.LowerActualRPE != 0 || s.UpperActualRPE != 0 {
		t.Errorf("rpe bounds = %v-%v, want 0-0", s.LowerActualRPE, s.UpperActualRPE)
	}
}

// TestParseOptionalFloatNonFinite verifies that NaN and infinity cells
// are treated as absent, the same as any other non-numeric cell.
func TestParseOptionalFloatNonFinite(t *testing.T) {
	for _, in := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "Infinity"} {
		if got := parseOptionalFloat(in); got != nil {
			t.Errorf("parseOptionalFloat(%q) = %v, want nil", in, *got)
		}
	}
	if got := parseOptionalFloat("82.5"); got == nil || *got != 82.5 {
		t.Errorf("parseOptionalFloat(82.5) = %v, want 82.5", got)
	}
}

// TestParseRPERange covers the bound-pair parsing rules.
func TestParseRPERange(t *testing.T) {
	cases := []struct {
		in           string
		lower, upper float64
	}{
		{"7-8", 7, 8},
		{"7", 7, 7},
		{"", 0, 0},
		{"garbage", 0, 0},
		{"-8", 0, 8},
		{"7-", 7, 7},
		{"7.5-8.5", 7.5, 8.5},
	}
	for _, c := range cases {
		lower, upper := parseRPERange(c.in)
		if lower != c.lower || upper != c.upper {
			t.Errorf("parseRPERange(%q) = %v, %v, want %v, %v", c.in, lower, upper, c.lower, c.upper)
		}
	}
}
