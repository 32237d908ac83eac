package plan

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

var testDate = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// TestRenderEndToEnd verifies the full pipeline: one block of six
// identical detail rows expands to 18 sets and coalesces to one line.
func TestRenderEndToEnd(t *testing.T) {
	text := blockText("Bench Press", "3\t8\t7\t80\t80\t7-8")
	got := RenderText(text, testDate)

	want := "2026-03-14\n\nbench press\n80kg 18x8 @ 7-8"
	if got != want {
		t.Errorf("RenderText = %q, want %q", got, want)
	}
}

// TestRenderMultipleExercises verifies blank-line separation between
// exercises.
func TestRenderMultipleExercises(t *testing.T) {
	text := blockText("Squat", "2\t5\t8\t100\t100\t8") + "\n" +
		blockText("Deadlift", "1\t5\t9\t140\t140\t9")
	got := RenderText(text, testDate)

	want := "2026-03-14\n\nsquat\n100kg 12x5 @ 8\n\ndeadlift\n140kg 6x5 @ 9"
	if got != want {
		t.Errorf("RenderText = %q, want %q", got, want)
	}
}

// TestRenderPostProcessing verifies the lowercase pass and the
// competition -> comp word substitution across the whole text.
func TestRenderPostProcessing(t *testing.T) {
	text := blockText("Competition Max Bench", "1\t1\t10\t120\t122.5\t10")
	got := RenderText(text, testDate)

	if !strings.Contains(got, "comp max bench") {
		t.Errorf("output %q does not contain %q", got, "comp max bench")
	}
	if strings.Contains(got, "competition") {
		t.Errorf("output %q still contains the full word competition", got)
	}
	if got != strings.ToLower(got) {
		t.Errorf("output %q is not fully lowercased", got)
	}
}

// TestRenderDeterministic verifies that the pipeline is a pure function
// of its input and the injected date.
func TestRenderDeterministic(t *testing.T) {
	text := blockText("Press", "3\t5\t7\t60\t60\t7")
	if a, b := RenderText(text, testDate), RenderText(text, testDate); a != b {
		t.Errorf("two runs differ: %q vs %q", a, b)
	}
}

// TestRenderEncoded verifies base64 decoding in front of the pipeline,
// and that a malformed encoding surfaces as an error.
func TestRenderEncoded(t *testing.T) {
	text := blockText("Row", "3\t10\t6\t50\t50\t6")
	encoded := base64.StdEncoding.EncodeToString([]byte(text))

	got, err := RenderEncoded(encoded, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2026-03-14\n\nrow\n50kg 18x10 @ 6"
	if got != want {
		t.Errorf("RenderEncoded = %q, want %q", got, want)
	}

	if _, err := RenderEncoded("not!!valid!!base64", testDate); err == nil {
		t.Error("expected error for malformed base64, got nil")
	}
}

// TestRenderEmptyPlan verifies that an empty grid still yields the date
// header.
func TestRenderEmptyPlan(t *testing.T) {
	if got := RenderText("", testDate); got != "2026-03-14" {
		t.Errorf("RenderText(empty) = %q, want just the date line", got)
	}
}
