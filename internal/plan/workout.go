package plan

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// FormatExercise renders one exercise: name line followed by its
// coalesced set lines.
func FormatExercise(ex Exercise) string {
	parts := []string{ex.Name}
	for _, line := range Coalesce(ex.Sets) {
		parts = append(parts, line.String())
	}
	return strings.Join(parts, "\n")
}

// Render assembles the full workout log: a YYYY-MM-DD date line, then
// each exercise separated by a blank line. The assembled text is
// lowercased and the word "competition" is shortened to "comp"; both
// transforms apply to the whole text, date line included.
func Render(exercises []Exercise, date time.Time) string {
	parts := make([]string, 0, len(exercises)+1)
	parts = append(parts, date.Format("2006-01-02"))
	for _, ex := range exercises {
		parts = append(parts, FormatExercise(ex))
	}

	text := strings.Join(parts, "\n\n")
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "competition", "comp")
	return text
}

// RenderText runs the whole pipeline on decoded spreadsheet text.
func RenderText(text string, date time.Time) string {
	blocks := ParseGrid(text)
	exercises := make([]Exercise, 0, len(blocks))
	for _, b := range blocks {
		exercises = append(exercises, Expand(b))
	}
	return Render(exercises, date)
}

// RenderEncoded decodes base64-encoded spreadsheet text and renders it.
// A malformed encoding is the one hard failure in the pipeline and is
// returned to the caller rather than absorbed.
func RenderEncoded(encoded string, date time.Time) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding plan data: %w", err)
	}
	return RenderText(string(decoded), date), nil
}
