package plan

import (
	"fmt"
	"strings"
)

const (
	// colsPerRow is the number of spreadsheet columns in one plan row:
	// sets, reps, rpe, weight, actual weight, actual rpe.
	colsPerRow = 6

	// rowsPerExercise is one title row followed by six detail rows.
	rowsPerExercise = 7
)

// RowLengthError is returned when a Row is constructed from a cell slice
// that is not exactly colsPerRow long.
type RowLengthError struct {
	Got int
}

func (e RowLengthError) Error() string {
	return fmt.Sprintf("plan row needs %d cells, got %d", colsPerRow, e.Got)
}

// Row is one spreadsheet row of a plan block. All fields are raw cell
// text; parsing happens during set expansion. For a title row only Sets
// (the first column) is populated and holds the exercise name.
type Row struct {
	Sets         string
	Reps         string
	RPE          string
	Weight       string
	ActualWeight string
	ActualRPE    string
}

// NewRow builds a Row from exactly six cells.
func NewRow(cells []string) (Row, error) {
	if len(cells) != colsPerRow {
		return Row{}, RowLengthError{Got: len(cells)}
	}
	return Row{
		Sets:         cells[0],
		Reps:         cells[1],
		RPE:          cells[2],
		Weight:       cells[3],
		ActualWeight: cells[4],
		ActualRPE:    cells[5],
	}, nil
}

// Block is one exercise worth of plan rows: a title row whose first cell
// is the exercise name, plus six detail rows.
type Block struct {
	Name    string
	Details []Row
}

// Tokenize splits pasted spreadsheet text into a flat cell list. Tabs are
// normalized to newlines first: some platforms' clipboards convert tabs to
// newlines when pasting, so both must act as cell separators.
func Tokenize(text string) []string {
	normalized := strings.ReplaceAll(text, "\t", "\n")
	return strings.Split(normalized, "\n")
}

// ParseGrid tokenizes pasted text and partitions it into exercise blocks.
// A trailing group of cells shorter than a full row, and a trailing group
// of rows shorter than a full block, are dropped rather than rejected:
// a partially copied exercise is ignored, not an error.
func ParseGrid(text string) []Block {
	cells := Tokenize(text)

	var rows []Row
	for i := 0; i+colsPerRow <= len(cells); i += colsPerRow {
		row, _ := NewRow(cells[i : i+colsPerRow]) // slice is always colsPerRow wide here
		rows = append(rows, row)
	}

	var blocks []Block
	for i := 0; i+rowsPerExercise <= len(rows); i += rowsPerExercise {
		blocks = append(blocks, Block{
			Name:    rows[i].Sets,
			Details: rows[i+1 : i+rowsPerExercise],
		})
	}
	return blocks
}
