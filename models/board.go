package models

import (
	"strconv"
	"strings"
)

// EmptyCellPlaceholder replaces empty cells when a board is rendered as text.
const EmptyCellPlaceholder = "."

// Board is a Sudoku grid as sent by the web client: rows of cells where an
// empty cell is null.
type Board [][]*int

// IsEmpty reports whether the board has no rows or contains an empty row.
func (b Board) IsEmpty() bool {
	if len(b) == 0 {
		return true
	}

	for _, row := range b {
		if len(row) == 0 {
			return true
		}
	}

	return false
}

// Rows renders each row as a string of digits, empty cells as
// [EmptyCellPlaceholder].
func (b Board) Rows() []string {
	rows := make([]string, 0, len(b))

	for _, row := range b {
		var sb strings.Builder
		for _, cell := range row {
			if cell == nil {
				sb.WriteString(EmptyCellPlaceholder)
				continue
			}
			sb.WriteString(strconv.Itoa(*cell))
		}
		rows = append(rows, sb.String())
	}

	return rows
}
