package extract

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetExtractor reads the first sheet of an .xlsx workbook.
// Cells are flattened row by row and joined with newlines; short rows
// are padded with empty cells so every row has the table's width.
type SpreadsheetExtractor struct{}

func NewSpreadsheetExtractor() *SpreadsheetExtractor {
	return &SpreadsheetExtractor{}
}

func (e *SpreadsheetExtractor) Name() string {
	return "xlsx"
}

// CanExtract matches the .xlsx suffix exactly; ".XLSX" falls through to text.
func (e *SpreadsheetExtractor) CanExtract(fileName string) bool {
	return strings.HasSuffix(fileName, ".xlsx")
}

func (e *SpreadsheetExtractor) Extract(filePath string) (string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	return FlattenRows(rows), nil
}

// FlattenRows joins a table in row-major order: [[a b] [c d]] -> "a\nb\nc\nd".
func FlattenRows(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := make([]string, 0, len(rows)*width)
	for _, row := range rows {
		cells = append(cells, row...)
		for i := len(row); i < width; i++ {
			cells = append(cells, "")
		}
	}

	return strings.Join(cells, "\n")
}
