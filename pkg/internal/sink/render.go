package sink

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// RenderDelimited renders a table as delimited text: one header row of column
// labels, then one row per table row. Values are formatted to two decimal
// places; cells beyond a column's own length are empty.
func RenderDelimited(table types.ResultTable, comma rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = comma

	if err := w.Write(table.Labels()); err != nil {
		return nil, fmt.Errorf("render header: %w", err)
	}

	cols := table.Cols()
	record := make([]string, cols)
	for row := 0; row < table.Rows(); row++ {
		for col := 0; col < cols; col++ {
			if v, ok := table.Cell(row, col); ok {
				record[col] = fmt.Sprintf("%.2f", v)
			} else {
				record[col] = ""
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("render row %d: %w", row, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render table: %w", err)
	}
	return buf.Bytes(), nil
}
