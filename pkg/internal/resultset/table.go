package resultset

// Table is the merged wide results table: one column per recording, aligned
// by row position. Implements types.ResultTable.
type Table struct {
	columns []*Column
	rows    int
}

// Merge assembles columns into one table, preserving the given column order.
// Nil columns are ignored.
func Merge(columns ...*Column) *Table {
	t := &Table{}
	for _, c := range columns {
		if c == nil {
			continue
		}
		t.columns = append(t.columns, c)
		if c.Len() > t.rows {
			t.rows = c.Len()
		}
	}
	return t
}

// Labels returns the column headings in table order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Label()
	}
	return out
}

// Rows returns the row count: the length of the longest column.
func (t *Table) Rows() int {
	return t.rows
}

// Cols returns the number of columns.
func (t *Table) Cols() int {
	return len(t.columns)
}

// Cell returns the value at (row, col) and whether the column extends that
// far. Cells beyond a column's own length are blank.
func (t *Table) Cell(row, col int) (float64, bool) {
	c := t.columns[col]
	if row < 0 || row >= c.Len() {
		return 0, false
	}
	return c.Value(row), true
}

// EmptyLabels returns the labels of columns holding no values. The pipeline
// drops empty columns before merging, so a non-empty return indicates a bug
// upstream; the aggregator surfaces it as a warning rather than failing.
func (t *Table) EmptyLabels() []string {
	var out []string
	for _, c := range t.columns {
		if c.Len() == 0 {
			out = append(out, c.Label())
		}
	}
	return out
}
