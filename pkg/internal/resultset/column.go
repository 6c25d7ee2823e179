// Package resultset assembles per-recording RMSSD columns into the wide
// results table. Columns have independent lengths; the table aligns them by
// row position only, padding shorter columns with blank cells. Row index in
// the merged table carries no meaning across columns.
package resultset

// Column is the ordered sequence of RMSSD values one recording produced, in
// window order, labeled "{session}_{subject}".
type Column struct {
	label  string
	values []float64
}

// NewColumn creates an empty column with the given label.
func NewColumn(label string) *Column {
	return &Column{label: label}
}

// Append adds one produced RMSSD value to the column.
func (c *Column) Append(value float64) {
	c.values = append(c.values, value)
}

// Label returns the column heading.
func (c *Column) Label() string {
	return c.label
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	return len(c.values)
}

// Value returns the i-th value. i must be in [0, Len()).
func (c *Column) Value(i int) float64 {
	return c.values[i]
}
