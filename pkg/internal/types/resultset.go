package types

import "context"

// ResultTable is the read-side contract of the merged wide table: one column
// per processed recording, cells addressed by row position. Columns may have
// unequal lengths; Cell reports ok=false beyond a column's own length. Row
// position carries no cross-column meaning.
type ResultTable interface {
	Labels() []string
	Rows() int
	Cols() int
	Cell(row, col int) (float64, bool)
}

// TableSink persists a merged result table. Sinks are invoked once per run,
// after all per-file work has completed; they never see a table with zero
// columns (the pipeline treats that as nothing-to-save).
type TableSink interface {
	Write(ctx context.Context, table ResultTable) error

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
