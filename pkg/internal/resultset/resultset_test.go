package resultset_test

import (
	"testing"

	"github.com/joeydtaylor/hrvkit/pkg/internal/resultset"
)

func buildColumn(label string, values ...float64) *resultset.Column {
	c := resultset.NewColumn(label)
	for _, v := range values {
		c.Append(v)
	}
	return c
}

func TestColumn_AppendAndAccess(t *testing.T) {
	c := buildColumn("session-1_01", 707.11, 0, 15.62)
	if c.Len() != 3 {
		t.Fatalf("expected 3 values, got %d", c.Len())
	}
	if c.Label() != "session-1_01" {
		t.Errorf("unexpected label %q", c.Label())
	}
	if c.Value(1) != 0 {
		t.Errorf("unexpected value at 1: %v", c.Value(1))
	}
}

func TestMerge_UnequalLengths(t *testing.T) {
	short := buildColumn("a_01", 1, 2, 3, 4, 5)
	long := buildColumn("b_02", 10, 20, 30, 40, 50, 60, 70, 80)

	table := resultset.Merge(short, long)
	if table.Rows() != 8 {
		t.Fatalf("expected 8 rows, got %d", table.Rows())
	}
	if table.Cols() != 2 {
		t.Fatalf("expected 2 columns, got %d", table.Cols())
	}

	// Rows 6-8 of the shorter column are blank.
	for row := 5; row < 8; row++ {
		if _, ok := table.Cell(row, 0); ok {
			t.Errorf("expected blank cell at row %d of short column", row)
		}
		if v, ok := table.Cell(row, 1); !ok || v != float64((row+1)*10) {
			t.Errorf("expected value in long column at row %d, got %v ok=%v", row, v, ok)
		}
	}

	if v, ok := table.Cell(0, 0); !ok || v != 1 {
		t.Errorf("expected first cell 1, got %v ok=%v", v, ok)
	}
}

func TestMerge_PreservesColumnOrder(t *testing.T) {
	table := resultset.Merge(
		buildColumn("c_03", 1),
		buildColumn("a_01", 2),
		buildColumn("b_02", 3),
	)
	labels := table.Labels()
	want := []string{"c_03", "a_01", "b_02"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("expected labels %v, got %v", want, labels)
		}
	}
}

func TestMerge_IgnoresNilColumns(t *testing.T) {
	table := resultset.Merge(nil, buildColumn("a_01", 1), nil)
	if table.Cols() != 1 {
		t.Fatalf("expected 1 column, got %d", table.Cols())
	}
}

func TestTable_EmptyLabels(t *testing.T) {
	table := resultset.Merge(buildColumn("a_01", 1), buildColumn("b_02"))
	empty := table.EmptyLabels()
	if len(empty) != 1 || empty[0] != "b_02" {
		t.Fatalf("expected [b_02], got %v", empty)
	}
}

func TestMerge_NoColumns(t *testing.T) {
	table := resultset.Merge()
	if table.Cols() != 0 || table.Rows() != 0 {
		t.Fatalf("expected empty table, got %dx%d", table.Rows(), table.Cols())
	}
}
