package sink

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// ExcelSink writes a result table to an xlsx workbook with a single sheet.
// Header cells carry the column labels; value cells are rounded to two
// decimal places to match the delimited renderer.
type ExcelSink struct {
	component
	path  string
	sheet string
}

// NewExcelSink creates an xlsx table sink writing to path.
func NewExcelSink(ctx context.Context, path string, options ...types.Option[types.TableSink]) types.TableSink {
	s := &ExcelSink{
		path:  path,
		sheet: "RMSSD",
	}
	s.componentMetadata = types.ComponentMetadata{
		ID:   utils.GenerateUniqueHash(),
		Type: "EXCEL_SINK",
	}
	var iface types.TableSink = s
	for _, opt := range options {
		opt(iface)
	}
	return s
}

// Write renders the table into the workbook and saves it.
func (s *ExcelSink) Write(ctx context.Context, table types.ResultTable) error {
	if table.Cols() == 0 {
		return fmt.Errorf("excel sink: empty table")
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("excel sink: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(s.sheet)
	if err != nil {
		return fmt.Errorf("excel sink: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if s.sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("excel sink: %w", err)
		}
	}

	for col, label := range table.Labels() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("excel sink: header cell: %w", err)
		}
		if err := f.SetCellValue(s.sheet, cell, label); err != nil {
			return fmt.Errorf("excel sink: header cell %s: %w", cell, err)
		}
	}

	for row := 0; row < table.Rows(); row++ {
		for col := 0; col < table.Cols(); col++ {
			v, ok := table.Cell(row, col)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("excel sink: cell: %w", err)
			}
			if err := f.SetCellValue(s.sheet, cell, math.Round(v*100)/100); err != nil {
				return fmt.Errorf("excel sink: cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("excel sink: save %s: %w", s.path, err)
	}

	s.NotifyLoggers(
		types.InfoLevel,
		"Wrote Excel table",
		"component", s.componentMetadata,
		"event", "Write",
		"result", "SUCCESS",
		"output", s.path,
		"sheet", s.sheet,
		"columns", table.Cols(),
		"rows", table.Rows(),
	)
	return nil
}

// Path returns the configured output path.
func (s *ExcelSink) Path() string { return s.path }
