// Package excel wraps spreadsheet reading and writing on top of the
// excelize library. Cells are handled as strings, matching the
// toolkit's row-oriented usage.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/karatsuba/toolkit/strutil"
)

// Workbook is a spreadsheet with a current sheet that row operations
// apply to. Checkout switches or creates sheets.
type Workbook struct {
	f     *excelize.File
	sheet string
}

// New creates an empty workbook with the default sheet selected.
func New() *Workbook {
	f := excelize.NewFile()
	return &Workbook{f: f, sheet: f.GetSheetName(0)}
}

// Open loads a workbook from a file.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{f: f, sheet: f.GetSheetName(0)}, nil
}

// OpenReader loads a workbook from a stream.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f, sheet: f.GetSheetName(0)}, nil
}

// Checkout switches the current sheet, creating it when missing.
func (w *Workbook) Checkout(name string) error {
	if strutil.IsEmpty(name) {
		return fmt.Errorf("checkout: empty sheet name")
	}
	idx, err := w.f.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("checkout %s: %w", name, err)
	}
	if idx < 0 {
		if idx, err = w.f.NewSheet(name); err != nil {
			return fmt.Errorf("checkout %s: %w", name, err)
		}
	}
	w.f.SetActiveSheet(idx)
	w.sheet = name
	return nil
}

// Sheet returns the name of the current sheet.
func (w *Workbook) Sheet() string { return w.sheet }

// AddRow appends a row of values to the current sheet.
// Values are stringified, nil becomes an empty cell.
func (w *Workbook) AddRow(values ...any) error {
	n, err := w.RowCount()
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(1, n+1)
	if err != nil {
		return fmt.Errorf("add row: %w", err)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = strutil.Atos(v)
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &cells); err != nil {
		return fmt.Errorf("add row: %w", err)
	}
	return nil
}

// Row returns the cells of the row at index, counted from 0.
func (w *Workbook) Row(index int) ([]string, error) {
	rows, err := w.f.GetRows(w.sheet)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", index, err)
	}
	if index < 0 || index >= len(rows) {
		return nil, fmt.Errorf("row %d: out of range, %d rows", index, len(rows))
	}
	return rows[index], nil
}

// RowCount returns the number of rows in the current sheet.
func (w *Workbook) RowCount() (int, error) {
	rows, err := w.f.GetRows(w.sheet)
	if err != nil {
		return 0, fmt.Errorf("row count: %w", err)
	}
	return len(rows), nil
}

// Write streams the workbook to an output.
func (w *Workbook) Write(out io.Writer) error {
	if err := w.f.Write(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveAs stores the workbook to a file.
func (w *Workbook) SaveAs(path string) error {
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error {
	return w.f.Close()
}
