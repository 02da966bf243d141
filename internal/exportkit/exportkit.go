// Package exportkit renders table data to CSV and XLSX. It is the Go
// home of the dashboard's "export" menu entries: hosts collect pages
// (usually every page of the current list/search/filter shape), shape
// them with the visible columns, and hand the sheet here
package exportkit

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	perr "salesops/internal/platform/errors"
	"salesops/internal/tablekit"
)

// Sheet is a fully materialized export: one header row plus data rows
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Format selects the output encoding
type Format string

// Supported export formats
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a user-supplied format name, defaulting to CSV
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", perr.InvalidArgf("unknown export format %q", s)
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Ext returns the file extension including the dot
func (f Format) Ext() string {
	if f == FormatXLSX {
		return ".xlsx"
	}
	return ".csv"
}

// Write encodes the sheet in the given format
func Write(w io.Writer, f Format, s Sheet) error {
	if f == FormatXLSX {
		return WriteXLSX(w, s)
	}
	return WriteCSV(w, s)
}

// WriteCSV encodes the sheet as RFC 4180 CSV with a header row
func WriteCSV(w io.Writer, s Sheet) error {
	cw := csv.NewWriter(w)
	if len(s.Headers) > 0 {
		if err := cw.Write(s.Headers); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "export: csv header")
		}
	}
	for _, row := range s.Rows {
		if err := cw.Write(row); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "export: csv row")
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX encodes the sheet as a single-worksheet workbook
func WriteXLSX(w io.Writer, s Sheet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := s.Name
	if sheet == "" {
		sheet = "Export"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "export: xlsx sheet")
	}

	write := func(rowIdx int, cells []string) error {
		for colIdx, v := range cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	rowIdx := 1
	if len(s.Headers) > 0 {
		if err := write(rowIdx, s.Headers); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "export: xlsx header")
		}
		rowIdx++
	}
	for _, row := range s.Rows {
		if err := write(rowIdx, row); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "export: xlsx row")
		}
		rowIdx++
	}

	if _, err := f.WriteTo(w); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "export: xlsx write")
	}
	return nil
}

// FromController shapes the controller's current page using its visible
// columns. Hosts that want every page loop SetPage and append
func FromController[T any](c *tablekit.Controller[T], name string) Sheet {
	cols := c.VisibleColumns()
	s := Sheet{Name: name, Headers: make([]string, len(cols))}
	for i, col := range cols {
		s.Headers[i] = col.Title
	}
	for _, r := range c.Rows() {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = c.CellValue(r, col)
		}
		s.Rows = append(s.Rows, cells)
	}
	return s
}

// AppendController appends the controller's current page rows to an
// existing sheet (headers are kept from the first page)
func AppendController[T any](s *Sheet, c *tablekit.Controller[T]) {
	cols := c.VisibleColumns()
	for _, r := range c.Rows() {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = c.CellValue(r, col)
		}
		s.Rows = append(s.Rows, cells)
	}
}

// Amount formats a monetary value for the given locale with two fraction
// digits and grouping, e.g. 1234567.5 -> "1,234,567.50" for English
func Amount(v float64, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
