package output

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/rsilvagit/jobsheet/internal/model"
)

// SheetName is the name of the single sheet in an exported workbook.
const SheetName = "Jobs"

// ExportError reports a workbook that could not be written to Path.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// XLSXWriter saves jobs to an Excel workbook, one row per record under a
// header row of model.Columns. An existing file at the path is replaced.
type XLSXWriter struct {
	path string
}

func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Path returns the file the writer saves to.
func (xw *XLSXWriter) Path() string {
	return xw.path
}

func (xw *XLSXWriter) WriteJobs(jobs []model.JobRecord) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return &ExportError{Path: xw.path, Err: eris.Wrap(err, "xlsx: add sheet")}
	}

	addRow(sheet, model.Columns)
	for _, j := range jobs {
		addRow(sheet, j.Row())
	}

	if err := f.Save(xw.path); err != nil {
		return &ExportError{Path: xw.path, Err: eris.Wrap(err, "xlsx: save file")}
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

// ReadXLSX reads the first sheet of an exported workbook, header included.
func ReadXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("xlsx: %s has no sheets", path)
	}

	var rows [][]string
	for _, row := range f.Sheets[0].Rows {
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
