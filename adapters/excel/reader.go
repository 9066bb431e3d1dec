package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"gstinvoice/internal/errors"
	"gstinvoice/internal/normalize"
)

// GridReader decodes uploaded spreadsheets into the positional cell grid
// the normalizer consumes. Excel files (.xlsx, .xls) go through excelize;
// .csv goes through encoding/csv. The reader never touches the
// filesystem; uploads stream straight from the request body.
type GridReader struct{}

// NewGridReader creates a new spreadsheet grid reader.
func NewGridReader() *GridReader {
	return &GridReader{}
}

// ReadGrid decodes the spreadsheet in r into a cell grid. The filename
// only selects the decoder by extension. A failure here is the hard
// parse-failure path: no grid, no record, caller keeps its prior state.
func (gr *GridReader) ReadGrid(r io.Reader, filename string) (normalize.Grid, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	start := time.Now()

	var (
		grid normalize.Grid
		err  error
	)
	switch ext {
	case ".csv":
		grid, err = gr.readCSV(r)
	case ".xlsx", ".xls":
		grid, err = gr.readExcel(r)
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported spreadsheet type: %s", ext))
	}
	if err != nil {
		log.Printf("[GridReader] FAILED - could not decode %s: %v", filename, err)
		return nil, errors.ParseFailure(filename, err)
	}

	log.Printf("[GridReader] Decoded %s in %.2fms (%d rows)",
		filename, float64(time.Since(start).Nanoseconds())/1e6, len(grid))
	return grid, nil
}

// readExcel decodes the first sheet of an Excel workbook.
func (gr *GridReader) readExcel(r io.Reader) (normalize.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return gr.toGrid(rows), nil
}

// readCSV decodes a comma-separated file. Ragged rows are fine; the
// grid is positional and short rows just read as empty cells.
func (gr *GridReader) readCSV(r io.Reader) (normalize.Grid, error) {
	// csv.Reader chokes on BOMs some spreadsheet tools emit.
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV stream: %w", err)
	}
	buf = bytes.TrimPrefix(buf, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(buf))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return gr.toGrid(rows), nil
}

// toGrid trims every cell; the normalizer relies on blank meaning blank.
func (gr *GridReader) toGrid(rows [][]string) normalize.Grid {
	grid := make(normalize.Grid, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		grid[i] = cells
	}
	return grid
}
