package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidFile marks uploads rejected before reaching the backend.
var ErrInvalidFile = errors.New("invalid spreadsheet")

// Validate checks an uploaded spreadsheet before it is forwarded upstream.
// Only xlsx workbooks are opened; csv and legacy xls are format-checked by
// the backend's own parser.
func Validate(fileName string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv", ".xls":
		if len(bytes.TrimSpace(data)) == 0 {
			return fmt.Errorf("%w: file is empty", ErrInvalidFile)
		}
		return nil
	case ".xlsx":
		return validateWorkbook(data)
	default:
		return fmt.Errorf("%w: unsupported extension %q", ErrInvalidFile, ext)
	}
}

func validateWorkbook(data []byte) error {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: not a readable workbook", ErrInvalidFile)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("%w: workbook has no sheets", ErrInvalidFile)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("%w: unreadable first sheet", ErrInvalidFile)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: first sheet is empty", ErrInvalidFile)
	}
	return nil
}
