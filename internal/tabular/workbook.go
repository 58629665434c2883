package tabular

import (
	"github.com/xuri/excelize/v2"

	apperrors "tablemerge/internal/errors"
)

// readWorkbook reads the first sheet of a spreadsheet container. Every cell is
// returned as its display text; no type inference is performed.
func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil).
			WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read sheet "+sheets[0], err).
			WithContext("path", path)
	}

	return rows, nil
}
