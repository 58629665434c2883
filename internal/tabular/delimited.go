package tabular

import (
	"encoding/csv"
	"os"
	"strings"

	apperrors "tablemerge/internal/errors"
)

// readDelimited returns a reader for comma- or tab-separated text files.
func readDelimited(comma rune) ReadFunc {
	return func(path string) ([][]string, error) {
		file, err := os.Open(path)
		if err != nil {
			return nil, apperrors.NewParsingError("failed to open file", err).
				WithContext("path", path)
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.Comma = comma
		// Source rows are not guaranteed to match the header's length
		reader.FieldsPerRecord = -1

		rows, err := reader.ReadAll()
		if err != nil {
			return nil, apperrors.NewParsingError("failed to parse delimited file", err).
				WithContext("path", path)
		}

		stripBOM(rows)
		return rows, nil
	}
}

// stripBOM removes a UTF-8 byte order mark from the first cell. Spreadsheet
// tools routinely prefix exported CSV files with one, and it must not become
// part of the first column name.
func stripBOM(rows [][]string) {
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}
}
