package tabular

import (
	"path/filepath"
	"strings"

	apperrors "tablemerge/internal/errors"
)

// ReadFunc reads one file into rows of text cells. Row 0 is the header row.
type ReadFunc func(path string) ([][]string, error)

// readers dispatches file extensions to format readers
var readers = map[string]ReadFunc{
	".csv":  readDelimited(','),
	".tsv":  readDelimited('\t'),
	".xlsx": readWorkbook,
	".xlsm": readWorkbook,
	".xltx": readWorkbook,
	".xltm": readWorkbook,
}

// ReadFile reads the file at path into rows of text cells, dispatching on the
// file extension. Rows are not padded or truncated: a row may be shorter or
// longer than the header row.
func ReadFile(path string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	read, ok := readers[ext]
	if !ok {
		return nil, apperrors.NewParsingError("unsupported file extension "+ext, nil).
			WithContext("path", path)
	}
	return read(path)
}

// SupportedExtensions returns the extensions ReadFile can dispatch,
// unordered.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(readers))
	for ext := range readers {
		exts = append(exts, ext)
	}
	return exts
}
