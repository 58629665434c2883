package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"

	apperrors "tablemerge/internal/errors"
)

// CSVWriter writes output artifacts as CSV files into a fixed directory
type CSVWriter struct {
	dir       string
	bomPrefix bool // add UTF-8 BOM for Excel compatibility
}

// NewCSVWriter creates a CSV writer that places artifacts in dir
func NewCSVWriter(dir string, bomPrefix bool) *CSVWriter {
	return &CSVWriter{dir: dir, bomPrefix: bomPrefix}
}

// Write serializes the header and rows to fileName inside the writer's
// directory, using standard CSV quoting. The file is fully flushed before
// Write returns; any failure is a storage error and the partial file is left
// behind for inspection. Returns the path of the written artifact.
func (w *CSVWriter) Write(fileName string, header []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", apperrors.NewStorageError("failed to create output directory", err).
			WithContext("dir", w.dir)
	}

	fullPath := filepath.Join(w.dir, fileName)
	file, err := os.Create(fullPath)
	if err != nil {
		return "", apperrors.NewStorageError("failed to create output file", err).
			WithContext("path", fullPath)
	}
	defer file.Close()

	if w.bomPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", apperrors.NewStorageError("failed to write BOM", err).
				WithContext("path", fullPath)
		}
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return "", apperrors.NewStorageError("failed to write header", err).
			WithContext("path", fullPath)
	}

	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", apperrors.NewStorageError("failed to write row", err).
				WithContext("path", fullPath).
				WithContext("row", i)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", apperrors.NewStorageError("failed to flush output file", err).
			WithContext("path", fullPath)
	}

	if err := file.Close(); err != nil {
		return "", apperrors.NewStorageError("failed to close output file", err).
			WithContext("path", fullPath)
	}

	return fullPath, nil
}
