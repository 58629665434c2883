package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "tablemerge/internal/errors"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path string
	Name string
	Size int64
}

// Discovery provides input file discovery operations
type Discovery struct {
	extensions map[string]bool
}

// NewDiscovery creates a new file discovery instance for the given extension
// allow-list. Extensions must include the leading dot and are matched
// case-insensitively.
func NewDiscovery(extensions []string) *Discovery {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}
	return &Discovery{extensions: allowed}
}

// Find resolves a search path into the list of candidate input files.
//
// A regular file is returned as the single candidate. A directory is walked
// recursively and every file with an allowed extension is collected;
// everything else is ignored silently. A path that is neither a file nor a
// directory is a configuration error.
func (d *Discovery) Find(searchPath string) ([]FileInfo, error) {
	info, err := os.Stat(searchPath)
	if err != nil {
		return nil, apperrors.NewConfigError("cannot access search path "+searchPath, err)
	}

	// A file named directly is always a candidate; if its format is
	// unsupported the reader reports that per file instead of failing the run.
	if info.Mode().IsRegular() {
		return []FileInfo{{
			Path: searchPath,
			Name: filepath.Base(searchPath),
			Size: info.Size(),
		}}, nil
	}

	if !info.IsDir() {
		return nil, apperrors.NewConfigError(searchPath+" is neither a file nor a directory", nil)
	}

	var found []FileInfo
	err = filepath.WalkDir(searchPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !d.Allowed(path) {
			return nil
		}

		fi, err := entry.Info()
		if err != nil {
			return nil // entry vanished mid-walk, skip it
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		found = append(found, FileInfo{
			Path: path,
			Name: entry.Name(),
			Size: fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, apperrors.NewConfigError("failed to walk directory "+searchPath, err)
	}

	return found, nil
}

// Allowed reports whether the path's extension is on the allow-list
func (d *Discovery) Allowed(path string) bool {
	return d.extensions[strings.ToLower(filepath.Ext(path))]
}
