package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo describes one bank export file in the bank files directory.
type FileInfo struct {
	AccountCode string
	Name        string
	Path        string
}

// Scan returns the CSV files in dir, pairing each with the bank account
// code derived from its name: the token before the first dash, e.g.
// "CHK-2024-03.csv" belongs to account "CHK".
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading bank files dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		files = append(files, FileInfo{
			AccountCode: accountCodeFromName(e.Name()),
			Name:        e.Name(),
			Path:        filepath.Join(dir, e.Name()),
		})
	}
	return files, nil
}

func accountCodeFromName(name string) string {
	if code, _, ok := strings.Cut(name, "-"); ok {
		return code
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
