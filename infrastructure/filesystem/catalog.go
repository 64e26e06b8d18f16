package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vid2mp3/domain/media"
)

// Catalog lists supported video files straight from a directory
type Catalog struct{}

// NewCatalog creates a new filesystem catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

// List scans dir and returns its supported video files sorted by name,
// case-insensitively. A missing path or a non-directory yields an empty
// listing rather than an error. Entries whose metadata cannot be read are
// skipped so one bad file never aborts the whole listing. Subdirectories
// are not entered.
func (c *Catalog) List(dir string) ([]media.Entry, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var entries []media.Entry
	for _, de := range dirEntries {
		if de.IsDir() || !media.IsSupported(de.Name()) {
			continue
		}
		fi, err := de.Info()
		if err != nil {
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		entries = append(entries, media.NewEntry(de.Name(), filepath.Join(dir, de.Name()), uint64(fi.Size())))
	}

	// Stable sort keeps the filesystem enumeration order for names that
	// fold to the same string
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}
