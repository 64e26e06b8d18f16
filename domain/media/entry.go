package media

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// SupportedExtensions is the set of video file extensions the tool accepts,
// lowercase and without the leading dot
var SupportedExtensions = map[string]bool{
	"mp4":  true,
	"avi":  true,
	"mov":  true,
	"mkv":  true,
	"flv":  true,
	"wmv":  true,
	"webm": true,
	"m4v":  true,
	"3gp":  true,
}

// Entry represents a video file discovered during a directory scan
type Entry struct {
	Name      string
	Path      string
	SizeBytes uint64
	Extension string
}

// NewEntry creates an Entry, deriving the extension from the file name
func NewEntry(name, path string, sizeBytes uint64) Entry {
	return Entry{
		Name:      name,
		Path:      path,
		SizeBytes: sizeBytes,
		Extension: ExtensionOf(name),
	}
}

// ExtensionOf returns the extension of name, lowercased and without the
// leading dot
func ExtensionOf(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// IsSupported returns true if name carries a supported video extension
func IsSupported(name string) bool {
	return SupportedExtensions[ExtensionOf(name)]
}

// SupportedExtensionList returns the supported extensions sorted for display
func SupportedExtensionList() []string {
	list := make([]string, 0, len(SupportedExtensions))
	for ext := range SupportedExtensions {
		list = append(list, ext)
	}
	sort.Strings(list)
	return list
}

// String renders the entry the way file listings show it
func (e Entry) String() string {
	return fmt.Sprintf("%s (%.1f MB)", e.Name, float64(e.SizeBytes)/(1024*1024))
}
