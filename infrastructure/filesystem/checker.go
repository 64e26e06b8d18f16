package filesystem

import (
	"os"

	"vid2mp3/domain/media"
)

// Checker implements media.FileChecker using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the file exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists returns true if path exists and is a directory
func (c *Checker) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Ensure Checker implements media.FileChecker
var _ media.FileChecker = (*Checker)(nil)

// Sizer reports file sizes using os.Stat
type Sizer struct{}

// NewSizer creates a new filesystem sizer
func NewSizer() *Sizer {
	return &Sizer{}
}

// Size returns the size of the file at path in bytes, or 0 when it cannot
// be read
func (s *Sizer) Size(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
