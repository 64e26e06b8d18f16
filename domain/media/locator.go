package media

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Kind classifies a transcode input locator
type Kind int

const (
	// Local is a filesystem path
	Local Kind = iota
	// Remote is an absolute http or https URI
	Remote
)

// Classify reports whether input is a remote locator or a local path.
// Only absolute URIs with an http or https scheme count as remote; parse
// failures and every other scheme classify as local.
func Classify(input string) Kind {
	u, err := url.Parse(input)
	if err != nil {
		return Local
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return Remote
	}
	return Local
}

// DeriveOutputPath returns the .mp3 artifact path for input. Remote
// locators produce a bare file name in the current working directory;
// local inputs keep their parent directory. Derivation is pure: it never
// consults the filesystem.
func DeriveOutputPath(input string) string {
	if Classify(input) == Remote {
		u, _ := url.Parse(input)
		return Stem(path.Base(u.Path)) + ".mp3"
	}

	name := Stem(filepath.Base(input)) + ".mp3"
	if dir := filepath.Dir(input); dir != "." {
		return filepath.Join(dir, name)
	}
	return name
}

// Stem returns name without its final extension. Names with no usable
// stem fall back to "output".
func Stem(name string) string {
	if name == "" || name == "." || name == "/" {
		return "output"
	}
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	return name
}

// ResolveInput expands a raw selection to a full locator. Remote locators
// and absolute paths pass through unchanged; anything else is joined onto
// rootDir as a single path segment.
func ResolveInput(raw, rootDir string) string {
	if Classify(raw) == Remote || filepath.IsAbs(raw) {
		return raw
	}
	return filepath.Join(rootDir, raw)
}
