package media

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{
			name:  "https URL is remote",
			input: "https://example.com/v.mp4",
			want:  Remote,
		},
		{
			name:  "http URL is remote",
			input: "http://example.com/v.mp4",
			want:  Remote,
		},
		{
			name:  "uppercase scheme is canonicalized",
			input: "HTTPS://example.com/v.mp4",
			want:  Remote,
		},
		{
			name:  "ftp scheme is local",
			input: "ftp://x/y.mp4",
			want:  Local,
		},
		{
			name:  "file scheme is local",
			input: "file:///tmp/v.mp4",
			want:  Local,
		},
		{
			name:  "absolute path is local",
			input: "/tmp/v.mp4",
			want:  Local,
		},
		{
			name:  "relative path is local",
			input: "videos/v.mp4",
			want:  Local,
		},
		{
			name:  "scheme without host is local",
			input: "https://",
			want:  Local,
		},
		{
			name:  "empty string is local",
			input: "",
			want:  Local,
		},
		{
			name:  "unparseable input is local",
			input: "http://exa mple.com/%zz",
			want:  Local,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "local file keeps its directory",
			input: "/tmp/clip.mp4",
			want:  "/tmp/clip.mp3",
		},
		{
			name:  "bare file name stays bare",
			input: "clip.mp4",
			want:  "clip.mp3",
		},
		{
			name:  "nested directory is preserved",
			input: "/media/videos/2026/talk.mkv",
			want:  "/media/videos/2026/talk.mp3",
		},
		{
			name:  "local file without extension",
			input: "/tmp/recording",
			want:  "/tmp/recording.mp3",
		},
		{
			name:  "only the final extension is replaced",
			input: "/tmp/archive.tar.gz",
			want:  "/tmp/archive.tar.mp3",
		},
		{
			name:  "remote URL lands in the working directory",
			input: "https://example.com/path/clip.mov?x=1",
			want:  "clip.mp3",
		},
		{
			name:  "remote URL without a path falls back",
			input: "https://example.com",
			want:  "output.mp3",
		},
		{
			name:  "remote URL with a bare slash falls back",
			input: "https://example.com/",
			want:  "output.mp3",
		},
		{
			name:  "remote URL fragment and query are ignored",
			input: "http://cdn.example.com/a/b/lecture.webm?sig=abc#t=30",
			want:  "lecture.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveOutputPath(tt.input); got != tt.want {
				t.Errorf("DeriveOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeriveOutputPathIsIdempotent(t *testing.T) {
	inputs := []string{
		"/tmp/clip.mp4",
		"clip.mp4",
		"https://example.com/path/clip.mov?x=1",
	}

	for _, input := range inputs {
		first := DeriveOutputPath(input)
		second := DeriveOutputPath(input)
		if first != second {
			t.Errorf("DeriveOutputPath(%q) not idempotent: %q then %q", input, first, second)
		}
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{
			name:     "extension is stripped",
			fileName: "clip.mp4",
			want:     "clip",
		},
		{
			name:     "no extension passes through",
			fileName: "recording",
			want:     "recording",
		},
		{
			name:     "leading dot is kept",
			fileName: ".env",
			want:     ".env",
		},
		{
			name:     "trailing dot is stripped",
			fileName: "clip.",
			want:     "clip",
		},
		{
			name:     "empty name falls back",
			fileName: "",
			want:     "output",
		},
		{
			name:     "dot name falls back",
			fileName: ".",
			want:     "output",
		},
		{
			name:     "slash falls back",
			fileName: "/",
			want:     "output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stem(tt.fileName); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestResolveInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		rootDir string
		want    string
	}{
		{
			name:    "remote locator passes through",
			raw:     "https://example.com/v.mp4",
			rootDir: "/videos",
			want:    "https://example.com/v.mp4",
		},
		{
			name:    "absolute path passes through",
			raw:     "/tmp/v.mp4",
			rootDir: "/videos",
			want:    "/tmp/v.mp4",
		},
		{
			name:    "relative name joins the root",
			raw:     "v.mp4",
			rootDir: "/videos",
			want:    "/videos/v.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveInput(tt.raw, tt.rootDir); got != tt.want {
				t.Errorf("ResolveInput(%q, %q) = %q, want %q", tt.raw, tt.rootDir, got, tt.want)
			}
		})
	}
}
