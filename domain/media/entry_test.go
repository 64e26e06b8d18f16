package media

import "testing"

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{
			name:     "lowercase extension",
			fileName: "clip.mp4",
			want:     "mp4",
		},
		{
			name:     "uppercase extension is lowered",
			fileName: "Holiday.MP4",
			want:     "mp4",
		},
		{
			name:     "mixed case extension",
			fileName: "talk.WebM",
			want:     "webm",
		},
		{
			name:     "no extension",
			fileName: "README",
			want:     "",
		},
		{
			name:     "only the final extension counts",
			fileName: "archive.tar.gz",
			want:     "gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtensionOf(tt.fileName); got != tt.want {
				t.Errorf("ExtensionOf(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{
			name:     "mp4 is supported",
			fileName: "a.mp4",
			want:     true,
		},
		{
			name:     "case-insensitive match",
			fileName: "B.MP4",
			want:     true,
		},
		{
			name:     "3gp is supported",
			fileName: "old-phone.3gp",
			want:     true,
		},
		{
			name:     "text file is not",
			fileName: "c.txt",
			want:     false,
		},
		{
			name:     "no extension is not",
			fileName: "noext",
			want:     false,
		},
		{
			name:     "mp3 is audio, not video",
			fileName: "song.mp3",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSupported(tt.fileName); got != tt.want {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestSupportedExtensionList(t *testing.T) {
	list := SupportedExtensionList()

	if len(list) != len(SupportedExtensions) {
		t.Fatalf("SupportedExtensionList() has %d entries, want %d", len(list), len(SupportedExtensions))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1] >= list[i] {
			t.Errorf("SupportedExtensionList() not sorted: %q before %q", list[i-1], list[i])
		}
	}
	for _, ext := range list {
		if !SupportedExtensions[ext] {
			t.Errorf("SupportedExtensionList() contains unknown extension %q", ext)
		}
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry("Holiday.MP4", "/videos/Holiday.MP4", 1048576)

	if entry.Name != "Holiday.MP4" {
		t.Errorf("Name = %q, want %q", entry.Name, "Holiday.MP4")
	}
	if entry.Path != "/videos/Holiday.MP4" {
		t.Errorf("Path = %q, want %q", entry.Path, "/videos/Holiday.MP4")
	}
	if entry.SizeBytes != 1048576 {
		t.Errorf("SizeBytes = %d, want %d", entry.SizeBytes, 1048576)
	}
	if entry.Extension != "mp4" {
		t.Errorf("Extension = %q, want %q", entry.Extension, "mp4")
	}
}

func TestEntryString(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "megabyte size with one decimal",
			entry: NewEntry("clip.mp4", "/videos/clip.mp4", 1572864),
			want:  "clip.mp4 (1.5 MB)",
		},
		{
			name:  "small file rounds down",
			entry: NewEntry("tiny.avi", "/videos/tiny.avi", 1024),
			want:  "tiny.avi (0.0 MB)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.String(); got != tt.want {
				t.Errorf("Entry.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
