package publish

import "testing"

func TestOutputName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"docs/report.pdf", "docs/report-pub.pdf"},
		{"REPORT.PDF", "REPORT-pub.pdf"},
		{"notes.txt", "notes.txt-pub.pdf"},
		{"archive", "archive-pub.pdf"},
		{"dir.with.dots/file.pdf", "dir.with.dots/file-pub.pdf"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.input, DefaultSuffix); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOutputNameCustomSuffix(t *testing.T) {
	if got := OutputName("a.pdf", "-marked"); got != "a-marked.pdf" {
		t.Errorf("Unexpected name: %q", got)
	}
}
