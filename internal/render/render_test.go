package render

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"**drills** every tuesday", "<strong>drills</strong>"},
		{"# Open Play", "Open Play"},
		{"- dink\n- drive", "<li>dink</li>"},
	}
	for _, tt := range tests {
		got := MarkdownToHTML(tt.input)
		if !strings.Contains(got, tt.contains) {
			t.Errorf("MarkdownToHTML(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
		}
	}
}

func TestMarkdownToHTMLStripsScript(t *testing.T) {
	got := MarkdownToHTML("hello <script>alert(1)</script> world")
	if strings.Contains(got, "<script>") {
		t.Errorf("MarkdownToHTML did not strip script tag: %q", got)
	}
}

func TestStripTags(t *testing.T) {
	got := StripTags(`<a href="x">Sun Belt</a> Pickleball`)
	if got != "Sun Belt Pickleball" {
		t.Errorf("StripTags = %q, want %q", got, "Sun Belt Pickleball")
	}
}
