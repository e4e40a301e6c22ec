package instagram

import "testing"

func TestValidURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://instagram.com/p/ABC123", true},
		{"https://www.instagram.com/reel/xyz_-9/", true},
		{"http://instagram.com/tv/QQQ", true},
		{"https://instagram.com/stories/someuser/12345", true},
		{"https://www.instagram.com/highlights/17895", true},
		{"https://notinstagram.com/x", false},
		{"https://instagram.com/someuser", false},
		{"https://instagram.com/explore/tags/pickleball", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidURL(tt.url); got != tt.valid {
			t.Errorf("ValidURL(%q) = %v, want %v", tt.url, got, tt.valid)
		}
	}
}
