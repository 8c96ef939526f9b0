package rarity

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		count string
		want  string
	}{
		{"Production numbers not available.", "Unknown"},
		{"", "Unknown"},
		{"Only 39 were ever made", "Ultra Rare"},
		{"337 units", "Very Rare"},
		{"1,311 units", "Rare"},
		{"12,000 units", "Uncommon"},
		{"50,000,000 units", "Common"},
	}
	c := New()
	for _, tt := range tests {
		t.Run(tt.count, func(t *testing.T) {
			if got := c.Classify(tt.count); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.count, got, tt.want)
			}
		})
	}
}
