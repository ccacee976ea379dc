package util

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FPGA ML Accelerator", "fpga-ml-accelerator"},
		{"Neural Network Processor", "neural-network-processor"},
		{"  spaced   out  ", "spaced-out"},
		{"Power Management IC (v2)!", "power-management-ic-v2"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "January 15, 2023" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("zero time should format empty, got %q", got)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 << 20, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string should pass through, got %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello…" {
		t.Errorf("Truncate = %q", got)
	}
}
