package core

import (
	"strings"
	"testing"
)

func TestLocation(t *testing.T) {
	loc := Location(0)
	if !strings.HasPrefix(loc, "- [location_test.go:") {
		t.Errorf("Location(0) = %q, want prefix %q", loc, "- [location_test.go:")
	}
	if !strings.HasSuffix(loc, "] - ") {
		t.Errorf("Location(0) = %q, want suffix %q", loc, "] - ")
	}
}

func TestLocation_Unavailable(t *testing.T) {
	if got := Location(1 << 20); got != "" {
		t.Errorf("Location(huge) = %q, want empty", got)
	}
}

func TestFormatLocation(t *testing.T) {
	if got := FormatLocation("/src/app/main.go", 42); got != "- [main.go:42] - " {
		t.Errorf("FormatLocation() = %q", got)
	}
	if got := FormatLocation("", 1); got != "" {
		t.Errorf("FormatLocation(empty) = %q, want empty", got)
	}
}
