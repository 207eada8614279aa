package gui

import "testing"

func TestHealthColorThresholds(t *testing.T) {
	cases := []struct {
		health int
		want   string
	}{
		{100, "good"},
		{51, "good"},
		{50, "warn"},
		{21, "warn"},
		{20, "crit"}, // exactly 20 reads as critical, like the console theme
		{0, "crit"},
	}
	name := func(h int) string {
		switch healthColor(h) {
		case colHealthGood:
			return "good"
		case colHealthWarn:
			return "warn"
		case colHealthCrit:
			return "crit"
		default:
			return "unknown"
		}
	}
	for _, c := range cases {
		if got := name(c.health); got != c.want {
			t.Fatalf("healthColor(%d)=%s, want %s", c.health, got, c.want)
		}
	}
}

func TestTrimLastRuneHandlesMultiByte(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", ""},
		{"abc", "ab"},
		{"héro", "hér"},
		{"勇者", "勇"},
	}
	for _, c := range cases {
		if got := trimLastRune(c.in); got != c.want {
			t.Fatalf("trimLastRune(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}
