package config

import "testing"

func TestExpandHome(t *testing.T) {
	cases := []struct {
		name  string
		value string
		home  string
		want  string
	}{
		{"absolute", "/usr/bin/chooser", "/home/u", "/usr/bin/chooser"},
		{"relative", "bin/chooser", "/home/u", "bin/chooser"},
		{"tilde slash", "~/Pictures", "/home/u", "/home/u/Pictures"},
		{"tilde name", "~Pictures", "/home/u", "/home/uPictures"},
		{"bare tilde", "~", "/home/u", "~"},
		{"no home", "~/Pictures", "", "~/Pictures"},
		{"tilde inside", "/a/~/b", "/home/u", "/a/~/b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExpandHome(tc.value, tc.home); got != tc.want {
				t.Fatalf("ExpandHome(%q, %q) = %q, want %q", tc.value, tc.home, got, tc.want)
			}
		})
	}
}

func TestSetPath_EmptyValueLeavesDestination(t *testing.T) {
	dst := "/tmp"
	if setPath(&dst, "", "/home/u") {
		t.Fatalf("setPath reported an override for an empty value")
	}
	if dst != "/tmp" {
		t.Fatalf("dst = %q, want %q", dst, "/tmp")
	}
}

func TestSetPath_ReplacesDestination(t *testing.T) {
	dst := "/tmp"
	if !setPath(&dst, "~/Downloads", "/home/u") {
		t.Fatalf("setPath reported no override")
	}
	if dst != "/home/u/Downloads" {
		t.Fatalf("dst = %q, want %q", dst, "/home/u/Downloads")
	}

	if !setPath(&dst, "/srv/share", "/home/u") {
		t.Fatalf("setPath reported no override")
	}
	if dst != "/srv/share" {
		t.Fatalf("dst = %q, want %q", dst, "/srv/share")
	}
}
