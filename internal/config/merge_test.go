package config

import "testing"

func TestApply(t *testing.T) {
	base := Config{FileChooser: FileChooser{Command: "/default/cmd", DefaultDirectory: "/tmp"}}
	cases := []struct {
		name        string
		section     string
		key         string
		value       string
		wantHandled bool
		want        FileChooser
	}{
		{"cmd", "filechooser", "cmd", "/bin/x", true, FileChooser{"/bin/x", "/tmp"}},
		{"command alias", "filechooser", "command", "~/x", true, FileChooser{"/home/u/x", "/tmp"}},
		{"default_dir", "filechooser", "default_dir", "~/Pictures", true, FileChooser{"/default/cmd", "/home/u/Pictures"}},
		{"empty value", "filechooser", "default_dir", "", true, base.FileChooser},
		{"unknown key", "filechooser", "theme", "dark", false, base.FileChooser},
		{"other section", "screencast", "cmd", "/bin/x", false, base.FileChooser},
		{"no section", "", "cmd", "/bin/x", false, base.FileChooser},
		{"section is case sensitive", "FileChooser", "cmd", "/bin/x", false, base.FileChooser},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			got := cfg.Apply(tc.section, tc.key, tc.value, "/home/u")
			if got != tc.wantHandled {
				t.Fatalf("Apply handled = %v, want %v", got, tc.wantHandled)
			}
			if cfg.FileChooser != tc.want {
				t.Fatalf("FileChooser = %#v, want %#v", cfg.FileChooser, tc.want)
			}
		})
	}
}
