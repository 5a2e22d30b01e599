package nls

import "testing"

func TestLocalize(t *testing.T) {
	tests := []struct {
		name string
		id   string
		args []any
		want string
	}{
		{
			name: "no substitution",
			id:   ConsoleTitle,
			want: "Debug Console",
		},
		{
			name: "single substitution",
			id:   ProgramNotFound,
			args: []any{"/usr/bin/gnome-terminal"},
			want: "'/usr/bin/gnome-terminal' not found on disk",
		},
		{
			name: "two substitutions",
			id:   ProgramFailed,
			args: []any{"/usr/bin/osascript", 2},
			want: "'/usr/bin/osascript' failed with exit code 2",
		},
		{
			name: "platform substitution",
			id:   NotImplemented,
			args: []any{"plan9"},
			want: "External console is not implemented on plan9.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Localize(tt.id, tt.args...); got != tt.want {
				t.Errorf("Localize(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
