package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty path", path: "", want: ""},
		{name: "tilde prefix", path: "~/data/app.db", want: filepath.Join(home, "data/app.db")},
		{name: "bare tilde", path: "~", want: home},
		{name: "plain path untouched", path: "/var/lib/app.db", want: "/var/lib/app.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/paisawatch/paisawatch.db", DefaultDatabasePath())

	t.Setenv("XDG_DATA_HOME", "")
	assert.Contains(t, DefaultDatabasePath(), "paisawatch.db")
}
