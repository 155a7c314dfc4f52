package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("PAYDECE_TEST_DIR", "/tmp/exports")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/exports", filepath.Join(home, "exports")},
		{"$PAYDECE_TEST_DIR/csv", "/tmp/exports/csv"},
		{"./relative", "./relative"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
