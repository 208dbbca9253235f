package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorToHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Emerald Green", "#50c878"},
		{"  RED ", "#ef4444"},
		{"Royal Purple", "#7851a9"},
		{"Deep Royal Purple", "#7851a9"},
		{"Pale Lavender Mist", "#e6e6fa"},
		{"Zümrüt", "#50c878"},
		{"Octarine", DefaultColorHex},
		{"", DefaultColorHex},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorToHex(tt.name), tt.name)
	}
}
