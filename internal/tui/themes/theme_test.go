package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "catppuccin-mocha", want: "#cba6f7"},
		{name: "default", want: "#7c3aed"},
		{name: "", want: "#7c3aed"},
		{name: "unknown", want: "#7c3aed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(GetTheme(tt.name).Primary))
		})
	}
}
