package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"strips markup", `<script>alert("x")</script>`, 0, "scriptalert(x)/script"},
		{"trims", "   mario  ", 0, "mario"},
		{"truncates runes", "ñandú", 3, "ñan"},
		{"keeps ordinary punctuation", "Pac-Man: 1980!", 0, "Pac-Man: 1980!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Input(tt.in, tt.max))
		})
	}
}

func TestInput_DefaultLength(t *testing.T) {
	got := Input(strings.Repeat("a", 250), 0)
	assert.Len(t, got, DefaultMaxLength)
}
