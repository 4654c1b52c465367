// path: reports/validate_test.go
package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIDNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"thirteen digits", "8001015009087", true},
		{"all zeros", "0000000000000", true},
		{"empty", "", false},
		{"twelve digits", "800101500908", false},
		{"fourteen digits", "80010150090871", false},
		{"letter inside", "80010150O9087", false},
		{"leading space", " 8001015009087", false},
		{"trailing space", "8001015009087 ", false},
		{"plus sign", "+001015009087", false},
		{"separators", "800101-500908", false},
		{"unicode digit", "８001015009087", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidIDNumber(tt.input))
		})
	}
}
