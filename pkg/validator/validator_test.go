package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid", "+998901234567", true},
		{"valid leading zero subscriber", "+998900000000", true},
		{"missing plus", "998901234567", false},
		{"wrong country code", "+997901234567", false},
		{"too short", "+99890123456", false},
		{"too long", "+9989012345678", false},
		{"letters", "+99890123456a", false},
		{"trailing garbage", "+998901234567x", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhoneNumber(tt.value))
		})
	}
}
