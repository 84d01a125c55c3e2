package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGOTPGenerator_RandomCode(t *testing.T) {
	gen := NewGOTPGenerator(4)

	for i := 0; i < 100; i++ {
		code := gen.RandomCode()

		assert.Len(t, code, 4)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestGOTPGenerator_DeterministicCounter(t *testing.T) {
	gen := NewGOTPGeneratorWithCounter(4, func() int { return 42 })

	first := gen.RandomCode()
	second := gen.RandomCode()

	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestGOTPGenerator_ConfigurableLength(t *testing.T) {
	gen := NewGOTPGenerator(6)

	assert.Len(t, gen.RandomCode(), 6)
}
