package otp

import (
	"math/rand"
	"sync"
	"time"

	"github.com/xlzd/gotp"
)

// Generator produces short-lived numeric verification codes.
type Generator interface {
	RandomCode() string
}

// GOTPGenerator derives codes from an HOTP chain over a random secret.
// HOTP output is decimal and zero-padded to the requested number of digits,
// so leading zeros survive. The counter source is injectable so tests can
// make code generation deterministic.
type GOTPGenerator struct {
	hotp *gotp.HOTP

	mu      sync.Mutex
	counter func() int
}

func NewGOTPGenerator(digits int) *GOTPGenerator {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewGOTPGeneratorWithCounter(digits, rnd.Int)
}

func NewGOTPGeneratorWithCounter(digits int, counter func() int) *GOTPGenerator {
	return &GOTPGenerator{
		hotp:    gotp.NewHOTP(gotp.RandomSecret(16), digits, nil),
		counter: counter,
	}
}

func (g *GOTPGenerator) RandomCode() string {
	g.mu.Lock()
	count := g.counter()
	g.mu.Unlock()

	return g.hotp.At(count)
}
