package value

import (
	"math/rand"
	"strings"
	"time"
)

const (
	RandomLowercaseAlpha    = "abcdefghijklmnopqrstuvwxyz"
	RandomLowercaseAlphaNum = "abcdefghijklmnopqrstuvwxyz0123456789"
	RandomHex               = "0123456789abcdef"
)

var Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// Random draws number characters from the given charset. Used for run
// identifiers, not for anything security sensitive.
func Random(characters string, number int) *string {
	var generated strings.Builder
	for range number {
		random := Rand.Intn(len(characters))
		generated.WriteByte(characters[random])
	}

	var str = generated.String()
	return &str
}
