// Package refcode generates human-friendly referral codes.
package refcode

import (
	"crypto/rand"
	"strings"
)

// Alphabet excludes 0, 1, I and O so codes survive being read aloud or retyped.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the number of symbols in a code.
const Length = 8

// Generate returns a random code. Uniqueness is the caller's problem.
func Generate() string {
	b := make([]byte, Length)
	if _, err := rand.Read(b); err != nil {
		panic("refcode: crypto/rand failed: " + err.Error())
	}
	out := make([]byte, Length)
	for i, v := range b {
		// len(Alphabet) == 32 divides 256, so masking keeps the draw uniform.
		out[i] = Alphabet[v&31]
	}
	return string(out)
}

// Normalize trims whitespace and uppercases a user-supplied code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether a normalized code has the shape Generate produces.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(Alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
