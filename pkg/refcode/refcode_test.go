package refcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		code := Generate()
		require.Len(t, code, Length)
		require.True(t, Valid(code), "generated code %q is not valid", code)
		for _, bad := range "01IO" {
			require.False(t, strings.ContainsRune(code, bad), "code %q contains %q", code, bad)
		}
		seen[code] = struct{}{}
	}
	// 32^8 possibilities; a thousand draws should not collide in practice.
	assert.Greater(t, len(seen), 990)
}

func TestGenerateCoversAlphabet(t *testing.T) {
	counts := make(map[byte]int)
	for i := 0; i < 2000; i++ {
		code := Generate()
		for j := 0; j < len(code); j++ {
			counts[code[j]]++
		}
	}
	assert.Len(t, counts, len(Alphabet))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ABCD2345", Normalize("  abcd2345\n"))
	assert.Equal(t, "", Normalize("   "))
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "ok", code: "ABCD2345", want: true},
		{name: "too short", code: "ABC", want: false},
		{name: "too long", code: "ABCD23456", want: false},
		{name: "ambiguous zero", code: "ABCD2340", want: false},
		{name: "ambiguous letter O", code: "OBCD2345", want: false},
		{name: "lowercase", code: "abcd2345", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.code))
		})
	}
}
