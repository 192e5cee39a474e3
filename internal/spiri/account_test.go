package spiri

import (
	"crypto/rand"
	"math/big"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAccountNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "short form with hyphens", raw: "160-5100-47", want: "160000000000510047"},
		{name: "already normalized", raw: "160000000000510047", want: "160000000000510047"},
		{name: "full form with hyphens", raw: "205-0000000012345-67", want: "205000000001234567"},
		{name: "absent account", raw: "", want: "000000000000000000"},
		{name: "prefix only", raw: "840", want: "840000000000000000"},
		{name: "shorter than prefix", raw: "84", want: "84000000000000000"},
		{name: "long remainder is not truncated", raw: "1234567890123456789012", want: "1234567890123456789012"},
		{name: "hyphen inside prefix is kept", raw: "1-2345", want: "1-2000000000000345"},
		{name: "non ascii counted by character", raw: "ŠĐČ-12", want: "ŠĐČ000000000000012"},
		{name: "plus sign stays in front", raw: "160+12", want: "160+00000000000012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAccountNumber(tt.raw))
		})
	}
}

// randomAccount builds an account of digits and hyphens.
func randomAccount(t *testing.T) string {
	t.Helper()
	n, err := rand.Int(rand.Reader, big.NewInt(20))
	require.NoError(t, err)
	length := int(n.Int64()) + 4

	var b strings.Builder
	for i := 0; i < length; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(11))
		require.NoError(t, err)
		if d.Int64() == 10 {
			b.WriteByte('-')
		} else {
			b.WriteByte(byte('0' + d.Int64()))
		}
	}
	return b.String()
}

func TestNormalizeAccountNumber_Properties(t *testing.T) {
	for i := 0; i < 200; i++ {
		raw := randomAccount(t)
		got := NormalizeAccountNumber(raw)

		prefix := raw[:3]
		body := strings.ReplaceAll(raw[3:], "-", "")

		assert.True(t, strings.HasPrefix(got, prefix), "prefix kept for %q", raw)
		assert.NotContains(t, got[3:], "-", "remainder hyphen-free for %q", raw)
		assert.True(t, strings.HasSuffix(got, body), "digits kept for %q", raw)
		assert.Equal(t, max(15, len(body)), utf8.RuneCountInString(got)-3, "width for %q", raw)
		assert.Equal(t, got, NormalizeAccountNumber(got), "idempotent for %q", raw)
	}
}
