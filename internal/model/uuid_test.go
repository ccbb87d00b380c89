package model

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParsePlayerUUID(t *testing.T) {
	type testCase struct {
		name   string
		raw    string
		expect error
	}

	testCases := []testCase{
		{
			name:   "canonical hyphenated uuid",
			raw:    "d1c8b6e2-5f44-4a3c-9b0a-7d2f61e9a8b3",
			expect: nil,
		},
		{
			name:   "uppercase hex is accepted",
			raw:    "D1C8B6E2-5F44-4A3C-9B0A-7D2F61E9A8B3",
			expect: nil,
		},
		{
			name: "identity is not parsed, only validated",
			// not a valid RFC 4122 layout, but 36 ASCII characters
			raw:    "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",
			expect: nil,
		},
		{
			name:   "unhyphenated is too short",
			raw:    "d1c8b6e25f444a3c9b0a7d2f61e9a8b3",
			expect: ErrUUIDLength,
		},
		{
			name:   "empty",
			raw:    "",
			expect: ErrUUIDLength,
		},
		{
			name:   "one character short",
			raw:    strings.Repeat("a", 35),
			expect: ErrUUIDLength,
		},
		{
			name:   "one character long",
			raw:    strings.Repeat("a", 37),
			expect: ErrUUIDLength,
		},
		{
			name:   "non-ascii at 36 runes still fails encoding first",
			raw:    strings.Repeat("あ", 36),
			expect: ErrUUIDNotASCII,
		},
		{
			name:   "single non-ascii byte",
			raw:    "d1c8b6e2-5f44-4a3c-9b0a-7d2f61e9a8bé",
			expect: ErrUUIDNotASCII,
		},
		{
			name:   "non-ascii in a wrong-length string wins over length",
			raw:    "é",
			expect: ErrUUIDNotASCII,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uuid, err := ParsePlayerUUID(tc.raw)
			if tc.expect == nil {
				assert.NoError(t, err)
				assert.Equal(t, tc.raw, uuid.String())
				return
			}
			assert.Truef(t, errors.Is(err, tc.expect), "expected %v in chain of %v", tc.expect, spew.Sdump(err))
		})
	}
}

func TestParsePlayerUUIDRandomizedASCII(t *testing.T) {
	// printable ASCII only, so the encoding check can never trip
	r := rand.New(rand.NewSource(20230814))

	for i := 0; i < 1000; i++ {
		b := make([]byte, 36)
		for j := range b {
			b[j] = byte(0x20 + r.Intn(0x5f))
		}

		uuid, err := ParsePlayerUUID(string(b))
		assert.NoError(t, err)
		assert.Equal(t, string(b), uuid.String())
	}
}
