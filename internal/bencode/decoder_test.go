package bencode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	var tests = []struct {
		name   string
		given  string
		assert func(t *testing.T, actual Value, err error)
	}{
		{
			name:  "positive integer",
			given: "i123e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(123), actual)
			},
		},
		{
			name:  "zero",
			given: "i0e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(0), actual)
			},
		},
		{
			name:  "negative integer",
			given: "i-111e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(-111), actual)
			},
		},
		{
			name:  "leading zeros fold numerically",
			given: "i0042e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(42), actual)
			},
		},
		{
			name:  "byte string",
			given: "4:spam",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, String("spam"), actual)
			},
		},
		{
			name:  "empty byte string",
			given: "0:",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, String(""), actual)
			},
		},
		{
			name:  "empty list",
			given: "le",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, List{}, actual)
			},
		},
		{
			name:  "list of integers keeps order",
			given: "li1ei2ei3ee",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, List{Integer(1), Integer(2), Integer(3)}, actual)
			},
		},
		{
			name:  "empty dictionary",
			given: "de",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Dict{}, actual)
			},
		},
		{
			name:  "flat dictionary",
			given: "d1:Ai1e1:Bi2ee",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Dict{"A": Integer(1), "B": Integer(2)}, actual)
			},
		},
		{
			name:  "duplicate dictionary key last write wins",
			given: "d1:Ai1e1:Ai2ee",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Dict{"A": Integer(2)}, actual)
			},
		},
		{
			name:  "nested containers",
			given: "d4:spaml4:infod2:hii7eeee",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Dict{"spam": List{String("info"), Dict{"hi": Integer(7)}}}, actual)
			},
		},
		{
			name:  "trailing bytes after the value are ignored",
			given: "i1etrailing garbage",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, err)
				assert.Equal(t, Integer(1), actual)
			},
		},
		{
			name:  "empty input",
			given: "",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var endErr *UnexpectedEndError
				if assert.ErrorAs(t, err, &endErr) {
					assert.Equal(t, 0, endErr.Offset)
				}
			},
		},
		{
			name:  "integer missing terminator",
			given: "i12",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var endErr *UnexpectedEndError
				assert.ErrorAs(t, err, &endErr)
			},
		},
		{
			name:  "integer without digits",
			given: "ie",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var digitErr *InvalidDigitError
				if assert.ErrorAs(t, err, &digitErr) {
					assert.Equal(t, byte('e'), digitErr.Found)
				}
			},
		},
		{
			name:  "negative integer without digits",
			given: "i-e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var digitErr *InvalidDigitError
				assert.ErrorAs(t, err, &digitErr)
			},
		},
		{
			name:  "byte string shorter than declared",
			given: "5:abc",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var truncErr *TruncatedStringError
				if assert.ErrorAs(t, err, &truncErr) {
					assert.Equal(t, int64(5), truncErr.Want)
					assert.Equal(t, 3, truncErr.Have)
				}
			},
		},
		{
			name:  "byte string missing colon",
			given: "4spam",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var delimErr *DelimiterError
				if assert.ErrorAs(t, err, &delimErr) {
					assert.Equal(t, byte(':'), delimErr.Want)
					assert.Equal(t, byte('s'), delimErr.Found)
				}
			},
		},
		{
			name:  "unknown lead byte",
			given: "x",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var prefixErr *InvalidPrefixError
				if assert.ErrorAs(t, err, &prefixErr) {
					assert.Equal(t, byte('x'), prefixErr.Found)
				}
			},
		},
		{
			name:  "unterminated list",
			given: "li1e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var endErr *UnexpectedEndError
				assert.ErrorAs(t, err, &endErr)
			},
		},
		{
			name:  "truncated list element is fatal, not end of list",
			given: "li12",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var endErr *UnexpectedEndError
				assert.ErrorAs(t, err, &endErr)
			},
		},
		{
			name:  "malformed list element is fatal, not end of list",
			given: "li1exe",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var prefixErr *InvalidPrefixError
				assert.ErrorAs(t, err, &prefixErr)
			},
		},
		{
			name:  "dictionary key must be a byte string",
			given: "di1ei2ee",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var digitErr *InvalidDigitError
				if assert.ErrorAs(t, err, &digitErr) {
					assert.Equal(t, byte('i'), digitErr.Found)
				}
			},
		},
		{
			name:  "dictionary missing value",
			given: "d1:A",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var endErr *UnexpectedEndError
				assert.ErrorAs(t, err, &endErr)
			},
		},
		{
			name:  "unterminated dictionary",
			given: "d1:Ai1e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.Nil(t, actual)
				var endErr *UnexpectedEndError
				assert.ErrorAs(t, err, &endErr)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Decode([]byte(tt.given))
			tt.assert(t, actual, err)
		})
	}
}

func TestDecodeIntegerRange(t *testing.T) {
	for _, n := range []int64{0, 1, 42, 1 << 40, 9223372036854775807} {
		actual, err := Decode([]byte(fmt.Sprintf("i%de", n)))
		assert.Nil(t, err)
		assert.Equal(t, Integer(n), actual)
	}
	for _, n := range []int64{1, 99, 1 << 40} {
		actual, err := Decode([]byte(fmt.Sprintf("i-%de", n)))
		assert.Nil(t, err)
		assert.Equal(t, Integer(-n), actual)
	}
}

func TestDecodeKeepsBinaryStrings(t *testing.T) {
	given := append([]byte("3:"), 0x00, 0xff, 0xfe)
	actual, err := Decode(given)
	assert.Nil(t, err)
	assert.Equal(t, String{0x00, 0xff, 0xfe}, actual)
}

func TestDecodeReturnsIndependentTree(t *testing.T) {
	given := []byte("4:spam")
	actual, err := Decode(given)
	assert.Nil(t, err)

	given[2] = 'X'
	assert.Equal(t, String("spam"), actual)
}
