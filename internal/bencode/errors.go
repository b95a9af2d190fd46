package bencode

import "fmt"

// UnexpectedEndError reports input that ran out in the middle of a value.
type UnexpectedEndError struct {
	Offset int
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("bencode: unexpected end of input at offset %d", e.Offset)
}

// InvalidDigitError reports a malformed digit run where an integer or a
// byte-string length was expected.
type InvalidDigitError struct {
	Offset int
	Found  byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("bencode: invalid digit run at offset %d (found %q)", e.Offset, e.Found)
}

// DelimiterError reports a byte that did not match the delimiter the
// grammar required at that position.
type DelimiterError struct {
	Offset int
	Want   byte
	Found  byte
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("bencode: expected %q at offset %d, found %q", e.Want, e.Offset, e.Found)
}

// TruncatedStringError reports a byte string whose declared length exceeds
// the remaining input.
type TruncatedStringError struct {
	Offset int
	Want   int64
	Have   int
}

func (e *TruncatedStringError) Error() string {
	return fmt.Sprintf("bencode: byte string at offset %d declares %d bytes, only %d remain", e.Offset, e.Want, e.Have)
}

// InvalidPrefixError reports a byte that cannot start any bencoded value.
type InvalidPrefixError struct {
	Offset int
	Found  byte
}

func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("bencode: %q at offset %d does not start a value", e.Found, e.Offset)
}
