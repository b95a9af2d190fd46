package bencode

import "strconv"

// Decode parses exactly one bencoded value from the front of input and
// returns it as an owned tree sharing no memory with input. Trailing bytes
// after the value are not inspected. Malformed input is reported through
// one of the typed errors in this package; Decode never panics on bad
// bytes.
func Decode(input []byte) (Value, error) {
	d := &decoder{buf: input}
	return d.value()
}

// decoder is a cursor over the input buffer. There is no backtracking: the
// cursor only ever moves forward, and any production that fails aborts the
// whole parse.
type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) peek() (byte, bool) {
	if d.pos >= len(d.buf) {
		return 0, false
	}
	return d.buf[d.pos], true
}

// expect consumes want or fails with a delimiter mismatch.
func (d *decoder) expect(want byte) error {
	found, ok := d.peek()
	if !ok {
		return &UnexpectedEndError{Offset: d.pos}
	}
	if found != want {
		return &DelimiterError{Offset: d.pos, Want: want, Found: found}
	}
	d.pos++
	return nil
}

// value dispatches on the lead byte: 'i' integer, 'l' list, 'd' dictionary,
// ASCII digit byte string.
func (d *decoder) value() (Value, error) {
	lead, ok := d.peek()
	if !ok {
		return nil, &UnexpectedEndError{Offset: d.pos}
	}
	switch {
	case lead == 'i':
		return d.integer()
	case lead == 'l':
		return d.list()
	case lead == 'd':
		return d.dict()
	case lead >= '0' && lead <= '9':
		s, err := d.byteString()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, &InvalidPrefixError{Offset: d.pos, Found: lead}
	}
}

// digits consumes a run of one or more ASCII digits and returns its
// numeric value. Leading zeros are folded numerically, not rejected.
func (d *decoder) digits() (int64, error) {
	start := d.pos
	for {
		b, ok := d.peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		d.pos++
	}
	if d.pos == start {
		b, ok := d.peek()
		if !ok {
			return 0, &UnexpectedEndError{Offset: d.pos}
		}
		return 0, &InvalidDigitError{Offset: d.pos, Found: b}
	}
	n, err := strconv.ParseInt(string(d.buf[start:d.pos]), 10, 64)
	if err != nil {
		// the run is all digits, so this only fires on int64 overflow
		return 0, &InvalidDigitError{Offset: start, Found: d.buf[start]}
	}
	return n, nil
}

// integer parses "i" [ "-" ] digits "e".
func (d *decoder) integer() (Value, error) {
	if err := d.expect('i'); err != nil {
		return nil, err
	}
	negative := false
	if b, ok := d.peek(); ok && b == '-' {
		negative = true
		d.pos++
	}
	n, err := d.digits()
	if err != nil {
		return nil, err
	}
	if negative {
		n = -n
	}
	if err := d.expect('e'); err != nil {
		return nil, err
	}
	return Integer(n), nil
}

// byteString parses digits ":" followed by exactly that many raw bytes.
func (d *decoder) byteString() (String, error) {
	start := d.pos
	length, err := d.digits()
	if err != nil {
		return nil, err
	}
	if err := d.expect(':'); err != nil {
		return nil, err
	}
	remaining := len(d.buf) - d.pos
	if int64(remaining) < length {
		return nil, &TruncatedStringError{Offset: start, Want: length, Have: remaining}
	}
	s := make(String, length)
	copy(s, d.buf[d.pos:d.pos+int(length)])
	d.pos += int(length)
	return s, nil
}

// list parses "l" value* "e", preserving element order.
//
// The body loop peeks for the terminator before attempting each element,
// so a failure inside an element is always fatal and never mistaken for
// the end of the container.
func (d *decoder) list() (Value, error) {
	if err := d.expect('l'); err != nil {
		return nil, err
	}
	list := List{}
	for {
		b, ok := d.peek()
		if !ok {
			return nil, &UnexpectedEndError{Offset: d.pos}
		}
		if b == 'e' {
			d.pos++
			return list, nil
		}
		elem, err := d.value()
		if err != nil {
			return nil, err
		}
		list = append(list, elem)
	}
}

// dict parses "d" (byte-string value)* "e". A duplicate key overwrites the
// earlier entry, map semantics. Same peek-first termination as list.
func (d *decoder) dict() (Value, error) {
	if err := d.expect('d'); err != nil {
		return nil, err
	}
	dict := Dict{}
	for {
		b, ok := d.peek()
		if !ok {
			return nil, &UnexpectedEndError{Offset: d.pos}
		}
		if b == 'e' {
			d.pos++
			return dict, nil
		}
		key, err := d.byteString()
		if err != nil {
			return nil, err
		}
		val, err := d.value()
		if err != nil {
			return nil, err
		}
		dict[string(key)] = val
	}
}
