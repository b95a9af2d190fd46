package bencode

import (
	"bytes"
	"strconv"
)

// Encode serializes a value tree back to its bencoded form. Dictionary
// keys are emitted in byte order, so the output is deterministic and
// Decode(Encode(v)) reproduces v.
func Encode(v Value) []byte {
	var buf bytes.Buffer
	encode(&buf, v)
	return buf.Bytes()
}

func encode(buf *bytes.Buffer, v Value) {
	switch v := v.(type) {
	case Integer:
		buf.WriteByte('i')
		buf.WriteString(strconv.FormatInt(int64(v), 10))
		buf.WriteByte('e')
	case String:
		buf.WriteString(strconv.Itoa(len(v)))
		buf.WriteByte(':')
		buf.Write(v)
	case List:
		buf.WriteByte('l')
		for _, elem := range v {
			encode(buf, elem)
		}
		buf.WriteByte('e')
	case Dict:
		buf.WriteByte('d')
		for _, key := range v.sortedKeys() {
			encode(buf, String(key))
			encode(buf, v[key])
		}
		buf.WriteByte('e')
	}
}
