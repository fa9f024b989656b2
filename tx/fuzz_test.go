package tx

import (
	"bytes"
	"testing"
)

// FuzzDecodeNoPanic ensures Decode never panics on arbitrary input.
func FuzzDecodeNoPanic(f *testing.F) {
	trx := &Transaction{}
	if enc, err := trx.Encode(); err == nil {
		f.Add(enc)
	}
	f.Add([]byte{})
	f.Add([]byte{0xc0})
	f.Add([]byte{0xe7, 0x27, 0x14})
	f.Add(bytes.Repeat([]byte{0xff}, 64))

	f.Fuzz(func(t *testing.T, data []byte) {
		decoded, err := Decode(data)
		if err != nil {
			return
		}
		// Anything that decodes must re-encode without error.
		if _, err := decoded.Encode(); err != nil {
			t.Fatalf("re-encode of decoded tx failed: %v", err)
		}
	})
}
