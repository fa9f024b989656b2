package abi

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeResult decodes the return data of a method call into one string per
// declared output: "0x"-prefixed 20-byte hex for address, minimal
// "0x"-prefixed hex for integers and bytesN, and "true"/"false" for bool.
// The data length must be exactly one 32-byte slot per output.
func DecodeResult(def *Definition, data []byte) ([]string, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil definition", ErrDecoding)
	}
	if len(data) != wordLength*len(def.Outputs) {
		return nil, fmt.Errorf("%w: method %q returns %d words, got %d bytes",
			ErrDecoding, def.Name, len(def.Outputs), len(data))
	}
	out := make([]string, 0, len(def.Outputs))
	for i, typ := range def.Outputs {
		word := data[i*wordLength : (i+1)*wordLength]
		v, err := decodeWord(typ, word)
		if err != nil {
			return nil, fmt.Errorf("%w: output %d of %q: %w", ErrDecoding, i, def.Name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeWord decodes a single 32-byte slot per its declared type.
func decodeWord(typ string, word []byte) (string, error) {
	switch {
	case typ == "address":
		return "0x" + hex.EncodeToString(word[wordLength-20:]), nil

	case typ == "bool":
		if word[wordLength-1] == 0 {
			return "false", nil
		}
		return "true", nil

	case isIntType(typ):
		trimmed := bytes.TrimLeft(word, "\x00")
		if len(trimmed) == 0 {
			return "0x0", nil
		}
		return "0x" + hex.EncodeToString(trimmed), nil

	case strings.HasPrefix(typ, "bytes") && len(typ) > len("bytes"):
		n := bytesTypeSize(typ)
		if n == 0 {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
		}
		return "0x" + hex.EncodeToString(word[:n]), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
	}
}
