package abi

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// wordLength is the slot size of static ABI encoding.
const wordLength = 32

var (
	intTypePattern   = regexp.MustCompile(`^u?int([1-9][0-9]*)?$`)
	bytesTypePattern = regexp.MustCompile(`^bytes([1-9][0-9]?)$`)
)

// isIntType reports whether typ is an integer type of a valid width:
// 8 to 256 in steps of 8, or no width (an alias for 256).
func isIntType(typ string) bool {
	m := intTypePattern.FindStringSubmatch(typ)
	if m == nil {
		return false
	}
	if m[1] == "" {
		return true
	}
	w, err := strconv.Atoi(m[1])
	return err == nil && w >= 8 && w <= 256 && w%8 == 0
}

// bytesTypeSize returns the N of a fixed bytesN type, or 0 if typ is not
// one.
func bytesTypeSize(typ string) int {
	m := bytesTypePattern.FindStringSubmatch(typ)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > wordLength {
		return 0
	}
	return n
}

// EncodeCall produces call data for a method: the 4-byte selector followed
// by one 32-byte slot per argument. Arguments are supplied as strings:
// hex ("0x"-prefix optional) for address, integer and bytesN parameters,
// and "true"/"false"/"0x01"/"0x00" for bool parameters.
//
// Only the static subset of the ABI is supported; a dynamic parameter type
// yields ErrUnsupportedType.
func EncodeCall(def *Definition, args ...string) ([]byte, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil definition", ErrEncoding)
	}
	if len(args) != len(def.Inputs) {
		return nil, fmt.Errorf("%w: method %q takes %d arguments, got %d",
			ErrEncoding, def.Name, len(def.Inputs), len(args))
	}
	data := make([]byte, 0, SelectorLength+wordLength*len(args))
	data = append(data, def.Selector()...)
	for i, typ := range def.Inputs {
		word, err := encodeWord(typ, args[i])
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d of %q: %w", ErrEncoding, i, def.Name, err)
		}
		data = append(data, word...)
	}
	return data, nil
}

// encodeWord encodes a single argument into its 32-byte slot.
func encodeWord(typ, arg string) ([]byte, error) {
	switch {
	case typ == "address":
		b, err := hexArg(arg)
		if err != nil {
			return nil, err
		}
		if len(b) != 20 {
			return nil, fmt.Errorf("address must be 20 bytes, got %d", len(b))
		}
		return leftPad(b), nil

	case typ == "bool":
		switch strings.ToLower(arg) {
		case "true", "0x01", "0x1":
			return leftPad([]byte{1}), nil
		case "false", "0x00", "0x0", "0x":
			return leftPad(nil), nil
		}
		return nil, fmt.Errorf("bool must be true/false or 0x01/0x00, got %q", arg)

	case isIntType(typ):
		b, err := hexArg(arg)
		if err != nil {
			return nil, err
		}
		if len(b) > wordLength {
			return nil, fmt.Errorf("integer value overflows 32 bytes")
		}
		return leftPad(b), nil

	case strings.HasPrefix(typ, "bytes") && len(typ) > len("bytes"):
		n := bytesTypeSize(typ)
		if n == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
		}
		b, err := hexArg(arg)
		if err != nil {
			return nil, err
		}
		if len(b) != n {
			return nil, fmt.Errorf("%s must be %d bytes, got %d", typ, n, len(b))
		}
		return rightPad(b), nil

	default:
		// string, bytes, arrays and tuples are dynamic types.
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
	}
}

// hexArg decodes a hex argument string, tolerating a "0x" prefix and odd
// digit counts.
func hexArg(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("not a hex string: %w", err)
	}
	return b, nil
}

func leftPad(b []byte) []byte {
	word := make([]byte, wordLength)
	copy(word[wordLength-len(b):], b)
	return word
}

func rightPad(b []byte) []byte {
	word := make([]byte, wordLength)
	copy(word, b)
	return word
}
