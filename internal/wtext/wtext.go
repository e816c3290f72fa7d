// Package wtext converts between UTF-16 code units — this codec's
// representation of WTEXT, the closest portable Go analogue of a wide
// string — and the UTF-8 bytes WTEXT actually travels as on the wire.
package wtext

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var codec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

var (
	errUnpairedSurrogate = errors.New("wtext: unpaired UTF-16 surrogate")
	errInvalidUTF8       = errors.New("wtext: invalid UTF-8")
)

// ToUTF8 converts UTF-16 code units to a UTF-8 string. A fresh decoder is
// constructed per call: transform.Transformer carries mutable internal
// state, and param.Set/result.Set instances are usable concurrently from
// different goroutines, so a shared package-level decoder would race.
func ToUTF8(units []uint16) (string, error) {
	for i := 0; i < len(units); i++ {
		if utf16.IsSurrogate(rune(units[i])) {
			if i+1 == len(units) || utf16.DecodeRune(rune(units[i]), rune(units[i+1])) == utf8.RuneError {
				return "", errUnpairedSurrogate
			}
			i++
		}
	}
	raw := make([]byte, len(units)*2)
	for i, u := range units {
		binary.BigEndian.PutUint16(raw[i*2:], u)
	}
	out, _, err := transform.Bytes(codec.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// FromUTF8 converts UTF-8 bytes to UTF-16 code units. A fresh encoder is
// constructed per call for the same reason ToUTF8 constructs a fresh
// decoder.
func FromUTF8(s string) ([]uint16, error) {
	if !utf8.ValidString(s) {
		return nil, errInvalidUTF8
	}
	raw, _, err := transform.Bytes(codec.NewEncoder(), []byte(s))
	if err != nil {
		return nil, err
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(raw[i*2:])
	}
	return units, nil
}
