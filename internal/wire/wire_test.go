package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt16RoundTrip(t *testing.T) {
	for _, v := range []int16{0, 1, -1, -1413, 32767, -32768} {
		assert.Equal(t, v, DecodeInt16(EncodeInt16(v)))
	}
}

func TestInt16KnownBytes(t *testing.T) {
	assert.Equal(t, []byte{0xFA, 0x7B}, EncodeInt16(-1413))
}

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 123342945, 1<<31 - 1, -(1 << 31)} {
		assert.Equal(t, v, DecodeInt32(EncodeInt32(v)))
	}
}

func TestInt32KnownBytes(t *testing.T) {
	assert.Equal(t, []byte{0x07, 0x5A, 0x33, 0xA1}, EncodeInt32(123342945))
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1 << 40, -(1 << 40)} {
		assert.Equal(t, v, DecodeInt64(EncodeInt64(v)))
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 3.1415, -2.71828} {
		assert.Equal(t, v, DecodeFloat32(EncodeFloat32(v)))
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.14159265358979, -2.718281828} {
		assert.Equal(t, v, DecodeFloat64(EncodeFloat64(v)))
	}
}

func TestHeaderFieldRoundTrip(t *testing.T) {
	assert.Equal(t, int32(1), DecodeHeaderField(EncodeHeaderField(1)))
}
