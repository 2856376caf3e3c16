package bitfield_test

import (
	"testing"

	"github.com/go-midi2/midi2core/internal/bitfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	t.Parallel()
	r := bitfield.Range{Index: 4, Bits: 8}
	var v uint64
	for value := uint64(0); value <= 0xFF; value++ {
		v = bitfield.Set(0, r, value)
		assert.Equal(t, value, bitfield.Get(v, r))
	}
}

func TestSetDoesNotDisturbOtherFields(t *testing.T) {
	t.Parallel()
	low := bitfield.Range{Index: 0, Bits: 4}
	high := bitfield.Range{Index: 4, Bits: 4}

	v := bitfield.Set(0, low, 0xA)
	v = bitfield.Set(v, high, 0x5)

	assert.Equal(t, uint64(0xA), bitfield.Get(v, low))
	assert.Equal(t, uint64(0x5), bitfield.Get(v, high))
}

func TestSetPanicsOnOutOfRangeValue(t *testing.T) {
	t.Parallel()
	r := bitfield.Range{Index: 0, Bits: 4}
	assert.Panics(t, func() { bitfield.Set(0, r, 16) })
}

func TestSetSignedGetSignedRoundTrip(t *testing.T) {
	t.Parallel()
	r := bitfield.Range{Index: 0, Bits: 8}
	for value := int64(-128); value <= 127; value++ {
		v := bitfield.SetSigned(0, r, value)
		assert.Equal(t, value, bitfield.GetSigned(v, r))
	}
}

func TestSetSignedPanicsOutOfRange(t *testing.T) {
	t.Parallel()
	r := bitfield.Range{Index: 0, Bits: 4} // [-8,7]
	assert.Panics(t, func() { bitfield.SetSigned(0, r, 8) })
	assert.Panics(t, func() { bitfield.SetSigned(0, r, -9) })
}

func TestLE7RoundTrip(t *testing.T) {
	t.Parallel()
	for _, v := range []uint32{0, 1, 0x0FFFFFFF, 0x12345, 0x7F7F7F7} {
		enc := bitfield.ToLE7(v)
		dec, err := bitfield.FromLE7(enc)
		require.NoError(t, err)
		assert.Equal(t, v, dec)
	}
}

func TestLE7RejectsHighBit(t *testing.T) {
	t.Parallel()
	_, err := bitfield.FromLE7([4]byte{0x80, 0, 0, 0})
	require.ErrorIs(t, err, bitfield.ErrInvalidEncoding)
}

func TestLE7x2RoundTrip(t *testing.T) {
	t.Parallel()
	for _, v := range []uint16{0, 1, 0x3FFF, 0x2EEB & 0x3FFF} {
		enc := bitfield.ToLE7x2(v)
		dec, err := bitfield.FromLE7x2(enc)
		require.NoError(t, err)
		assert.Equal(t, v, dec)
	}
}

func TestLE7x2RejectsHighBit(t *testing.T) {
	t.Parallel()
	_, err := bitfield.FromLE7x2([2]byte{0x80, 0})
	require.ErrorIs(t, err, bitfield.ErrInvalidEncoding)
}
