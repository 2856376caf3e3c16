package scale_test

import (
	"testing"

	"github.com/go-midi2/midi2core/internal/scale"
	"github.com/stretchr/testify/assert"
)

func TestUpDownRoundTrip(t *testing.T) {
	t.Parallel()
	cases := []struct{ dst, src uint }{
		{dst: 7, src: 16},
		{dst: 7, src: 32},
		{dst: 14, src: 32},
		{dst: 8, src: 14},
	}
	for _, c := range cases {
		for w := uint32(0); w < uint32(1)<<c.dst; w++ {
			up := scale.Up(w, c.dst, c.src)
			down := scale.Down(up, c.src, c.dst)
			assert.Equalf(t, w, down, "dst=%d src=%d w=%d up=%d", c.dst, c.src, w, up)
		}
	}
}

func TestUpEndpointsAndMidpoint(t *testing.T) {
	t.Parallel()
	for _, srcDst := range [][2]uint{{7, 16}, {7, 32}, {14, 32}, {7, 8}} {
		src, dst := srcDst[0], srcDst[1]
		assert.Equal(t, uint32(0), scale.Up(0, src, dst))
		assert.Equal(t, uint32(1)<<dst-1, scale.Up(uint32(1)<<src-1, src, dst))
		assert.Equal(t, uint32(1)<<(dst-1), scale.Up(uint32(1)<<(src-1), src, dst))
	}
}

func TestVelocityClamp(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint32(1), scale.ClampVelocity(0))
	assert.Equal(t, uint32(42), scale.ClampVelocity(42))
}

func TestNoteOnVelocityZeroScalesToZero(t *testing.T) {
	t.Parallel()
	// A MIDI2 velocity of 0 must scale down to 0 before the clamp applies,
	// preserving the note-on(velocity=0) == note-off convention on the
	// bytestream side prior to the MIDI1 downgrade clamp.
	assert.Equal(t, uint32(0), scale.Down(0, 16, 7))
}
