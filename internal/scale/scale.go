// SPDX-License-Identifier: MIT
// Package scale implements the lossless resolution scaling mandated by
// the MIDI 2.0 specification (the "Min-Center-Max" bit-replication
// scheme) between 1/7/8/14/16/32-bit value domains.
package scale

// Up widens v, a src-bit value, to a dst-bit value (src <= dst <= 32) using
// the MIDI 2 Min-Center-Max scheme: shift left by dst-src, then, for values
// above the midpoint, fill the trailing bits by repeatedly OR-ing shifted
// copies of the bits of v below its most significant bit.
// Up(0, ...) is always 0, Up(2^src-1, ...) is always 2^dst-1, and the
// midpoint 1<<(src-1) always scales to 1<<(dst-1).
func Up(v uint32, src, dst uint) uint32 {
	if v == 0 {
		return 0
	}
	if src == 1 {
		return (uint32(1) << dst) - 1
	}

	scaleBits := dst - src
	shifted := v << scaleBits
	center := uint32(1) << (src - 1)
	if v <= center {
		return shifted
	}

	// Expanded bit-repeat scheme: the bits below the MSB of v are
	// replicated into the newly-opened low bits of the result so that the
	// maximum source value maps exactly to the maximum destination value.
	repeatBits := src - 1
	repeatMask := uint32(1)<<repeatBits - 1
	repeat := v & repeatMask
	if scaleBits > repeatBits {
		repeat <<= scaleBits - repeatBits
	} else {
		repeat >>= repeatBits - scaleBits
	}
	for repeat != 0 {
		shifted |= repeat
		repeat >>= repeatBits
	}
	return shifted
}

// Down narrows v, a src-bit value, down to a dst-bit value (dst <= src <=
// 32) by right-shifting away the low src-dst bits. For any w < 2^dst,
// Down(Up(w, dst, src), src, dst) == w.
func Down(v uint32, src, dst uint) uint32 {
	return v >> (src - dst)
}

// ClampVelocity enforces the MIDI 2 -> MIDI 1 note-on velocity rule: a
// velocity that scales down to zero is raised to 1 so that a note-on never
// turns into an implicit note-off.
func ClampVelocity(v7 uint32) uint32 {
	if v7 == 0 {
		return 1
	}
	return v7
}
