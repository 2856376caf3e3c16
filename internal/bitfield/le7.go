package bitfield

import "fmt"

// ErrInvalidEncoding is returned by the 7-bit little-endian decoders when an
// input byte has its top bit set, which is never valid in well-formed MIDI
// SysEx (every payload byte is 7-bit-safe).
var ErrInvalidEncoding = fmt.Errorf("bitfield: invalid 7-bit encoding (byte with bit 7 set)")

// ToLE7 emits the low 28 bits of v as four 7-bit-safe bytes, least
// significant byte first.
func ToLE7(v uint32) [4]byte {
	return [4]byte{
		byte(v & 0x7F),
		byte((v >> 7) & 0x7F),
		byte((v >> 14) & 0x7F),
		byte((v >> 21) & 0x7F),
	}
}

// FromLE7 is the inverse of ToLE7. It returns ErrInvalidEncoding if any of
// the four bytes has bit 7 set.
func FromLE7(b [4]byte) (uint32, error) {
	for _, x := range b {
		if x&0x80 != 0 {
			return 0, ErrInvalidEncoding
		}
	}
	return uint32(b[0]) | uint32(b[1])<<7 | uint32(b[2])<<14 | uint32(b[3])<<21, nil
}

// ToLE7Slice encodes v into dst[:4] the same way as ToLE7 but writing
// directly into a caller-supplied slice (dst must have length >= 4).
func ToLE7Slice(dst []byte, v uint32) {
	b := ToLE7(v)
	copy(dst, b[:])
}

// FromLE7Slice is FromLE7 reading from a slice (src must have length >= 4).
func FromLE7Slice(src []byte) (uint32, error) {
	var b [4]byte
	copy(b[:], src[:4])
	return FromLE7(b)
}

// ToLE7x2 emits the low 14 bits of v as two 7-bit-safe bytes, least
// significant byte first (used for 14-bit fields such as profile counts).
func ToLE7x2(v uint16) [2]byte {
	return [2]byte{byte(v & 0x7F), byte((v >> 7) & 0x7F)}
}

// FromLE7x2 is the inverse of ToLE7x2.
func FromLE7x2(b [2]byte) (uint16, error) {
	if b[0]&0x80 != 0 || b[1]&0x80 != 0 {
		return 0, ErrInvalidEncoding
	}
	return uint16(b[0]) | uint16(b[1])<<7, nil
}
