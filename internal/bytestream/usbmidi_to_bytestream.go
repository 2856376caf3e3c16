package bytestream

import "github.com/go-midi2/midi2core/internal/fifo"

// usbMIDI1ToBytesCapacity: one USB-MIDI event packet yields at most 3
// bytes (e.g. a CIN of 3, 8 or E).
const usbMIDI1ToBytesCapacity = 4

// cinByteCount maps a USB-MIDI 1.0 Code Index Number to the number of
// valid data bytes its event packet carries (USB Device Class
// Definition for MIDI Devices, Table 4-1).
var cinByteCount = [16]int{
	0x0: 0, 0x1: 0, 0x2: 2, 0x3: 3,
	0x4: 3, 0x5: 1, 0x6: 2, 0x7: 3,
	0x8: 3, 0x9: 3, 0xA: 3, 0xB: 3,
	0xC: 2, 0xD: 2, 0xE: 3, 0xF: 1,
}

// USBMIDI1ToBytes demultiplexes USB-MIDI 1.0 event packets into a
// legacy MIDI 1.0 byte stream, filtered to one cable number.
type USBMIDI1ToBytes struct {
	Cable uint8
	out   *fifo.FIFO[byte]
}

// NewUSBMIDI1ToBytes returns a translator passing through only packets
// addressed to cable.
func NewUSBMIDI1ToBytes(cable uint8) *USBMIDI1ToBytes {
	return &USBMIDI1ToBytes{Cable: cable, out: fifo.New[byte](usbMIDI1ToBytesCapacity)}
}

// Push feeds one 4-byte USB-MIDI event packet: (cable:4|CIN:4, b1, b2, b3).
func (u *USBMIDI1ToBytes) Push(header, b1, b2, b3 byte) {
	cable := header >> 4
	if cable != u.Cable {
		return
	}
	cin := header & 0x0F
	switch cinByteCount[cin] {
	case 1:
		u.out.PushBack(b1)
	case 2:
		u.out.PushBack(b1)
		u.out.PushBack(b2)
	case 3:
		u.out.PushBack(b1)
		u.out.PushBack(b2)
		u.out.PushBack(b3)
	}
}

// Pop drains one emitted legacy byte.
func (u *USBMIDI1ToBytes) Pop() (b byte, ok bool) {
	if u.out.Empty() {
		return 0, false
	}
	return u.out.PopFront(), true
}

// Empty reports whether the output queue has no pending bytes.
func (u *USBMIDI1ToBytes) Empty() bool { return u.out.Empty() }

// Reset empties the output queue (the translator is otherwise stateless).
func (u *USBMIDI1ToBytes) Reset() { u.out.Clear() }
