package ump

import "github.com/go-midi2/midi2core/internal/bitfield"

// M1CVMMessage is a MT=0x2 one-word MIDI 1.0 Channel Voice Message. Data1
// and Data2 are the raw 7-bit operand bytes; use the named accessors to
// read them with the meaning appropriate to Status (pitch bend packs
// Data1/Data2 into one 14-bit value, program change and channel pressure
// use only Data1).
type M1CVMMessage struct {
	Group   uint8
	Status  Status
	Channel uint8
	Data1   uint8
	Data2   uint8
}

var (
	rangeM1Status  = bitfield.Range{Index: 20, Bits: 4}
	rangeM1Channel = bitfield.Range{Index: 16, Bits: 4}
	rangeM1Data1   = bitfield.Range{Index: 8, Bits: 7}
	rangeM1Data2   = bitfield.Range{Index: 0, Bits: 7}
)

func DecodeM1CVM(word0 uint32) M1CVMMessage {
	return M1CVMMessage{
		Group:   group(word0),
		Status:  Status(bitfield.Get32(word0, rangeM1Status) << 4),
		Channel: uint8(bitfield.Get32(word0, rangeM1Channel)),
		Data1:   uint8(bitfield.Get32(word0, rangeM1Data1)),
		Data2:   uint8(bitfield.Get32(word0, rangeM1Data2)),
	}
}

func (m M1CVMMessage) Encode() uint32 {
	w := bitfield.Set32(0, rangeMT, uint32(M1CVM))
	w = bitfield.Set32(w, rangeGroup, uint32(m.Group))
	w = bitfield.Set32(w, rangeM1Status, uint32(m.Status)>>4)
	w = bitfield.Set32(w, rangeM1Channel, uint32(m.Channel))
	w = bitfield.Set32(w, rangeM1Data1, uint32(m.Data1))
	w = bitfield.Set32(w, rangeM1Data2, uint32(m.Data2))
	return w
}

// PitchBend14 reassembles Data1 (LSB)/Data2 (MSB) into the 14-bit pitch
// bend value used when Status == StatusPitchBend.
func (m M1CVMMessage) PitchBend14() uint16 {
	return uint16(m.Data1) | uint16(m.Data2)<<7
}

// WithPitchBend14 returns m with Data1/Data2 set from a 14-bit pitch bend
// value.
func (m M1CVMMessage) WithPitchBend14(v uint16) M1CVMMessage {
	m.Data1 = uint8(v & 0x7F)
	m.Data2 = uint8((v >> 7) & 0x7F)
	return m
}
