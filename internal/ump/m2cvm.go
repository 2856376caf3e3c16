package ump

import "github.com/go-midi2/midi2core/internal/bitfield"

// M2CVMMessage is a MT=0x4 two-word MIDI 2.0 Channel Voice Message. Not
// every field is meaningful for every Status; see DecodeM2CVM and Encode
// for the per-status field mapping (grounded in the legacy processor's
// case-by-case extraction).
type M2CVMMessage struct {
	Group   uint8
	Status  Status
	Channel uint8
	Note    uint8  // note_off/on, pitch_bend_pernote, key_pressure, per-note ctrl/mgmt
	Bank    uint8  // cc index (reused name for rpn/nrpn bank, note attribute type)
	Index   uint16 // note attribute data (16-bit) or rpn/nrpn/per-note index (7-bit) or pgm-change index
	Value   uint32
	Flag1   bool // note-on/off attribute-type-valid is implicit; flag1 = bank_valid (pgm change) or detach (pernote_manage)
	Flag2   bool // pernote_manage: reset
}

var (
	rangeM2Status  = bitfield.Range{Index: 20, Bits: 4}
	rangeM2Channel = bitfield.Range{Index: 16, Bits: 4}
	rangeM2Val1    = bitfield.Range{Index: 8, Bits: 8}
	rangeM2Val2    = bitfield.Range{Index: 0, Bits: 8}
)

// DecodeM2CVM decodes a two-word MIDI 2 channel voice message. words must
// have length 2.
func DecodeM2CVM(words [2]uint32) M2CVMMessage {
	w0, w1 := words[0], words[1]
	m := M2CVMMessage{
		Group:   group(w0),
		Status:  Status(bitfield.Get32(w0, rangeM2Status) << 4),
		Channel: uint8(bitfield.Get32(w0, rangeM2Channel)),
	}
	val1 := uint8(bitfield.Get32(w0, rangeM2Val1))
	val2 := uint8(bitfield.Get32(w0, rangeM2Val2))

	switch m.Status {
	case StatusNoteOff, StatusNoteOn:
		m.Note = val1
		m.Bank = val2
		m.Value = w1 >> 16
		m.Index = uint16(w1 & 0xFFFF)
	case StatusPitchBendPN, StatusKeyPressure:
		m.Note = val1
		m.Value = w1
	case StatusChanPressure:
		m.Value = w1
	case StatusCC:
		m.Bank = val1
		m.Value = w1
	case StatusRPN, StatusNRPN, StatusRPNRelative, StatusNRPNRelative:
		m.Bank = val1
		m.Index = uint16(val2)
		m.Value = w1
	case StatusProgramChange:
		m.Value = w1 >> 24
		m.Flag1 = w0&1 != 0
		m.Bank = uint8((w1 >> 8) & 0x7F)
		m.Index = uint16(w1 & 0x7F)
	case StatusPitchBend:
		m.Value = w1
	case StatusNRPNPerNote, StatusRPNPerNote:
		m.Note = val1
		m.Index = uint16(val2)
		m.Value = w1
	case StatusPerNoteManage:
		m.Note = val1
		m.Flag1 = val2&2 != 0
		m.Flag2 = val2&1 != 0
	}
	return m
}

// Encode packs m back into its two-word wire form.
func (m M2CVMMessage) Encode() [2]uint32 {
	w0 := bitfield.Set32(0, rangeMT, uint32(M2CVM))
	w0 = bitfield.Set32(w0, rangeGroup, uint32(m.Group))
	w0 = bitfield.Set32(w0, rangeM2Status, uint32(m.Status)>>4)
	w0 = bitfield.Set32(w0, rangeM2Channel, uint32(m.Channel))
	var w1 uint32

	switch m.Status {
	case StatusNoteOff, StatusNoteOn:
		w0 = bitfield.Set32(w0, rangeM2Val1, uint32(m.Note))
		w0 = bitfield.Set32(w0, rangeM2Val2, uint32(m.Bank))
		w1 = m.Value<<16 | uint32(m.Index)
	case StatusPitchBendPN, StatusKeyPressure:
		w0 = bitfield.Set32(w0, rangeM2Val1, uint32(m.Note))
		w1 = m.Value
	case StatusChanPressure:
		w1 = m.Value
	case StatusCC:
		w0 = bitfield.Set32(w0, rangeM2Val1, uint32(m.Bank))
		w1 = m.Value
	case StatusRPN, StatusNRPN, StatusRPNRelative, StatusNRPNRelative:
		w0 = bitfield.Set32(w0, rangeM2Val1, uint32(m.Bank))
		w0 = bitfield.Set32(w0, rangeM2Val2, uint32(m.Index))
		w1 = m.Value
	case StatusProgramChange:
		if m.Flag1 {
			w0 |= 1
		}
		w1 = m.Value<<24 | uint32(m.Bank&0x7F)<<8 | uint32(m.Index&0x7F)
	case StatusPitchBend:
		w1 = m.Value
	case StatusNRPNPerNote, StatusRPNPerNote:
		w0 = bitfield.Set32(w0, rangeM2Val1, uint32(m.Note))
		w0 = bitfield.Set32(w0, rangeM2Val2, uint32(m.Index))
		w1 = m.Value
	case StatusPerNoteManage:
		w0 = bitfield.Set32(w0, rangeM2Val1, uint32(m.Note))
		var flags uint32
		if m.Flag1 {
			flags |= 2
		}
		if m.Flag2 {
			flags |= 1
		}
		w0 = bitfield.Set32(w0, rangeM2Val2, flags)
	}
	return [2]uint32{w0, w1}
}
