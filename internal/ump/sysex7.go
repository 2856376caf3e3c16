package ump

import "github.com/go-midi2/midi2core/internal/bitfield"

// SysEx7Message is a MT=0x3 two-word packet carrying up to six 7-bit
// SysEx data bytes plus a reassembly Form tag.
type SysEx7Message struct {
	Group      uint8
	Form       SysEx7Form
	DataLength uint8 // 0-6
	Data       [6]byte
}

var (
	rangeSXForm   = bitfield.Range{Index: 20, Bits: 4}
	rangeSXLen    = bitfield.Range{Index: 16, Bits: 4}
	rangeSXByte0  = bitfield.Range{Index: 8, Bits: 7}
	rangeSXByte1  = bitfield.Range{Index: 0, Bits: 7}
	rangeSXByte2  = bitfield.Range{Index: 24, Bits: 7}
	rangeSXByte3  = bitfield.Range{Index: 16, Bits: 7}
	rangeSXByte4  = bitfield.Range{Index: 8, Bits: 7}
	rangeSXByte5  = bitfield.Range{Index: 0, Bits: 7}
)

func DecodeSysEx7(words [2]uint32) SysEx7Message {
	w0, w1 := words[0], words[1]
	m := SysEx7Message{
		Group:      group(w0),
		Form:       SysEx7Form(bitfield.Get32(w0, rangeSXForm)),
		DataLength: uint8(bitfield.Get32(w0, rangeSXLen)),
	}
	if m.DataLength > 0 {
		m.Data[0] = byte(bitfield.Get32(w0, rangeSXByte0))
	}
	if m.DataLength > 1 {
		m.Data[1] = byte(bitfield.Get32(w0, rangeSXByte1))
	}
	if m.DataLength > 2 {
		m.Data[2] = byte(bitfield.Get32(w1, rangeSXByte2))
	}
	if m.DataLength > 3 {
		m.Data[3] = byte(bitfield.Get32(w1, rangeSXByte3))
	}
	if m.DataLength > 4 {
		m.Data[4] = byte(bitfield.Get32(w1, rangeSXByte4))
	}
	if m.DataLength > 5 {
		m.Data[5] = byte(bitfield.Get32(w1, rangeSXByte5))
	}
	return m
}

func (m SysEx7Message) Encode() [2]uint32 {
	w0 := bitfield.Set32(0, rangeMT, uint32(SysEx7))
	w0 = bitfield.Set32(w0, rangeGroup, uint32(m.Group))
	w0 = bitfield.Set32(w0, rangeSXForm, uint32(m.Form))
	w0 = bitfield.Set32(w0, rangeSXLen, uint32(m.DataLength))
	var w1 uint32
	if m.DataLength > 0 {
		w0 = bitfield.Set32(w0, rangeSXByte0, uint32(m.Data[0]))
	}
	if m.DataLength > 1 {
		w0 = bitfield.Set32(w0, rangeSXByte1, uint32(m.Data[1]))
	}
	if m.DataLength > 2 {
		w1 = bitfield.Set32(w1, rangeSXByte2, uint32(m.Data[2]))
	}
	if m.DataLength > 3 {
		w1 = bitfield.Set32(w1, rangeSXByte3, uint32(m.Data[3]))
	}
	if m.DataLength > 4 {
		w1 = bitfield.Set32(w1, rangeSXByte4, uint32(m.Data[4]))
	}
	if m.DataLength > 5 {
		w1 = bitfield.Set32(w1, rangeSXByte5, uint32(m.Data[5]))
	}
	return [2]uint32{w0, w1}
}
