package ump

import "github.com/go-midi2/midi2core/internal/bitfield"

// SystemMessage is a MT=0x1 one-word message: system real-time and system
// common bytes (everything in 0xF1-0xFF except SysEx, which travels as
// SysEx7Message instead).
type SystemMessage struct {
	Group  uint8
	Status uint8 // one of the status byte constants in status.go
	Value  uint16
}

var rangeSysStatus = bitfield.Range{Index: 16, Bits: 8}

// DecodeSystem decodes a one-word system message. Status-code-specific
// operand extraction (song position pointer's 14-bit value, song
// select/timing code's 7-bit value) mirrors the legacy processor's
// per-status special cases.
func DecodeSystem(word0 uint32) SystemMessage {
	status := uint8(bitfield.Get32(word0, rangeSysStatus))
	m := SystemMessage{Group: group(word0), Status: status}
	switch status {
	case TimingCode, SongSelect:
		m.Value = uint16(bitfield.Get32(word0, bitfield.Range{Index: 8, Bits: 7}))
	case SPP:
		lsb := bitfield.Get32(word0, bitfield.Range{Index: 8, Bits: 7})
		msb := bitfield.Get32(word0, bitfield.Range{Index: 0, Bits: 7})
		m.Value = uint16(lsb | msb<<7)
	}
	return m
}

func (m SystemMessage) Encode() uint32 {
	w := bitfield.Set32(0, rangeMT, uint32(System))
	w = bitfield.Set32(w, rangeGroup, uint32(m.Group))
	w = bitfield.Set32(w, rangeSysStatus, uint32(m.Status))
	switch m.Status {
	case TimingCode, SongSelect:
		w = bitfield.Set32(w, bitfield.Range{Index: 8, Bits: 7}, uint32(m.Value)&0x7F)
	case SPP:
		w = bitfield.Set32(w, bitfield.Range{Index: 8, Bits: 7}, uint32(m.Value)&0x7F)
		w = bitfield.Set32(w, bitfield.Range{Index: 0, Bits: 7}, uint32(m.Value>>7)&0x7F)
	}
	return w
}
