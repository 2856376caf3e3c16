// SPDX-License-Identifier: MIT
// Package ump implements the Universal MIDI Packet wire format: the
// typed message records for every UMP message family and the dispatcher
// that decodes a stream of 32-bit words into them.
package ump

import "github.com/go-midi2/midi2core/internal/bitfield"

// MessageType is the 4-bit tag in the high nibble of a UMP's first word.
// It alone determines the message's word count.
type MessageType uint8

const (
	Utility      MessageType = 0x0
	System       MessageType = 0x1
	M1CVM        MessageType = 0x2
	SysEx7       MessageType = 0x3
	M2CVM        MessageType = 0x4
	Data128      MessageType = 0x5
	Reserved0x6  MessageType = 0x6
	Reserved0x7  MessageType = 0x7
	Reserved0x8  MessageType = 0x8
	Reserved0x9  MessageType = 0x9
	Reserved0xA  MessageType = 0xA
	Reserved0xB  MessageType = 0xB
	Reserved0xC  MessageType = 0xC
	FlexData     MessageType = 0xD
	Reserved0xE  MessageType = 0xE
	Stream       MessageType = 0xF
)

// WordCount returns how many 32-bit words a message of this type occupies,
// per the static MT -> size mapping.
func WordCount(mt MessageType) int {
	switch mt {
	case Utility, System, M1CVM, Reserved0x6, Reserved0x7:
		return 1
	case SysEx7, M2CVM, Reserved0x8, Reserved0x9, Reserved0xA:
		return 2
	case Reserved0xB, Reserved0xC:
		return 3
	case Data128, FlexData, Reserved0xE, Stream:
		return 4
	default:
		return 1
	}
}

var (
	rangeMT    = bitfield.Range{Index: 28, Bits: 4}
	rangeGroup = bitfield.Range{Index: 24, Bits: 4}
)

func messageType(word0 uint32) MessageType {
	return MessageType(bitfield.Get32(word0, rangeMT))
}

func group(word0 uint32) uint8 {
	return uint8(bitfield.Get32(word0, rangeGroup))
}

func (mt MessageType) String() string {
	switch mt {
	case Utility:
		return "utility"
	case System:
		return "system"
	case M1CVM:
		return "m1cvm"
	case SysEx7:
		return "sysex7"
	case M2CVM:
		return "m2cvm"
	case Data128:
		return "data128"
	case FlexData:
		return "flex_data"
	case Stream:
		return "stream"
	default:
		return "reserved"
	}
}
