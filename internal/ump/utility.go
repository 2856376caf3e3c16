package ump

import "github.com/go-midi2/midi2core/internal/bitfield"

// UtilityMessage is a MT=0x0 one-word message: JR clock, JR timestamp, and
// delta-clockstamp ticks.
type UtilityMessage struct {
	Group  uint8
	Status uint8 // one of the Utility* constants
	Value  uint16
}

var (
	rangeUtilStatus = bitfield.Range{Index: 20, Bits: 4}
	rangeUtilValue  = bitfield.Range{Index: 0, Bits: 16}
)

func DecodeUtility(word0 uint32) UtilityMessage {
	return UtilityMessage{
		Group:  group(word0),
		Status: uint8(bitfield.Get32(word0, rangeUtilStatus)),
		Value:  uint16(bitfield.Get32(word0, rangeUtilValue)),
	}
}

func (m UtilityMessage) Encode() uint32 {
	w := bitfield.Set32(0, rangeMT, uint32(Utility))
	w = bitfield.Set32(w, rangeGroup, uint32(m.Group))
	w = bitfield.Set32(w, rangeUtilStatus, uint32(m.Status))
	w = bitfield.Set32(w, rangeUtilValue, uint32(m.Value))
	return w
}
