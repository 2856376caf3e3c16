package ump

import "github.com/go-midi2/midi2core/internal/bitfield"

// Data128Message is a MT=0x5 four-word packet: SysEx8 (forms in1/start/
// continue/end) and Mixed Data Set header/payload packets share this
// shape, distinguished by Status.
type Data128Message struct {
	Group  uint8
	Status uint8 // SysEx7Form for sysex8 forms; MDS header/payload otherwise
	Words  [4]uint32
}

var rangeD128Status = bitfield.Range{Index: 20, Bits: 4}

func DecodeData128(words [4]uint32) Data128Message {
	return Data128Message{
		Group:  group(words[0]),
		Status: uint8(bitfield.Get32(words[0], rangeD128Status)),
		Words:  words,
	}
}

func (m Data128Message) Encode() [4]uint32 {
	w0 := bitfield.Set32(m.Words[0], rangeMT, uint32(Data128))
	w0 = bitfield.Set32(w0, rangeGroup, uint32(m.Group))
	w0 = bitfield.Set32(w0, rangeD128Status, uint32(m.Status))
	return [4]uint32{w0, m.Words[1], m.Words[2], m.Words[3]}
}

// FlexDataMessage is a MT=0xD four-word packet: tempo, time signature,
// metronome, key signature, chord name, and lyric/performance text
// events, distinguished by (Bank, Status).
type FlexDataMessage struct {
	Group  uint8
	Bank   uint8
	Status uint8
	Words  [4]uint32
}

var (
	rangeFlexBank   = bitfield.Range{Index: 8, Bits: 8}
	rangeFlexStatus = bitfield.Range{Index: 0, Bits: 8}
)

func DecodeFlexData(words [4]uint32) FlexDataMessage {
	return FlexDataMessage{
		Group:  group(words[0]),
		Bank:   uint8(bitfield.Get32(words[0], rangeFlexBank)),
		Status: uint8(bitfield.Get32(words[0], rangeFlexStatus)),
		Words:  words,
	}
}

func (m FlexDataMessage) Encode() [4]uint32 {
	w0 := bitfield.Set32(m.Words[0], rangeMT, uint32(FlexData))
	w0 = bitfield.Set32(w0, rangeGroup, uint32(m.Group))
	w0 = bitfield.Set32(w0, rangeFlexBank, uint32(m.Bank))
	w0 = bitfield.Set32(w0, rangeFlexStatus, uint32(m.Status))
	return [4]uint32{w0, m.Words[1], m.Words[2], m.Words[3]}
}

// StreamMessage is a MT=0xF four-word UMP Stream message: endpoint,
// device identity, function block, and JR protocol negotiation, all
// distinguished by a 10-bit Status.
type StreamMessage struct {
	Status uint16
	Words  [4]uint32
}

var rangeStreamStatus = bitfield.Range{Index: 16, Bits: 10}

func DecodeStream(words [4]uint32) StreamMessage {
	return StreamMessage{
		Status: uint16(bitfield.Get32(words[0], rangeStreamStatus)),
		Words:  words,
	}
}

func (m StreamMessage) Encode() [4]uint32 {
	w0 := bitfield.Set32(m.Words[0], rangeMT, uint32(Stream))
	w0 = bitfield.Set32(w0, rangeStreamStatus, uint32(m.Status))
	return [4]uint32{w0, m.Words[1], m.Words[2], m.Words[3]}
}
