package bytestream_test

import (
	"testing"

	"github.com/go-midi2/midi2core/internal/bytestream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainWords(t BytesToUMPDrainer) []uint32 {
	var out []uint32
	for {
		w, ok := t.Pop()
		if !ok {
			break
		}
		out = append(out, w)
	}
	return out
}

// BytesToUMPDrainer is the minimal surface drainWords needs; satisfied by
// *bytestream.BytesToUMP.
type BytesToUMPDrainer interface {
	Pop() (uint32, bool)
}

func TestRunningStatusNoteOff(t *testing.T) {
	t.Parallel()
	tr := bytestream.NewBytesToUMP(0)
	for _, b := range []byte{0x81, 0x60, 0x50, 0x70, 0x70} {
		tr.Push(b)
	}
	assert.Equal(t, []uint32{0x20816050, 0x20817070}, drainWords(tr))
}

func TestRunningStatusNoteOffUpscaledToMIDI2(t *testing.T) {
	t.Parallel()
	tr := bytestream.NewBytesToUMP(0)
	tr.SetOutputMIDI2(true)
	for _, b := range []byte{0x81, 0x60, 0x50, 0x70, 0x70} {
		tr.Push(b)
	}
	assert.Equal(t, []uint32{0x40816000, 0xA0820000, 0x40817000, 0xE1860000}, drainWords(tr))
}

func TestProgramChangeWithBank(t *testing.T) {
	t.Parallel()
	tr := bytestream.NewBytesToUMP(0)
	tr.SetOutputMIDI2(true)
	for _, b := range []byte{0xB6, 0x00, 0x01, 0x20, 0x0A, 0xC6, 0x41} {
		tr.Push(b)
	}
	assert.Equal(t, []uint32{0x40C60001, 0x4100010A}, drainWords(tr))
}

func TestRPNPairFusion(t *testing.T) {
	t.Parallel()
	tr := bytestream.NewBytesToUMP(0)
	tr.SetOutputMIDI2(true)
	// CC101=0 (RPN bank), CC100=6 (RPN index), CC6=8 (data MSB), CC38=0
	// (data LSB) -- the full 4-CC sequence; the data LSB's arrival is what
	// triggers the fused emission.
	for _, b := range []byte{0xB6, 101, 0, 100, 6, 6, 8, 38, 0} {
		tr.Push(b)
	}
	assert.Equal(t, []uint32{0x40260006, 0x10000000}, drainWords(tr))
}

func TestSysEx7Passthrough(t *testing.T) {
	t.Parallel()
	body := make([]byte, 30)
	for i := range body {
		body[i] = byte(i + 1)
	}
	tr := bytestream.NewBytesToUMP(0)

	var words []uint32
	pushAndDrain := func(b byte) {
		tr.Push(b)
		words = append(words, drainWords(tr)...)
	}
	pushAndDrain(0xF0)
	for _, b := range body {
		pushAndDrain(b)
	}
	pushAndDrain(0xF7)

	require.Len(t, words, 10) // 5 sysex7 packets x 2 words
}

func TestMalformedDataByteWithNoStatusIsDropped(t *testing.T) {
	t.Parallel()
	tr := bytestream.NewBytesToUMP(0)
	tr.Push(0x42) // bare data byte, no latched status
	assert.True(t, tr.Empty())
}

func TestResetDropsInFlightMessage(t *testing.T) {
	t.Parallel()
	tr := bytestream.NewBytesToUMP(0)
	tr.Push(0x90) // note-on status, awaiting two operands
	tr.Push(0x40) // first operand only
	tr.Reset()
	tr.Push(0x40)
	tr.Push(0x7F)
	assert.True(t, tr.Empty()) // running status was dropped by Reset, so this data byte is malformed
}
