package ump_test

import (
	"testing"

	"github.com/go-midi2/midi2core/internal/ump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestM1CVMEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	msg := ump.M1CVMMessage{Group: 0, Status: ump.StatusNoteOff, Channel: 1, Data1: 0x60, Data2: 0x50}
	word := msg.Encode()
	assert.Equal(t, uint32(0x20816050), word)
	assert.Equal(t, msg, ump.DecodeM1CVM(word))
}

func TestM2CVMNoteOffEncodeMatchesScenario(t *testing.T) {
	t.Parallel()
	msg := ump.M2CVMMessage{Group: 0, Status: ump.StatusNoteOff, Channel: 1, Note: 0x60, Value: 0xA082}
	words := msg.Encode()
	assert.Equal(t, [2]uint32{0x40816000, 0xA0820000}, words)
	assert.Equal(t, msg, ump.DecodeM2CVM(words))
}

func TestM2CVMProgramChangeEncodeMatchesScenario(t *testing.T) {
	t.Parallel()
	msg := ump.M2CVMMessage{
		Group: 0, Status: ump.StatusProgramChange, Channel: 6,
		Value: 0x41, Flag1: true, Bank: 1, Index: 0x0A,
	}
	words := msg.Encode()
	assert.Equal(t, [2]uint32{0x40C60001, 0x4100010A}, words)
	assert.Equal(t, msg, ump.DecodeM2CVM(words))
}

func TestM2CVMRPNEncodeMatchesScenario(t *testing.T) {
	t.Parallel()
	msg := ump.M2CVMMessage{
		Group: 0, Status: ump.StatusRPN, Channel: 6,
		Bank: 0, Index: 6, Value: 0x10000000,
	}
	words := msg.Encode()
	assert.Equal(t, [2]uint32{0x40260006, 0x10000000}, words)
	assert.Equal(t, msg, ump.DecodeM2CVM(words))
}

func TestSysEx7EncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	msg := ump.SysEx7Message{Group: 2, Form: ump.SysEx7Start, DataLength: 6, Data: [6]byte{1, 2, 3, 4, 5, 6}}
	words := msg.Encode()
	assert.Equal(t, msg, ump.DecodeSysEx7(words))
}

type recordingHandlers struct {
	ump.NullHandlers
	m1cvm   []ump.M1CVMMessage
	m2cvm   []ump.M2CVMMessage
	sysex7  []ump.SysEx7Message
	unknown int
}

func (r *recordingHandlers) M1CVM(m ump.M1CVMMessage)   { r.m1cvm = append(r.m1cvm, m) }
func (r *recordingHandlers) M2CVM(m ump.M2CVMMessage)   { r.m2cvm = append(r.m2cvm, m) }
func (r *recordingHandlers) SysEx7(m ump.SysEx7Message) { r.sysex7 = append(r.sysex7, m) }
func (r *recordingHandlers) Unknown(words [4]uint32, n int) { r.unknown++ }

func TestDispatcherDecodesMultiWordMessages(t *testing.T) {
	t.Parallel()
	h := &recordingHandlers{}
	d := ump.NewDispatcher(h)

	d.Push(0x20816050) // one-word m1cvm
	require.Len(t, h.m1cvm, 1)
	assert.Equal(t, uint8(0x60), h.m1cvm[0].Data1)

	d.Push(0x40816000) // two-word m2cvm, word 1 of 2
	assert.Empty(t, h.m2cvm)
	d.Push(0xA0820000)
	require.Len(t, h.m2cvm, 1)
	assert.Equal(t, uint8(0x60), h.m2cvm[0].Note)
}

func TestDispatcherUnknownOnReservedMessageType(t *testing.T) {
	t.Parallel()
	h := &recordingHandlers{}
	d := ump.NewDispatcher(h)
	d.Push(0x60000000) // MT=6, reserved
	assert.Equal(t, 1, h.unknown)
}

func TestDispatcherClearDropsPartialMessage(t *testing.T) {
	t.Parallel()
	h := &recordingHandlers{}
	d := ump.NewDispatcher(h)
	d.Push(0x40816000) // first word of a two-word m2cvm
	d.Clear()
	d.Push(0x20816050) // a fresh one-word message
	require.Len(t, h.m1cvm, 1)
	assert.Empty(t, h.m2cvm)
}
