package bytestream

import (
	"github.com/go-midi2/midi2core/internal/scale"
	"github.com/go-midi2/midi2core/internal/ump"
)

func (t *BytesToUMP) dispatchCVM(status, op1, op2 byte) {
	channel := status & 0x0F
	kind := status & 0xF0
	if !t.outputMIDI2 {
		t.out.PushBack(ump.M1CVMMessage{
			Group: t.DefaultGroup, Status: ump.Status(kind), Channel: channel,
			Data1: op1, Data2: op2,
		}.Encode())
		return
	}
	t.emitM2CVM(kind, channel, op1, op2)
}

func (t *BytesToUMP) pushM2(msg ump.M2CVMMessage) {
	words := msg.Encode()
	t.out.PushBack(words[0])
	t.out.PushBack(words[1])
}

func (t *BytesToUMP) emitM2CVM(kind, channel, op1, op2 byte) {
	switch kind {
	case 0x80, 0x90: // note off / note on
		t.pushM2(ump.M2CVMMessage{
			Group: t.DefaultGroup, Status: ump.Status(kind), Channel: channel,
			Note: op1, Value: scale.Up(uint32(op2), 7, 16),
		})
	case 0xA0: // polyphonic key pressure
		t.pushM2(ump.M2CVMMessage{
			Group: t.DefaultGroup, Status: ump.StatusKeyPressure, Channel: channel,
			Note: op1, Value: scale.Up(uint32(op2), 7, 32),
		})
	case 0xB0:
		t.handleCC(channel, op1, op2)
	case 0xC0:
		t.handleProgramChange(channel, op1)
	case 0xD0: // channel pressure
		t.pushM2(ump.M2CVMMessage{
			Group: t.DefaultGroup, Status: ump.StatusChanPressure, Channel: channel,
			Value: scale.Up(uint32(op1), 7, 32),
		})
	case 0xE0: // pitch bend: op1 = LSB, op2 = MSB
		v14 := uint32(op1) | uint32(op2)<<7
		t.pushM2(ump.M2CVMMessage{
			Group: t.DefaultGroup, Status: ump.StatusPitchBend, Channel: channel,
			Value: scale.Up(v14, 14, 32),
		})
	}
}

// handleCC implements bank-select latching and RPN/NRPN pair fusion for
// MIDI 2 output; every other controller passes through as a plain scaled
// MIDI 2 CC message.
func (t *BytesToUMP) handleCC(channel, controller, value byte) {
	ch := &t.channels[channel]
	switch controller {
	case 0:
		ch.bank.msb, ch.bank.valid = value, true
		return
	case 32:
		ch.bank.lsb, ch.bank.valid = value, true
		return
	case 101:
		ch.rpn.latchParamMSB(value, false)
		return
	case 100:
		ch.rpn.latchParamLSB(value, false)
		return
	case 99:
		ch.rpn.latchParamMSB(value, true)
		return
	case 98:
		ch.rpn.latchParamLSB(value, true)
		return
	case 6:
		if ch.rpn.paramLatched {
			ch.rpn.dataMSB, ch.rpn.dataMSBLatched = value, true
			return
		}
	case 38:
		if ch.rpn.paramLatched && ch.rpn.dataMSBLatched {
			t.flushRPN(channel, value)
			return
		}
	}
	t.pushM2(ump.M2CVMMessage{
		Group: t.DefaultGroup, Status: ump.StatusCC, Channel: channel,
		Bank: controller, Value: scale.Up(uint32(value), 7, 32),
	})
}

func (t *BytesToUMP) flushRPN(channel, dataLSB byte) {
	ch := &t.channels[channel]
	status := ump.StatusRPN
	if ch.rpn.isNRPN {
		status = ump.StatusNRPN
	}
	value14 := uint32(ch.rpn.dataMSB)<<7 | uint32(dataLSB)
	t.pushM2(ump.M2CVMMessage{
		Group: t.DefaultGroup, Status: status, Channel: channel,
		Bank: ch.rpn.paramMSB, Index: uint16(ch.rpn.paramLSB),
		Value: scale.Up(value14, 14, 32),
	})
	ch.rpn.dataMSBLatched = false
}

func (t *BytesToUMP) handleProgramChange(channel, program byte) {
	ch := &t.channels[channel]
	msg := ump.M2CVMMessage{Group: t.DefaultGroup, Status: ump.StatusProgramChange, Channel: channel, Value: uint32(program)}
	if ch.bank.valid {
		msg.Flag1 = true
		msg.Bank = ch.bank.msb
		msg.Index = uint16(ch.bank.lsb)
		ch.bank = bankState{}
	}
	t.pushM2(msg)
}
