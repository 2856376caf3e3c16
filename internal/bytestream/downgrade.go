package bytestream

import (
	"github.com/go-midi2/midi2core/internal/scale"
	"github.com/go-midi2/midi2core/internal/ump"
)

// DowngradeM2CVM decodes a MIDI 2 channel voice message and rescales it
// to one or more MIDI 1 channel voice messages of the same group and
// channel. Program change with bank_valid set downgrades to a CC-0/
// CC-32 pair followed by the program change. Per-note controllers,
// relative RPN/NRPN, and per-note management have no MIDI 1 equivalent
// and downgrade to nothing (ok is false).
func DowngradeM2CVM(msg ump.M2CVMMessage) (messages []ump.M1CVMMessage, ok bool) {
	base := ump.M1CVMMessage{Group: msg.Group, Channel: msg.Channel}

	switch msg.Status {
	case ump.StatusNoteOff, ump.StatusNoteOn:
		vel := scale.Down(msg.Value, 16, 7)
		if msg.Status == ump.StatusNoteOn {
			vel = scale.ClampVelocity(vel)
		}
		base.Status, base.Data1, base.Data2 = msg.Status, msg.Note, uint8(vel)
		return []ump.M1CVMMessage{base}, true

	case ump.StatusKeyPressure:
		base.Status, base.Data1, base.Data2 = msg.Status, msg.Note, uint8(scale.Down(msg.Value, 32, 7))
		return []ump.M1CVMMessage{base}, true

	case ump.StatusChanPressure:
		base.Status, base.Data1 = msg.Status, uint8(scale.Down(msg.Value, 32, 7))
		return []ump.M1CVMMessage{base}, true

	case ump.StatusCC:
		base.Status, base.Data1, base.Data2 = msg.Status, msg.Bank, uint8(scale.Down(msg.Value, 32, 7))
		return []ump.M1CVMMessage{base}, true

	case ump.StatusProgramChange:
		pc := base
		pc.Status, pc.Data1 = msg.Status, uint8(msg.Value)
		if !msg.Flag1 {
			return []ump.M1CVMMessage{pc}, true
		}
		ccMSB := base
		ccMSB.Status, ccMSB.Data1, ccMSB.Data2 = ump.StatusCC, 0, msg.Bank
		ccLSB := base
		ccLSB.Status, ccLSB.Data1, ccLSB.Data2 = ump.StatusCC, 32, uint8(msg.Index)
		return []ump.M1CVMMessage{ccMSB, ccLSB, pc}, true

	case ump.StatusPitchBend:
		v14 := scale.Down(msg.Value, 32, 14)
		base.Status, base.Data1, base.Data2 = msg.Status, uint8(v14&0x7F), uint8((v14>>7)&0x7F)
		return []ump.M1CVMMessage{base}, true

	case ump.StatusRPN, ump.StatusNRPN:
		paramMSB, paramLSB := uint8(101), uint8(100)
		if msg.Status == ump.StatusNRPN {
			paramMSB, paramLSB = 99, 98
		}
		v14 := scale.Down(msg.Value, 32, 14)
		ccs := [4][2]uint8{{paramMSB, msg.Bank}, {paramLSB, uint8(msg.Index)}, {6, uint8((v14 >> 7) & 0x7F)}, {38, uint8(v14 & 0x7F)}}
		out := make([]ump.M1CVMMessage, len(ccs))
		for i, cc := range ccs {
			out[i] = base
			out[i].Status, out[i].Data1, out[i].Data2 = ump.StatusCC, cc[0], cc[1]
		}
		return out, true

	default:
		return nil, false
	}
}
