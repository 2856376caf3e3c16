package bytestream

import (
	"github.com/go-midi2/midi2core/internal/fifo"
	"github.com/go-midi2/midi2core/internal/ump"
)

// bytesToUMPCapacity is sized to the worst-case fan-out of one input
// byte: a CC byte completing an RPN data-LSB pair can flush a fused
// MIDI 2 controller message (2 words) on top of whatever else is
// pending, so 4 words of headroom covers it with margin.
const bytesToUMPCapacity = 4

// BytesToUMP translates a legacy MIDI 1.0 byte stream into Universal
// MIDI Packet words. It preserves running-status semantics, reassembles
// 7-bit SysEx into sysex7_start/continue/end UMPs, fuses RPN/NRPN
// controller pairs, and optionally upscales MIDI 1 CVM into MIDI 2 CVM.
type BytesToUMP struct {
	DefaultGroup uint8

	outputMIDI2 bool
	out         *fifo.FIFO[uint32]

	runningStatus uint8 // 0 means none latched
	pendingStatus uint8
	operands      [2]byte
	operandsGot   int
	operandsNeed  int

	sysexActive bool
	sysexStarted bool
	sysexBuf    [6]byte
	sysexPos    int

	sysCommonPending bool

	channels [16]channelState
}

// NewBytesToUMP returns a translator emitting on defaultGroup.
func NewBytesToUMP(defaultGroup uint8) *BytesToUMP {
	return &BytesToUMP{DefaultGroup: defaultGroup, out: fifo.New[uint32](bytesToUMPCapacity)}
}

// SetOutputMIDI2 selects MIDI 2 CVM (true) or MIDI 1 CVM (false, the
// default) output for channel voice messages.
func (t *BytesToUMP) SetOutputMIDI2(v bool) { t.outputMIDI2 = v }

// Pop drains one emitted UMP word. ok is false if the output is empty.
func (t *BytesToUMP) Pop() (word uint32, ok bool) {
	if t.out.Empty() {
		return 0, false
	}
	return t.out.PopFront(), true
}

// Empty reports whether the output queue has no pending words.
func (t *BytesToUMP) Empty() bool { return t.out.Empty() }

// Reset drops all in-flight parser state (running status, partial
// SysEx, RPN accumulators) and empties the output queue.
func (t *BytesToUMP) Reset() {
	*t = BytesToUMP{DefaultGroup: t.DefaultGroup, outputMIDI2: t.outputMIDI2, out: t.out}
	t.out.Clear()
}

func operandsFor(statusNibble uint8) int {
	switch statusNibble {
	case 0xC0, 0xD0:
		return 1
	default:
		return 2
	}
}

// Push feeds one legacy MIDI byte into the parser.
func (t *BytesToUMP) Push(b byte) {
	if b&0x80 != 0 {
		t.pushStatus(b)
		return
	}
	if t.sysexActive {
		t.pushSysExByte(b)
		return
	}
	if t.runningStatus == 0 && !t.sysCommonPending {
		return // malformed: data byte with no latched status, dropped
	}
	t.pushOperand(b)
}

func (t *BytesToUMP) pushStatus(b byte) {
	switch {
	case b >= 0xF8:
		t.emitSystemRealtime(b)
	case b == 0xF0:
		t.sysexActive = true
		t.sysexPos = 0
		t.runningStatus = 0
	case b == 0xF7:
		t.flushSysEx()
		t.sysexActive = false
	case b >= 0xF1 && b <= 0xF6:
		t.sysexActive = false
		t.runningStatus = 0
		t.emitSystemCommon(b)
	default:
		t.sysexActive = false
		t.runningStatus = b
		t.pendingStatus = b
		t.operandsGot = 0
		t.operandsNeed = operandsFor(b & 0xF0)
	}
}

func (t *BytesToUMP) pushOperand(b byte) {
	t.operands[t.operandsGot] = b
	t.operandsGot++
	if t.operandsGot < t.operandsNeed {
		return
	}
	t.operandsGot = 0
	if t.sysCommonPending {
		t.sysCommonPending = false
		t.dispatchSystemCommon(t.pendingStatus, t.operands[0], t.operands[1])
		return
	}
	t.dispatchCVM(t.pendingStatus, t.operands[0], t.operands[1])
}

func (t *BytesToUMP) dispatchSystemCommon(status, op1, op2 byte) {
	msg := ump.SystemMessage{Group: t.DefaultGroup, Status: status}
	switch status {
	case ump.TimingCode, ump.SongSelect:
		msg.Value = uint16(op1)
	case ump.SPP:
		msg.Value = uint16(op1) | uint16(op2)<<7
	}
	t.out.PushBack(msg.Encode())
}

func (t *BytesToUMP) emitSystemRealtime(b byte) {
	t.out.PushBack(ump.SystemMessage{Group: t.DefaultGroup, Status: b}.Encode())
}

func (t *BytesToUMP) emitSystemCommon(b byte) {
	switch b {
	case ump.TuneRequest:
		t.out.PushBack(ump.SystemMessage{Group: t.DefaultGroup, Status: b}.Encode())
	default:
		// timing_code/song_select/spp need their operand bytes; handled by
		// latching them as a one-or-two-operand "status" the same way a CVM
		// status is latched, reusing pendingStatus/operandsNeed.
		t.pendingStatus = b
		t.operandsGot = 0
		if b == ump.SPP {
			t.operandsNeed = 2
		} else {
			t.operandsNeed = 1
		}
		t.sysCommonPending = true
	}
}
