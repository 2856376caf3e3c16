package bytestream

import (
	"github.com/go-midi2/midi2core/internal/fifo"
	"github.com/go-midi2/midi2core/internal/ump"
)

// umpToBytesCapacity covers the worst single-UMP fan-out: an RPN UMP
// decodes into a four-CC legacy sequence of up to 12 bytes; rounded up
// to the next power of two with headroom for a concurrent status byte.
const umpToBytesCapacity = 16

// UMPToBytes decodes a Universal MIDI Packet stream back into legacy
// MIDI 1.0 bytes, eliding running status and dropping anything with no
// MIDI 1 representation (utility, data128, flex data, UMP stream,
// per-note/relative controller messages).
type UMPToBytes struct {
	ump.NullHandlers

	groupFilter uint16
	out         *fifo.FIFO[byte]
	disp        *ump.Dispatcher

	runningStatus uint8
	sysexActive   bool
}

// NewUMPToBytes returns a translator that emits every group by default.
func NewUMPToBytes() *UMPToBytes {
	u := &UMPToBytes{groupFilter: 0xFFFF, out: fifo.New[byte](umpToBytesCapacity)}
	u.disp = ump.NewDispatcher(u)
	return u
}

// SetGroupFilter restricts output to the groups whose bit is set.
func (u *UMPToBytes) SetGroupFilter(bitmap uint16) { u.groupFilter = bitmap }

func (u *UMPToBytes) groupAllowed(g uint8) bool { return u.groupFilter&(1<<g) != 0 }

// Push decodes one UMP word, possibly emitting legacy bytes.
func (u *UMPToBytes) Push(word uint32) { u.disp.Push(word) }

// Pop drains one emitted legacy byte.
func (u *UMPToBytes) Pop() (b byte, ok bool) {
	if u.out.Empty() {
		return 0, false
	}
	return u.out.PopFront(), true
}

// Empty reports whether the output queue has no pending bytes.
func (u *UMPToBytes) Empty() bool { return u.out.Empty() }

// Reset clears in-flight dispatcher/SysEx state and restores running
// status to "none latched".
func (u *UMPToBytes) Reset() {
	u.disp.Clear()
	u.runningStatus = 0
	u.sysexActive = false
	u.out.Clear()
}

func (u *UMPToBytes) emit(channel, kind byte, operands ...byte) {
	status := kind | channel
	if status != u.runningStatus {
		u.out.PushBack(status)
		u.runningStatus = status
	}
	for _, op := range operands {
		u.out.PushBack(op)
	}
}

func (u *UMPToBytes) M1CVM(msg ump.M1CVMMessage) {
	if !u.groupAllowed(msg.Group) {
		return
	}
	if operandsFor(uint8(msg.Status)) == 1 {
		u.emit(msg.Channel, uint8(msg.Status), msg.Data1)
	} else {
		u.emit(msg.Channel, uint8(msg.Status), msg.Data1, msg.Data2)
	}
}

func (u *UMPToBytes) M2CVM(msg ump.M2CVMMessage) {
	if !u.groupAllowed(msg.Group) {
		return
	}
	downgraded, ok := DowngradeM2CVM(msg)
	if !ok {
		return // per-note controllers, relative RPN/NRPN, per-note management
	}
	for _, m := range downgraded {
		if operandsFor(uint8(m.Status)) == 1 {
			u.emit(m.Channel, uint8(m.Status), m.Data1)
		} else {
			u.emit(m.Channel, uint8(m.Status), m.Data1, m.Data2)
		}
	}
}

func (u *UMPToBytes) System(msg ump.SystemMessage) {
	if !u.groupAllowed(msg.Group) {
		return
	}
	if msg.Status >= 0xF8 {
		u.out.PushBack(msg.Status)
		return
	}
	u.runningStatus = 0
	u.out.PushBack(msg.Status)
	switch msg.Status {
	case ump.TimingCode, ump.SongSelect:
		u.out.PushBack(byte(msg.Value))
	case ump.SPP:
		u.out.PushBack(byte(msg.Value & 0x7F))
		u.out.PushBack(byte((msg.Value >> 7) & 0x7F))
	}
}

func (u *UMPToBytes) SysEx7(msg ump.SysEx7Message) {
	if !u.groupAllowed(msg.Group) {
		return
	}
	switch msg.Form {
	case ump.SysEx7Complete:
		u.out.PushBack(0xF0)
		u.pushSysExData(msg)
		u.out.PushBack(0xF7)
		u.runningStatus = 0
	case ump.SysEx7Start:
		u.sysexActive = true
		u.out.PushBack(0xF0)
		u.pushSysExData(msg)
		u.runningStatus = 0
	case ump.SysEx7Continue:
		if !u.sysexActive {
			return
		}
		u.pushSysExData(msg)
	case ump.SysEx7End:
		if !u.sysexActive {
			return
		}
		u.pushSysExData(msg)
		u.out.PushBack(0xF7)
		u.sysexActive = false
	}
}

func (u *UMPToBytes) pushSysExData(msg ump.SysEx7Message) {
	for i := 0; i < int(msg.DataLength); i++ {
		u.out.PushBack(msg.Data[i])
	}
}
