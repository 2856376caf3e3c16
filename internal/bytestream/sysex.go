package bytestream

import "github.com/go-midi2/midi2core/internal/ump"

func (t *BytesToUMP) pushSysEx(msg ump.SysEx7Message) {
	words := msg.Encode()
	t.out.PushBack(words[0])
	t.out.PushBack(words[1])
}

// pushSysExByte buffers one 7-bit SysEx data byte, flushing the previous
// 6-byte chunk as start/continue once it's known not to be the final
// chunk (i.e. another data byte arrived after it filled up).
func (t *BytesToUMP) pushSysExByte(b byte) {
	if t.sysexPos == len(t.sysexBuf) {
		form := ump.SysEx7Continue
		if !t.sysexStarted {
			form = ump.SysEx7Start
			t.sysexStarted = true
		}
		t.pushSysEx(ump.SysEx7Message{Group: t.DefaultGroup, Form: form, DataLength: 6, Data: t.sysexBuf})
		t.sysexPos = 0
	}
	t.sysexBuf[t.sysexPos] = b
	t.sysexPos++
}

// flushSysEx emits the final chunk of a SysEx message (triggered by a
// terminating 0xF7), as sysex7_end if a start/continue has already been
// sent, or sysex7_in_1 if the whole message fit in one chunk.
func (t *BytesToUMP) flushSysEx() {
	form := ump.SysEx7End
	if !t.sysexStarted {
		form = ump.SysEx7Complete
	}
	var data [6]byte
	copy(data[:], t.sysexBuf[:t.sysexPos])
	t.pushSysEx(ump.SysEx7Message{Group: t.DefaultGroup, Form: form, DataLength: uint8(t.sysexPos), Data: data})
	t.sysexStarted = false
	t.sysexPos = 0
}
