package ump

// Dispatcher accumulates UMP words into complete messages and invokes
// exactly one typed handler per message, per the MT-determined word
// count. It never blocks and never silently drops a word: every
// complete message reaches either a typed handler or Unknown.
type Dispatcher struct {
	handlers Handlers
	words    [4]uint32
	pos      int
	required int
}

// NewDispatcher returns a Dispatcher that calls back into h.
func NewDispatcher(h Handlers) *Dispatcher {
	return &Dispatcher{handlers: h}
}

// Push feeds one 32-bit UMP word. When the MT-determined word count is
// satisfied, it decodes and dispatches exactly one message.
func (d *Dispatcher) Push(word uint32) {
	if d.pos == 0 {
		d.required = WordCount(messageType(word))
	}
	d.words[d.pos] = word
	d.pos++
	if d.pos < d.required {
		return
	}
	d.dispatch()
	d.pos = 0
}

// Clear discards any partially accumulated message. Reset is an alias
// kept for callers used to the C++ naming.
func (d *Dispatcher) Clear() { d.pos = 0 }
func (d *Dispatcher) Reset() { d.Clear() }

func (d *Dispatcher) dispatch() {
	mt := messageType(d.words[0])
	switch mt {
	case Utility:
		d.handlers.Utility(DecodeUtility(d.words[0]))
	case System:
		d.handlers.System(DecodeSystem(d.words[0]))
	case M1CVM:
		msg := DecodeM1CVM(d.words[0])
		if !validM1Status(msg.Status) {
			d.handlers.Unknown([4]uint32{d.words[0]}, 1)
			return
		}
		d.handlers.M1CVM(msg)
	case SysEx7:
		d.handlers.SysEx7(DecodeSysEx7([2]uint32{d.words[0], d.words[1]}))
	case M2CVM:
		msg := DecodeM2CVM([2]uint32{d.words[0], d.words[1]})
		if !validM2Status(msg.Status) {
			d.handlers.Unknown([4]uint32{d.words[0], d.words[1]}, 2)
			return
		}
		d.handlers.M2CVM(msg)
	case Data128:
		d.handlers.Data128(DecodeData128(d.words))
	case FlexData:
		d.handlers.FlexData(DecodeFlexData(d.words))
	case Stream:
		d.handlers.Stream(DecodeStream(d.words))
	default:
		d.handlers.Unknown(d.words, d.pos)
	}
}

func validM1Status(s Status) bool {
	switch s {
	case StatusNoteOff, StatusNoteOn, StatusKeyPressure, StatusCC,
		StatusProgramChange, StatusChanPressure, StatusPitchBend:
		return true
	default:
		return false
	}
}

func validM2Status(s Status) bool {
	switch s {
	case StatusRPNPerNote, StatusNRPNPerNote, StatusRPN, StatusNRPN,
		StatusRPNRelative, StatusNRPNRelative, StatusPitchBendPN,
		StatusNoteOff, StatusNoteOn, StatusKeyPressure, StatusCC,
		StatusProgramChange, StatusChanPressure, StatusPitchBend,
		StatusPerNoteManage:
		return true
	default:
		return false
	}
}
