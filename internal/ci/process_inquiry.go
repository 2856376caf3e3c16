package ci

// PICapabilities requests the MIDI message report capabilities of a device.
// It carries no body.
type PICapabilities struct{}

// PICapabilitiesReply is a one-byte feature bitmap (v2 only; empty on v1).
type PICapabilitiesReply struct {
	Features uint8
}

// MIDIMessageReportControl selects how much of a category to report (see
// original_source's process_inquiry::midi_message_report::control).
type MIDIMessageReportControl uint8

const (
	ReportNoData          MIDIMessageReportControl = 0x00
	ReportOnlyNonDefault  MIDIMessageReportControl = 0x01
	ReportFull            MIDIMessageReportControl = 0x7F
)

// MIDIMessageReport requests that the responder report its current state
// for the selected message categories.
type MIDIMessageReport struct {
	MessageDataControl MIDIMessageReportControl

	MTCQuarterFrame bool
	SongPosition    bool
	SongSelect      bool

	PitchBend                  bool
	ControlChange               bool
	RPNRegisteredController     bool
	NRPNAssignableController    bool
	ProgramChange               bool
	ChannelPressure             bool

	Notes                         bool
	PolyPressure                  bool
	PerNotePitchBend               bool
	RegisteredPerNoteController     bool
	AssignablePerNoteController     bool
}

func decodeMIDIMessageReportBits(b [3]byte) MIDIMessageReport {
	sys, cc, nd := b[0], b[1], b[2]
	return MIDIMessageReport{
		MTCQuarterFrame: sys&0x01 != 0,
		SongPosition:    sys&0x02 != 0,
		SongSelect:      sys&0x04 != 0,

		PitchBend:               cc&0x01 != 0,
		ControlChange:            cc&0x02 != 0,
		RPNRegisteredController:  cc&0x04 != 0,
		NRPNAssignableController: cc&0x08 != 0,
		ProgramChange:            cc&0x10 != 0,
		ChannelPressure:          cc&0x20 != 0,

		Notes:                       nd&0x01 != 0,
		PolyPressure:                nd&0x02 != 0,
		PerNotePitchBend:            nd&0x04 != 0,
		RegisteredPerNoteController: nd&0x08 != 0,
		AssignablePerNoteController: nd&0x10 != 0,
	}
}

// MIDIMessageReportReply answers a MIDIMessageReport with the categories the
// responder will actually send.
type MIDIMessageReportReply struct {
	MTCQuarterFrame bool
	SongPosition    bool
	SongSelect      bool

	PitchBend                bool
	ControlChange             bool
	RPNRegisteredController   bool
	NRPNAssignableController  bool
	ProgramChange             bool
	ChannelPressure           bool

	Notes                       bool
	PolyPressure                bool
	PerNotePitchBend            bool
	RegisteredPerNoteController bool
	AssignablePerNoteController bool
}

// MIDIMessageReportEnd terminates a MIDI message report. It carries no body.
type MIDIMessageReportEnd struct{}
