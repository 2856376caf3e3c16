package ci

import "github.com/go-midi2/midi2core/internal/bitfield"

// dispatch decodes the fully-accumulated body for d.header.Kind and invokes
// the matching Handlers method. Called only once per message, after the
// scratch buffer has reached the length the tail-shape lookup demanded.
func (d *Dispatcher) dispatch() {
	h, b := d.header, d.body()

	switch h.Kind {
	case KindDiscovery:
		if msg, err := decodeDiscovery(h.Version, b); err == nil {
			d.handlers.Discovery(h, msg)
		}
	case KindDiscoveryReply:
		if msg, err := decodeDiscoveryReply(h.Version, b); err == nil {
			d.handlers.DiscoveryReply(h, msg)
		}
	case KindEndpointInfo:
		d.handlers.EndpointInfo(h, EndpointInfo{Status: b[0]})
	case KindEndpointInfoReply:
		n, err := bitfield.FromLE7x2([2]byte{b[1], b[2]})
		if err != nil {
			return
		}
		d.handlers.EndpointInfoReply(h, EndpointInfoReply{
			Status:      b[0],
			Information: cloneBytes(b[3 : 3+int(n)]),
		})
	case KindInvalidateMUID:
		var arr [4]byte
		copy(arr[:], b[0:4])
		muid, err := bitfield.FromLE7(arr)
		if err != nil {
			return
		}
		d.handlers.InvalidateMUID(h, InvalidateMUID{TargetMUID: muid})
	case KindAck:
		ack, err := decodeAckBody(b)
		if err != nil {
			return
		}
		d.handlers.Ack(h, ack)
	case KindNak:
		if h.Version < 2 {
			d.handlers.Nak(h, Nak{Version: h.Version})
			return
		}
		ack, err := decodeAckBody(b)
		if err != nil {
			return
		}
		d.handlers.Nak(h, Nak{
			Version:      h.Version,
			OriginalKind: ack.OriginalKind,
			StatusCode:   ack.StatusCode,
			StatusData:   ack.StatusData,
			Details:      ack.Details,
			Message:      ack.Message,
		})

	case KindProfileInquiry:
		d.handlers.ProfileInquiry(h, ProfileInquiry{})
	case KindProfileInquiryReply:
		enabled, off, err := decodeProfileIDList(b)
		if err != nil {
			return
		}
		disabled, _, err := decodeProfileIDList(b[off:])
		if err != nil {
			return
		}
		d.handlers.ProfileInquiryReply(h, ProfileInquiryReply{Enabled: enabled, Disabled: disabled})
	case KindProfileSetOn:
		pid, nc := decodeProfileWithChannels(h.Version, b)
		d.handlers.ProfileOn(h, ProfileOn{PID: pid, NumChannels: nc})
	case KindProfileSetOff:
		var pid ProfileID
		copy(pid[:], b[0:5])
		d.handlers.ProfileOff(h, ProfileOff{PID: pid})
	case KindProfileEnabled:
		pid, nc := decodeProfileWithChannels(h.Version, b)
		d.handlers.ProfileEnabled(h, ProfileEnabled{PID: pid, NumChannels: nc})
	case KindProfileDisabled:
		pid, nc := decodeProfileWithChannels(h.Version, b)
		d.handlers.ProfileDisabled(h, ProfileDisabled{PID: pid, NumChannels: nc})
	case KindProfileAdded:
		var pid ProfileID
		copy(pid[:], b[0:5])
		d.handlers.ProfileAdded(h, ProfileAdded{PID: pid})
	case KindProfileRemoved:
		var pid ProfileID
		copy(pid[:], b[0:5])
		d.handlers.ProfileRemoved(h, ProfileRemoved{PID: pid})
	case KindProfileDetails:
		var pid ProfileID
		copy(pid[:], b[0:5])
		d.handlers.ProfileDetails(h, ProfileDetails{PID: pid, Target: b[5]})
	case KindProfileDetailsReply:
		var pid ProfileID
		copy(pid[:], b[0:5])
		n, err := bitfield.FromLE7x2([2]byte{b[6], b[7]})
		if err != nil {
			return
		}
		d.handlers.ProfileDetailsReply(h, ProfileDetailsReply{
			PID: pid, Target: b[5], Data: cloneBytes(b[8 : 8+int(n)]),
		})
	case KindProfileSpecificData:
		var pid ProfileID
		copy(pid[:], b[0:5])
		n, err := bitfield.FromLE7x2([2]byte{b[5], b[6]})
		if err != nil {
			return
		}
		d.handlers.ProfileSpecificData(h, ProfileSpecificData{
			PID: pid, Data: cloneBytes(b[7 : 7+int(n)]),
		})

	case KindPECapability:
		cap := PECapabilities{NumSimultaneous: b[0]}
		if h.Version >= 2 && len(b) >= 3 {
			cap.MajorVersion, cap.MinorVersion = b[1], b[2]
		}
		d.handlers.PECapabilities(h, cap)
	case KindPECapabilityReply:
		rep := PECapabilitiesReply{NumSimultaneous: b[0]}
		if h.Version >= 2 && len(b) >= 3 {
			rep.MajorVersion, rep.MinorVersion = b[1], b[2]
		}
		d.handlers.PECapabilitiesReply(h, rep)

	case KindPEGet, KindPEGetReply, KindPESet, KindPESetReply, KindPESub, KindPESubReply, KindPENotify:
		if msg, err := decodePropertyExchange(h.Kind, b); err == nil {
			d.handlers.PropertyExchange(h, msg)
		}

	case KindPICapability:
		d.handlers.PICapabilities(h, PICapabilities{})
	case KindPICapabilityReply:
		var features uint8
		if len(b) >= 1 {
			features = b[0]
		}
		d.handlers.PICapabilitiesReply(h, PICapabilitiesReply{Features: features})
	case KindPIMMReport:
		if len(b) < 5 {
			d.handlers.MIDIMessageReport(h, MIDIMessageReport{})
			return
		}
		rep := decodeMIDIMessageReportBits([3]byte{b[1], b[3], b[4]})
		rep.MessageDataControl = MIDIMessageReportControl(b[0])
		d.handlers.MIDIMessageReport(h, rep)
	case KindPIMMReportReply:
		if len(b) < 4 {
			d.handlers.MIDIMessageReportReply(h, MIDIMessageReportReply{})
			return
		}
		full := decodeMIDIMessageReportBits([3]byte{b[0], b[2], b[3]})
		d.handlers.MIDIMessageReportReply(h, MIDIMessageReportReply{
			MTCQuarterFrame:             full.MTCQuarterFrame,
			SongPosition:                full.SongPosition,
			SongSelect:                  full.SongSelect,
			PitchBend:                   full.PitchBend,
			ControlChange:               full.ControlChange,
			RPNRegisteredController:     full.RPNRegisteredController,
			NRPNAssignableController:    full.NRPNAssignableController,
			ProgramChange:               full.ProgramChange,
			ChannelPressure:             full.ChannelPressure,
			Notes:                       full.Notes,
			PolyPressure:                full.PolyPressure,
			PerNotePitchBend:            full.PerNotePitchBend,
			RegisteredPerNoteController: full.RegisteredPerNoteController,
			AssignablePerNoteController: full.AssignablePerNoteController,
		})
	case KindPIMMReportEnd:
		d.handlers.MIDIMessageReportEnd(h, MIDIMessageReportEnd{})

	default:
		d.handlers.Unknown(h)
	}
}

func decodeProfileWithChannels(version uint8, b []byte) (ProfileID, uint16) {
	var pid ProfileID
	copy(pid[:], b[0:5])
	var nc uint16
	if version >= 2 && len(b) >= 7 {
		nc, _ = bitfield.FromLE7x2([2]byte{b[5], b[6]})
	}
	return pid, nc
}

func decodeAckBody(b []byte) (Ack, error) {
	n, err := bitfield.FromLE7x2([2]byte{b[8], b[9]})
	if err != nil {
		return Ack{}, err
	}
	var details [5]byte
	copy(details[:], b[3:8])
	return Ack{
		OriginalKind: MessageKind(b[0]),
		StatusCode:   b[1],
		StatusData:   b[2],
		Details:      details,
		Message:      cloneBytes(b[10 : 10+int(n)]),
	}, nil
}

func decodePropertyExchange(kind MessageKind, b []byte) (PropertyExchangeMessage, error) {
	headerLen, err := bitfield.FromLE7x2([2]byte{b[1], b[2]})
	if err != nil {
		return PropertyExchangeMessage{}, err
	}
	header := cloneBytes(b[3 : 3+int(headerLen)])
	rest := b[3+int(headerLen):]
	numChunks, err := bitfield.FromLE7x2([2]byte{rest[0], rest[1]})
	if err != nil {
		return PropertyExchangeMessage{}, err
	}
	chunkNumber, err := bitfield.FromLE7x2([2]byte{rest[2], rest[3]})
	if err != nil {
		return PropertyExchangeMessage{}, err
	}
	dataLen, err := bitfield.FromLE7x2([2]byte{rest[4], rest[5]})
	if err != nil {
		return PropertyExchangeMessage{}, err
	}
	data := cloneBytes(rest[6 : 6+int(dataLen)])

	var kindEnum PropertyExchangeKind
	switch kind {
	case KindPEGet:
		kindEnum = PEGet
	case KindPEGetReply:
		kindEnum = PEGetReply
	case KindPESet:
		kindEnum = PESet
	case KindPESetReply:
		kindEnum = PESetReply
	case KindPESub:
		kindEnum = PESubscribe
	case KindPESubReply:
		kindEnum = PESubscribeReply
	default:
		kindEnum = PENotify
	}

	return PropertyExchangeMessage{
		Kind:      kindEnum,
		Chunk:     ChunkInfo{NumChunks: numChunks, ChunkNumber: chunkNumber},
		RequestID: b[0],
		Header:    header,
		Data:      data,
	}, nil
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
