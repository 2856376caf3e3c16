package ci

// Handlers receives one call per successfully decoded and address-accepted
// MIDI-CI message. Implementations should embed NullHandlers and override
// only the families they care about, mirroring internal/ump's Handlers.
type Handlers interface {
	Discovery(Header, Discovery)
	DiscoveryReply(Header, DiscoveryReply)
	EndpointInfo(Header, EndpointInfo)
	EndpointInfoReply(Header, EndpointInfoReply)
	InvalidateMUID(Header, InvalidateMUID)
	Ack(Header, Ack)
	Nak(Header, Nak)

	ProfileInquiry(Header, ProfileInquiry)
	ProfileInquiryReply(Header, ProfileInquiryReply)
	ProfileOn(Header, ProfileOn)
	ProfileOff(Header, ProfileOff)
	ProfileEnabled(Header, ProfileEnabled)
	ProfileDisabled(Header, ProfileDisabled)
	ProfileAdded(Header, ProfileAdded)
	ProfileRemoved(Header, ProfileRemoved)
	ProfileDetails(Header, ProfileDetails)
	ProfileDetailsReply(Header, ProfileDetailsReply)
	ProfileSpecificData(Header, ProfileSpecificData)

	PECapabilities(Header, PECapabilities)
	PECapabilitiesReply(Header, PECapabilitiesReply)
	PropertyExchange(Header, PropertyExchangeMessage)

	PICapabilities(Header, PICapabilities)
	PICapabilitiesReply(Header, PICapabilitiesReply)
	MIDIMessageReport(Header, MIDIMessageReport)
	MIDIMessageReportReply(Header, MIDIMessageReportReply)
	MIDIMessageReportEnd(Header, MIDIMessageReportEnd)

	// Unknown is invoked for a message kind absent from the dispatch table.
	Unknown(Header)
	// BufferOverflow is invoked when the 512-byte scratch buffer would be
	// exceeded; the dispatcher discards until the next header.
	BufferOverflow()
}

// NullHandlers implements Handlers with every method a no-op.
type NullHandlers struct{}

func (NullHandlers) Discovery(Header, Discovery)                       {}
func (NullHandlers) DiscoveryReply(Header, DiscoveryReply)              {}
func (NullHandlers) EndpointInfo(Header, EndpointInfo)                  {}
func (NullHandlers) EndpointInfoReply(Header, EndpointInfoReply)        {}
func (NullHandlers) InvalidateMUID(Header, InvalidateMUID)              {}
func (NullHandlers) Ack(Header, Ack)                                    {}
func (NullHandlers) Nak(Header, Nak)                                    {}
func (NullHandlers) ProfileInquiry(Header, ProfileInquiry)              {}
func (NullHandlers) ProfileInquiryReply(Header, ProfileInquiryReply)    {}
func (NullHandlers) ProfileOn(Header, ProfileOn)                        {}
func (NullHandlers) ProfileOff(Header, ProfileOff)                      {}
func (NullHandlers) ProfileEnabled(Header, ProfileEnabled)              {}
func (NullHandlers) ProfileDisabled(Header, ProfileDisabled)            {}
func (NullHandlers) ProfileAdded(Header, ProfileAdded)                  {}
func (NullHandlers) ProfileRemoved(Header, ProfileRemoved)              {}
func (NullHandlers) ProfileDetails(Header, ProfileDetails)              {}
func (NullHandlers) ProfileDetailsReply(Header, ProfileDetailsReply)    {}
func (NullHandlers) ProfileSpecificData(Header, ProfileSpecificData)    {}
func (NullHandlers) PECapabilities(Header, PECapabilities)              {}
func (NullHandlers) PECapabilitiesReply(Header, PECapabilitiesReply)    {}
func (NullHandlers) PropertyExchange(Header, PropertyExchangeMessage)   {}
func (NullHandlers) PICapabilities(Header, PICapabilities)              {}
func (NullHandlers) PICapabilitiesReply(Header, PICapabilitiesReply)    {}
func (NullHandlers) MIDIMessageReport(Header, MIDIMessageReport)        {}
func (NullHandlers) MIDIMessageReportReply(Header, MIDIMessageReportReply) {}
func (NullHandlers) MIDIMessageReportEnd(Header, MIDIMessageReportEnd)  {}
func (NullHandlers) Unknown(Header)                                     {}
func (NullHandlers) BufferOverflow()                                    {}
