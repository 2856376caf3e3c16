package ci

import "github.com/go-midi2/midi2core/internal/bitfield"

// ScratchBufferSize bounds the dispatcher's incremental accumulation buffer
// (header plus fixed part plus variable tails).
const ScratchBufferSize = 512

type tailKind int

const (
	tailNone tailKind = iota
	tailLenPrefixed
	tailProfileInquiryReply
	tailPropertyExchange
)

type verEntry struct {
	size int
	tail tailKind
}

type kindEntry struct {
	v1, v2 verEntry
}

// table mirrors original_source's midiCIProcessor::header() message_dispatch_info
// array: per (kind, version) fixed-prefix size plus the tail shape needed to
// find the rest of a variable-length message.
var table = map[MessageKind]kindEntry{
	KindDiscovery:      {verEntry{discoveryV1Size, tailNone}, verEntry{discoveryV2Size, tailNone}},
	KindDiscoveryReply: {verEntry{discoveryReplyV1Size, tailNone}, verEntry{discoveryReplyV2Size, tailNone}},
	KindEndpointInfo:   {verEntry{1, tailNone}, verEntry{1, tailNone}},
	KindEndpointInfoReply: {verEntry{3, tailLenPrefixed}, verEntry{3, tailLenPrefixed}},
	KindAck:            {verEntry{10, tailLenPrefixed}, verEntry{10, tailLenPrefixed}},
	KindInvalidateMUID: {verEntry{4, tailNone}, verEntry{4, tailNone}},
	KindNak:            {verEntry{0, tailNone}, verEntry{10, tailLenPrefixed}},

	KindProfileInquiry:      {verEntry{0, tailNone}, verEntry{0, tailNone}},
	KindProfileInquiryReply: {verEntry{2, tailProfileInquiryReply}, verEntry{2, tailProfileInquiryReply}},
	KindProfileSetOn:        {verEntry{5, tailNone}, verEntry{7, tailNone}},
	KindProfileSetOff:       {verEntry{5, tailNone}, verEntry{7, tailNone}},
	KindProfileEnabled:      {verEntry{5, tailNone}, verEntry{7, tailNone}},
	KindProfileDisabled:     {verEntry{5, tailNone}, verEntry{7, tailNone}},
	KindProfileAdded:        {verEntry{5, tailNone}, verEntry{5, tailNone}},
	KindProfileRemoved:      {verEntry{5, tailNone}, verEntry{5, tailNone}},
	KindProfileDetails:      {verEntry{6, tailNone}, verEntry{6, tailNone}},
	KindProfileDetailsReply: {verEntry{8, tailLenPrefixed}, verEntry{8, tailLenPrefixed}},
	KindProfileSpecificData: {verEntry{7, tailLenPrefixed}, verEntry{7, tailLenPrefixed}},

	KindPECapability:      {verEntry{1, tailNone}, verEntry{3, tailNone}},
	KindPECapabilityReply: {verEntry{1, tailNone}, verEntry{3, tailNone}},
	KindPEGet:             {verEntry{3, tailPropertyExchange}, verEntry{3, tailPropertyExchange}},
	KindPEGetReply:        {verEntry{3, tailPropertyExchange}, verEntry{3, tailPropertyExchange}},
	KindPESet:             {verEntry{3, tailPropertyExchange}, verEntry{3, tailPropertyExchange}},
	KindPESetReply:        {verEntry{3, tailPropertyExchange}, verEntry{3, tailPropertyExchange}},
	KindPESub:             {verEntry{3, tailPropertyExchange}, verEntry{3, tailPropertyExchange}},
	KindPESubReply:        {verEntry{3, tailPropertyExchange}, verEntry{3, tailPropertyExchange}},
	KindPENotify:          {verEntry{3, tailPropertyExchange}, verEntry{3, tailPropertyExchange}},

	KindPICapability:      {verEntry{0, tailNone}, verEntry{0, tailNone}},
	KindPICapabilityReply: {verEntry{0, tailNone}, verEntry{1, tailNone}},
	KindPIMMReport:        {verEntry{0, tailNone}, verEntry{5, tailNone}},
	KindPIMMReportReply:   {verEntry{0, tailNone}, verEntry{4, tailNone}},
	KindPIMMReportEnd:     {verEntry{0, tailNone}, verEntry{0, tailNone}},
}

// Dispatcher incrementally parses one MIDI-CI message at a time from a byte
// stream (the reassembled payload of a legacy or UMP SysEx), dispatching the
// decoded, address-accepted result to Handlers.
type Dispatcher struct {
	handlers  Handlers
	checkMUID func(group uint8, muid uint32) bool
	group     uint8

	buf       []byte
	header    Header
	ver       verEntry
	tailKind  tailKind
	targetLen int
	stage     int
	dropping  bool
}

// NewDispatcher returns a dispatcher for the given group that invokes h for
// every decoded message. checkMUID may be nil, in which case every
// non-broadcast destination is accepted (equivalent to always returning true).
func NewDispatcher(group uint8, h Handlers, checkMUID func(group uint8, muid uint32) bool) *Dispatcher {
	return &Dispatcher{handlers: h, checkMUID: checkMUID, group: group}
}

func (d *Dispatcher) reset() {
	d.buf = d.buf[:0]
	d.header = Header{}
	d.tailKind = tailNone
	d.targetLen = 0
	d.stage = 0
	d.dropping = false
}

// Push feeds one byte of a MIDI-CI SysEx payload (after any F0/F7 and
// universal-SysEx-specific framing beyond the 0x7E/device-id/0x0D prefix has
// already been stripped by the caller's transport layer).
func (d *Dispatcher) Push(b byte) {
	if len(d.buf) >= ScratchBufferSize {
		d.handlers.BufferOverflow()
		d.reset()
		return
	}
	d.buf = append(d.buf, b)

	if len(d.buf) < HeaderSize {
		return
	}
	if d.header == (Header{}) && len(d.buf) == HeaderSize {
		hdr, err := ParseHeader(d.buf)
		if err != nil {
			d.handlers.Unknown(Header{})
			d.reset()
			return
		}
		ent, ok := table[hdr.Kind]
		if !ok {
			d.handlers.Unknown(hdr)
			d.reset()
			return
		}
		d.header = hdr
		d.ver = ent.v1
		if hdr.Version >= 2 {
			d.ver = ent.v2
		}
		d.tailKind = d.ver.tail
		d.dropping = !hdr.Broadcast() && d.checkMUID != nil && !d.checkMUID(d.group, hdr.DestMUID)

		if d.ver.size == 0 && d.tailKind == tailNone {
			d.finish()
			return
		}
		d.targetLen = HeaderSize
		if !d.growTarget(d.ver.size) {
			return
		}
	}

	if d.header == (Header{}) || len(d.buf) < d.targetLen {
		return
	}
	d.advance()
}

// growTarget extends targetLen by extra bytes, checking the scratch bound.
// Returns false (after signalling overflow and resetting) if the bound would
// be exceeded.
func (d *Dispatcher) growTarget(extra int) bool {
	d.targetLen += extra
	if d.targetLen > ScratchBufferSize {
		d.handlers.BufferOverflow()
		d.reset()
		return false
	}
	return true
}

func (d *Dispatcher) body() []byte { return d.buf[HeaderSize:] }

func (d *Dispatcher) advance() {
	switch d.tailKind {
	case tailNone:
		d.finish()

	case tailLenPrefixed:
		if d.stage == 0 {
			b := d.body()
			n, err := bitfield.FromLE7x2([2]byte{b[len(b)-2], b[len(b)-1]})
			if err != nil {
				d.reset()
				return
			}
			d.stage = 1
			if n == 0 || !d.growTarget(int(n)) {
				if n == 0 {
					d.finish()
				}
				return
			}
			return
		}
		d.finish()

	case tailProfileInquiryReply:
		b := d.body()
		switch d.stage {
		case 0:
			n, err := bitfield.FromLE7x2([2]byte{b[0], b[1]})
			if err != nil {
				d.reset()
				return
			}
			d.stage = 1
			if n == 0 {
				d.advanceProfileInquiryReplyStage1()
				return
			}
			d.growTarget(int(n) * 5)
		case 1:
			d.advanceProfileInquiryReplyStage1()
		case 2:
			enabledLen, _ := bitfield.FromLE7x2([2]byte{b[0], b[1]})
			disabledOffset := 2 + int(enabledLen)*5
			n, err := bitfield.FromLE7x2([2]byte{b[disabledOffset], b[disabledOffset+1]})
			if err != nil {
				d.reset()
				return
			}
			d.stage = 3
			if n == 0 {
				d.finish()
				return
			}
			d.growTarget(int(n) * 5)
		case 3:
			d.finish()
		}

	case tailPropertyExchange:
		b := d.body()
		switch d.stage {
		case 0:
			n, err := bitfield.FromLE7x2([2]byte{b[1], b[2]})
			if err != nil {
				d.reset()
				return
			}
			d.stage = 1
			if n == 0 {
				d.advancePropertyExchangeStage1()
				return
			}
			d.growTarget(int(n))
		case 1:
			d.advancePropertyExchangeStage1()
		case 2:
			headerLen, _ := bitfield.FromLE7x2([2]byte{b[1], b[2]})
			base := 3 + int(headerLen)
			n, err := bitfield.FromLE7x2([2]byte{b[base+4], b[base+5]})
			if err != nil {
				d.reset()
				return
			}
			d.stage = 3
			if n == 0 {
				d.finish()
				return
			}
			d.growTarget(int(n))
		case 3:
			d.finish()
		}
	}
}

func (d *Dispatcher) advanceProfileInquiryReplyStage1() {
	d.stage = 2
	d.growTarget(2)
}

func (d *Dispatcher) advancePropertyExchangeStage1() {
	d.stage = 2
	d.growTarget(6)
}

func (d *Dispatcher) finish() {
	if !d.dropping {
		d.dispatch()
	}
	d.reset()
}
