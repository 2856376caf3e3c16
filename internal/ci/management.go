package ci

import "github.com/go-midi2/midi2core/internal/bitfield"

// Discovery is the device-identity broadcast that opens a MIDI-CI session.
// Grounded in original_source's ci::packed::discovery_v1/v2 (manufacturer:3,
// family:2 LE7, model:2 LE7, version:4, capability:1, max_sysex_size:4 LE7,
// v2 adds output_path_id:1 trailing).
type Discovery struct {
	Manufacturer  [3]uint8
	Family        uint16
	Model         uint16
	Version       [4]uint8
	Capability    uint8
	MaxSysExSize  uint32
	OutputPathID  uint8 // v2 only; 0 on a v1 message
}

const discoveryV1Size = 16 // manufacturer(3)+family(2)+model(2)+version(4)+capability(1)+max_sysex_size(4)
const discoveryV2Size = discoveryV1Size + 1

func decodeDiscovery(version uint8, b []byte) (Discovery, error) {
	var d Discovery
	copy(d.Manufacturer[:], b[0:3])
	family, err := bitfield.FromLE7x2([2]byte{b[3], b[4]})
	if err != nil {
		return Discovery{}, err
	}
	model, err := bitfield.FromLE7x2([2]byte{b[5], b[6]})
	if err != nil {
		return Discovery{}, err
	}
	copy(d.Version[:], b[7:11])
	d.Capability = b[11]
	maxSysEx, err := bitfield.FromLE7Slice(b[12:16])
	if err != nil {
		return Discovery{}, err
	}
	d.Family, d.Model, d.MaxSysExSize = family, model, maxSysEx
	if version >= 2 && len(b) > discoveryV1Size {
		d.OutputPathID = b[discoveryV1Size]
	}
	return d, nil
}

// DiscoveryReply answers a Discovery with the same field set.
type DiscoveryReply struct {
	Manufacturer [3]uint8
	Family       uint16
	Model        uint16
	Version      [4]uint8
	Capability   uint8
	MaxSysExSize uint32
	OutputPathID uint8
	FunctionBlock uint8 // v2 only
}

const discoveryReplyV1Size = discoveryV1Size
const discoveryReplyV2Size = discoveryV1Size + 2 // output_path_id + function_block

func decodeDiscoveryReply(version uint8, b []byte) (DiscoveryReply, error) {
	base, err := decodeDiscovery(version, b)
	if err != nil {
		return DiscoveryReply{}, err
	}
	r := DiscoveryReply{
		Manufacturer: base.Manufacturer,
		Family:       base.Family,
		Model:        base.Model,
		Version:      base.Version,
		Capability:   base.Capability,
		MaxSysExSize: base.MaxSysExSize,
	}
	if version >= 2 && len(b) > discoveryV1Size+1 {
		r.OutputPathID = b[discoveryV1Size]
		r.FunctionBlock = b[discoveryV1Size+1]
	}
	return r, nil
}

// EndpointInfo requests a piece of endpoint information by status code.
type EndpointInfo struct {
	Status uint8
}

// EndpointInfoReply carries the requested information bytes.
type EndpointInfoReply struct {
	Status      uint8
	Information []byte
}

// InvalidateMUID announces that a MUID is no longer valid.
type InvalidateMUID struct {
	TargetMUID uint32
}

// Ack acknowledges a prior transaction.
type Ack struct {
	OriginalKind MessageKind
	StatusCode   uint8
	StatusData   uint8
	Details      [5]uint8
	Message      []byte
}

// Nak rejects a prior transaction. V1 carries no body; V2 adds the same
// status/details/message fields as Ack.
type Nak struct {
	Version      uint8
	OriginalKind MessageKind
	StatusCode   uint8
	StatusData   uint8
	Details      [5]uint8
	Message      []byte
}
