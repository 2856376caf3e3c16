// SPDX-License-Identifier: MIT
// Package ci implements the MIDI-CI (Capability Inquiry) message parser: a
// 13-byte fixed header followed by a message-kind- and version-specific
// payload, optionally trailed by one or two length-prefixed variable tails,
// carried as a 7-bit-safe legacy SysEx or UMP SysEx7 payload.
package ci

import (
	"errors"

	"github.com/go-midi2/midi2core/internal/bitfield"
)

const (
	// SysExUniversalNonRealTime is the Universal Non-Real-Time SysEx ID
	// that frames every MIDI-CI message.
	SysExUniversalNonRealTime uint8 = 0x7E
	// SubID1MIDICI is the fixed Universal SysEx sub-ID #1 identifying the
	// payload as a MIDI-CI message.
	SubID1MIDICI uint8 = 0x0D
)

// BroadcastMUID is the reserved MUID meaning "every device"; destination
// addressing always accepts it regardless of check_muid.
const BroadcastMUID uint32 = 0x0FFFFFFF

// HeaderSize is the fixed 13-byte MIDI-CI header: universal sysex id (0x7E),
// device id, sysex sub-id #1 (0x0D), message kind (sub-id #2), version, source MUID
// (4x7-bit LE), destination MUID (4x7-bit LE).
const HeaderSize = 13

// ErrBadFraming is returned when the leading two framing bytes are not the
// expected Universal Non-Real-Time / MIDI-CI sub-ID pair.
var ErrBadFraming = errors.New("ci: expected 0x7E/0x0D MIDI-CI SysEx framing")

// Header is the fixed prefix common to every MIDI-CI message.
type Header struct {
	DeviceID   uint8
	Kind       MessageKind
	Version    uint8
	SourceMUID uint32
	DestMUID   uint32
}

// Broadcast reports whether the header addresses every device.
func (h Header) Broadcast() bool { return h.DestMUID == BroadcastMUID }

// ParseHeader decodes the first HeaderSize bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, errors.New("ci: short header")
	}
	if b[0] != SysExUniversalNonRealTime || b[2] != SubID1MIDICI {
		return Header{}, ErrBadFraming
	}
	var src, dst [4]byte
	copy(src[:], b[5:9])
	copy(dst[:], b[9:13])
	srcMUID, err := bitfield.FromLE7(src)
	if err != nil {
		return Header{}, err
	}
	dstMUID, err := bitfield.FromLE7(dst)
	if err != nil {
		return Header{}, err
	}
	return Header{
		DeviceID:   b[1],
		Kind:       MessageKind(b[3]),
		Version:    b[4],
		SourceMUID: srcMUID,
		DestMUID:   dstMUID,
	}, nil
}

// Encode emits the 13-byte wire form of h.
func (h Header) Encode() []byte {
	b := make([]byte, HeaderSize)
	b[0] = SysExUniversalNonRealTime
	b[1] = h.DeviceID
	b[2] = SubID1MIDICI
	b[3] = uint8(h.Kind)
	b[4] = h.Version
	src := bitfield.ToLE7(h.SourceMUID)
	dst := bitfield.ToLE7(h.DestMUID)
	copy(b[5:9], src[:])
	copy(b[9:13], dst[:])
	return b
}
