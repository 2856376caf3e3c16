package ci

import "github.com/go-midi2/midi2core/internal/bitfield"

// ProfileID is the 5-byte identifier of a MIDI-CI profile.
type ProfileID [5]byte

// ProfileInquiry requests the list of enabled/disabled profiles. It carries
// no body.
type ProfileInquiry struct{}

// ProfileInquiryReply lists the currently enabled and disabled profiles as
// two length-prefixed ID arrays (original_source's inquiry_reply_v1_pt1/pt2).
type ProfileInquiryReply struct {
	Enabled  []ProfileID
	Disabled []ProfileID
}

func decodeProfileIDList(b []byte) ([]ProfileID, int, error) {
	n, err := bitfield.FromLE7x2([2]byte{b[0], b[1]})
	if err != nil {
		return nil, 0, err
	}
	ids := make([]ProfileID, n)
	for i := range ids {
		copy(ids[i][:], b[2+i*5:2+i*5+5])
	}
	return ids, 2 + int(n)*5, nil
}

// ProfileOn requests that the profile pid be enabled, optionally over
// NumChannels channels (v2 only; 0 on a v1 message).
type ProfileOn struct {
	PID         ProfileID
	NumChannels uint16
}

// ProfileOff requests that the profile pid be disabled.
type ProfileOff struct {
	PID ProfileID
}

// ProfileEnabled announces that pid is now enabled.
type ProfileEnabled struct {
	PID         ProfileID
	NumChannels uint16
}

// ProfileDisabled announces that pid is now disabled.
type ProfileDisabled struct {
	PID         ProfileID
	NumChannels uint16
}

// ProfileAdded announces a newly available profile.
type ProfileAdded struct {
	PID ProfileID
}

// ProfileRemoved announces a profile is no longer available.
type ProfileRemoved struct {
	PID ProfileID
}

// ProfileDetails requests profile-specific detail data for the given target.
type ProfileDetails struct {
	PID    ProfileID
	Target uint8
}

// ProfileDetailsReply carries the requested detail data.
type ProfileDetailsReply struct {
	PID    ProfileID
	Target uint8
	Data   []byte
}

// ProfileSpecificData carries opaque profile-specific payload bytes.
type ProfileSpecificData struct {
	PID  ProfileID
	Data []byte
}
