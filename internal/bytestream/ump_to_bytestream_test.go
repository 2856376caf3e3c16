package bytestream_test

import (
	"testing"

	"github.com/go-midi2/midi2core/internal/bytestream"
	"github.com/go-midi2/midi2core/internal/ump"
	"github.com/stretchr/testify/assert"
)

func drainBytes(u *bytestream.UMPToBytes) []byte {
	var out []byte
	for {
		b, ok := u.Pop()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return out
}

func TestUMPToBytesRunningStatusElision(t *testing.T) {
	t.Parallel()
	u := bytestream.NewUMPToBytes()
	u.Push(0x20816050)
	u.Push(0x20817070)
	assert.Equal(t, []byte{0x81, 0x60, 0x50, 0x70, 0x70}, drainBytes(u))
}

func TestUMPToBytesGroupFilterDropsOtherGroups(t *testing.T) {
	t.Parallel()
	u := bytestream.NewUMPToBytes()
	u.SetGroupFilter(1 << 2) // only group 2
	u.Push(0x20816050)       // group 0
	assert.True(t, u.Empty())
}

func TestUMPToBytesSystemRealtimeDoesNotDisturbRunningStatus(t *testing.T) {
	t.Parallel()
	u := bytestream.NewUMPToBytes()
	u.Push(0x20816050)
	u.Push(0x10F80000) // system real-time: timing clock, group 0
	u.Push(0x20816051)
	assert.Equal(t, []byte{0x81, 0x60, 0x50, 0xF8, 0x60, 0x51}, drainBytes(u))
}

func TestUMPToBytesSysEx7ContinueWithoutStartIsDropped(t *testing.T) {
	t.Parallel()
	u := bytestream.NewUMPToBytes()
	msg := ump.SysEx7Message{
		Form:       ump.SysEx7Continue,
		DataLength: 6,
		Data:       [6]byte{1, 2, 3, 4, 5, 6},
	}
	words := msg.Encode()
	u.Push(words[0])
	u.Push(words[1])
	assert.True(t, u.Empty())
}
