package ci_test

import (
	"testing"

	"github.com/go-midi2/midi2core/internal/bitfield"
	"github.com/go-midi2/midi2core/internal/ci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandlers struct {
	ci.NullHandlers
	discovery      []ci.Discovery
	unknown        int
	bufferOverflow int
	nak            []ci.Nak
	profileReply   []ci.ProfileInquiryReply
	pe             []ci.PropertyExchangeMessage
}

func (r *recordingHandlers) Discovery(_ ci.Header, d ci.Discovery) { r.discovery = append(r.discovery, d) }
func (r *recordingHandlers) Unknown(ci.Header)                     { r.unknown++ }
func (r *recordingHandlers) BufferOverflow()                       { r.bufferOverflow++ }
func (r *recordingHandlers) Nak(_ ci.Header, n ci.Nak)             { r.nak = append(r.nak, n) }
func (r *recordingHandlers) ProfileInquiryReply(_ ci.Header, p ci.ProfileInquiryReply) {
	r.profileReply = append(r.profileReply, p)
}
func (r *recordingHandlers) PropertyExchange(_ ci.Header, p ci.PropertyExchangeMessage) {
	r.pe = append(r.pe, p)
}

func push(d *ci.Dispatcher, b []byte) {
	for _, x := range b {
		d.Push(x)
	}
}

func encodeHeader(t *testing.T, kind ci.MessageKind, version uint8, src, dst uint32) []byte {
	t.Helper()
	h := ci.Header{DeviceID: 0x7F, Kind: kind, Version: version, SourceMUID: src, DestMUID: dst}
	return h.Encode()
}

func TestDiscoveryV2BroadcastDispatchesOnce(t *testing.T) {
	t.Parallel()
	r := &recordingHandlers{}
	d := ci.NewDispatcher(0, r, nil)

	msg := append([]byte{}, encodeHeader(t, ci.KindDiscovery, 2, 0, ci.BroadcastMUID)...)
	family := bitfield.ToLE7x2(0x3CE7)
	model := bitfield.ToLE7x2(0x2EEB)
	maxSysEx := bitfield.ToLE7(0x02143456)
	msg = append(msg, 0x12, 0x23, 0x34)
	msg = append(msg, family[:]...)
	msg = append(msg, model[:]...)
	msg = append(msg, 0x4E, 0x3C, 0x2A, 0x18)
	msg = append(msg, 0x7F)
	msg = append(msg, maxSysEx[:]...)
	msg = append(msg, 0x71)

	push(d, msg)

	require.Len(t, r.discovery, 1)
	got := r.discovery[0]
	assert.Equal(t, [3]uint8{0x12, 0x23, 0x34}, got.Manufacturer)
	assert.Equal(t, uint16(0x3CE7), got.Family)
	assert.Equal(t, uint16(0x2EEB), got.Model)
	assert.Equal(t, [4]uint8{0x4E, 0x3C, 0x2A, 0x18}, got.Version)
	assert.Equal(t, uint8(0x7F), got.Capability)
	assert.Equal(t, uint32(0x02143456), got.MaxSysExSize)
	assert.Equal(t, uint8(0x71), got.OutputPathID)
	assert.Zero(t, r.unknown)
	assert.Zero(t, r.bufferOverflow)
}

func TestUnknownKindResetsWithoutConsumingBody(t *testing.T) {
	t.Parallel()
	r := &recordingHandlers{}
	d := ci.NewDispatcher(0, r, nil)

	msg := encodeHeader(t, ci.MessageKind(0x5A), 2, 0, ci.BroadcastMUID)
	push(d, msg)
	assert.Equal(t, 1, r.unknown)

	// The unknown message's would-be body is misread as the next header;
	// feeding a real discovery message right after it must still decode,
	// proving the dispatcher did not try to swallow an unknown body.
	discovery := append([]byte{}, encodeHeader(t, ci.KindDiscovery, 1, 1, ci.BroadcastMUID)...)
	family := bitfield.ToLE7x2(1)
	model := bitfield.ToLE7x2(1)
	maxSysEx := bitfield.ToLE7(1)
	discovery = append(discovery, 1, 2, 3)
	discovery = append(discovery, family[:]...)
	discovery = append(discovery, model[:]...)
	discovery = append(discovery, 1, 1, 1, 1)
	discovery = append(discovery, 0x7F)
	discovery = append(discovery, maxSysEx[:]...)
	push(d, discovery)

	require.Len(t, r.discovery, 1)
}

func TestMUIDFilteredMessageStillConsumesKnownLength(t *testing.T) {
	t.Parallel()
	r := &recordingHandlers{}
	d := ci.NewDispatcher(0, r, func(group uint8, muid uint32) bool { return false })

	msg := append([]byte{}, encodeHeader(t, ci.KindDiscovery, 1, 0, 0x1234)...)
	family := bitfield.ToLE7x2(1)
	model := bitfield.ToLE7x2(1)
	maxSysEx := bitfield.ToLE7(1)
	msg = append(msg, 1, 2, 3)
	msg = append(msg, family[:]...)
	msg = append(msg, model[:]...)
	msg = append(msg, 1, 1, 1, 1)
	msg = append(msg, 0x7F)
	msg = append(msg, maxSysEx[:]...)
	push(d, msg)
	assert.Empty(t, r.discovery)

	// A subsequent well-formed broadcast discovery must decode cleanly,
	// proving the filtered message's bytes were fully (and correctly)
	// consumed rather than left to desync the next header.
	good := append([]byte{}, encodeHeader(t, ci.KindDiscovery, 1, 0, ci.BroadcastMUID)...)
	good = append(good, 1, 2, 3)
	good = append(good, family[:]...)
	good = append(good, model[:]...)
	good = append(good, 1, 1, 1, 1)
	good = append(good, 0x7F)
	good = append(good, maxSysEx[:]...)
	push(d, good)
	require.Len(t, r.discovery, 1)
}

func TestNakV1HasNoBodyAndV2CarriesMessage(t *testing.T) {
	t.Parallel()
	r := &recordingHandlers{}
	d := ci.NewDispatcher(0, r, nil)

	v1 := encodeHeader(t, ci.KindNak, 1, 1, ci.BroadcastMUID)
	push(d, v1)
	require.Len(t, r.nak, 1)
	assert.Equal(t, uint8(1), r.nak[0].Version)
	assert.Empty(t, r.nak[0].Message)

	v2 := append([]byte{}, encodeHeader(t, ci.KindNak, 2, 1, ci.BroadcastMUID)...)
	v2 = append(v2, 0x70, 0x01, 0x00, 0, 0, 0, 0, 0)
	msgLen := bitfield.ToLE7x2(3)
	v2 = append(v2, msgLen[:]...)
	v2 = append(v2, 'b', 'a', 'd')
	push(d, v2)
	require.Len(t, r.nak, 2)
	assert.Equal(t, uint8(2), r.nak[1].Version)
	assert.Equal(t, []byte("bad"), r.nak[1].Message)
}

func TestProfileInquiryReplyDecodesBothLists(t *testing.T) {
	t.Parallel()
	r := &recordingHandlers{}
	d := ci.NewDispatcher(0, r, nil)

	msg := append([]byte{}, encodeHeader(t, ci.KindProfileInquiryReply, 1, 0, ci.BroadcastMUID)...)
	enabledCount := bitfield.ToLE7x2(1)
	disabledCount := bitfield.ToLE7x2(2)
	pidA := ci.ProfileID{1, 2, 3, 4, 5}
	pidB := ci.ProfileID{6, 6, 6, 6, 6}
	pidC := ci.ProfileID{7, 7, 7, 7, 7}
	msg = append(msg, enabledCount[:]...)
	msg = append(msg, pidA[:]...)
	msg = append(msg, disabledCount[:]...)
	msg = append(msg, pidB[:]...)
	msg = append(msg, pidC[:]...)
	push(d, msg)

	require.Len(t, r.profileReply, 1)
	assert.Equal(t, []ci.ProfileID{{1, 2, 3, 4, 5}}, r.profileReply[0].Enabled)
	assert.Equal(t, []ci.ProfileID{{6, 6, 6, 6, 6}, {7, 7, 7, 7, 7}}, r.profileReply[0].Disabled)
}

func TestPropertyExchangeGetDecodesHeaderAndData(t *testing.T) {
	t.Parallel()
	r := &recordingHandlers{}
	d := ci.NewDispatcher(0, r, nil)

	header := []byte(`{"resource":"X"}`)
	data := []byte(`{"v":1}`)
	msg := append([]byte{}, encodeHeader(t, ci.KindPEGet, 2, 0, ci.BroadcastMUID)...)
	msg = append(msg, 0x01)
	hl := bitfield.ToLE7x2(uint16(len(header)))
	msg = append(msg, hl[:]...)
	msg = append(msg, header...)
	nc := bitfield.ToLE7x2(1)
	cn := bitfield.ToLE7x2(1)
	msg = append(msg, nc[:]...)
	msg = append(msg, cn[:]...)
	dl := bitfield.ToLE7x2(uint16(len(data)))
	msg = append(msg, dl[:]...)
	msg = append(msg, data...)
	push(d, msg)

	require.Len(t, r.pe, 1)
	got := r.pe[0]
	assert.Equal(t, ci.PEGet, got.Kind)
	assert.Equal(t, uint8(0x01), got.RequestID)
	assert.Equal(t, header, got.Header)
	assert.Equal(t, data, got.Data)
	assert.Equal(t, ci.ChunkInfo{NumChunks: 1, ChunkNumber: 1}, got.Chunk)
}

func TestBufferOverflowOnOversizedTail(t *testing.T) {
	t.Parallel()
	r := &recordingHandlers{}
	d := ci.NewDispatcher(0, r, nil)

	msg := append([]byte{}, encodeHeader(t, ci.KindProfileSpecificData, 1, 0, ci.BroadcastMUID)...)
	pid := ci.ProfileID{1, 2, 3, 4, 5}
	msg = append(msg, pid[:]...)
	n := bitfield.ToLE7x2(0x3FFF)
	msg = append(msg, n[:]...)
	push(d, msg)

	assert.Equal(t, 1, r.bufferOverflow)
}
