package http3

import (
	"fmt"
	"io"

	"github.com/quic-go/quic-go/quicvarint"
)

// FrameType is the varint frame type prefix defined by RFC 9114 section 7.2.
type FrameType uint64

const (
	FrameTypeData        FrameType = 0x0
	FrameTypeHeaders     FrameType = 0x1
	FrameTypeCancelPush  FrameType = 0x3
	FrameTypeSettings    FrameType = 0x4
	FrameTypePushPromise FrameType = 0x5
	FrameTypeGoaway      FrameType = 0x7
	FrameTypeMaxPushID   FrameType = 0xd
)

func (t FrameType) String() string {
	switch t {
	case FrameTypeData:
		return "DATA"
	case FrameTypeHeaders:
		return "HEADERS"
	case FrameTypeCancelPush:
		return "CANCEL_PUSH"
	case FrameTypeSettings:
		return "SETTINGS"
	case FrameTypePushPromise:
		return "PUSH_PROMISE"
	case FrameTypeGoaway:
		return "GOAWAY"
	case FrameTypeMaxPushID:
		return "MAX_PUSH_ID"
	default:
		return fmt.Sprintf("frame type %#x", uint64(t))
	}
}

// Frame is any parsed HTTP/3 frame header. DATA, HEADERS and PUSH_PROMISE
// carry only their length: their payload is left on the wire for the
// caller to stream, rather than buffered here.
type Frame interface {
	frameType() FrameType
}

type dataFrame struct{ Length uint64 }
type headersFrame struct{ Length uint64 }
type pushPromiseFrame struct {
	PushID uint64
	Length uint64 // remaining length of the encoded header block
}
type goawayFrame struct{ StreamID uint64 }
type cancelPushFrame struct{ PushID uint64 }
type maxPushIDFrame struct{ ID uint64 }

// unknownFrame is any frame type this core doesn't assign meaning to.
// RFC 9114 section 9 permits, and HTTP/3 grease (draft-nottingham) uses,
// frame types receivers have never heard of; they are surfaced here
// rather than silently discarded because the control-stream state
// machine in this core treats them as a protocol violation (spec
// section 4.2's frame table lists "reserved types on control" as
// H3_FRAME_UNEXPECTED, not as something to skip).
type unknownFrame struct {
	Type   FrameType
	Length uint64
}

func (dataFrame) frameType() FrameType        { return FrameTypeData }
func (headersFrame) frameType() FrameType     { return FrameTypeHeaders }
func (pushPromiseFrame) frameType() FrameType { return FrameTypePushPromise }
func (goawayFrame) frameType() FrameType      { return FrameTypeGoaway }
func (cancelPushFrame) frameType() FrameType  { return FrameTypeCancelPush }
func (maxPushIDFrame) frameType() FrameType   { return FrameTypeMaxPushID }
func (f unknownFrame) frameType() FrameType   { return f.Type }

// maxControlFrameSize bounds how much of a SETTINGS payload we will
// buffer fully, guarding against a peer claiming an enormous control
// frame length. CANCEL_PUSH, GOAWAY and MAX_PUSH_ID are not buffered:
// their single varint is read directly and their length is not checked.
const maxControlFrameSize = 8 << 10

// frameParser reads a sequence of HTTP/3 frames off a single QUIC stream.
// It is deliberately thin: byte-level varint decoding is delegated to
// quicvarint, the same collaborator the teacher uses for stream-type
// markers and SETTINGS frames.
type frameParser struct {
	r  io.Reader
	vr io.ByteReader
}

func newFrameParser(r io.Reader) *frameParser {
	return &frameParser{r: r, vr: quicvarint.NewReader(r)}
}

// Next parses the next frame header. For DATA, HEADERS and PUSH_PROMISE it
// does not consume the payload; the caller reads exactly the returned
// frame's Length bytes from the underlying stream before calling Next
// again (for PUSH_PROMISE, Length already excludes the push ID consumed
// here).
func (p *frameParser) Next() (Frame, error) {
	t, err := quicvarint.Read(p.vr)
	if err != nil {
		return nil, err
	}
	length, err := quicvarint.Read(p.vr)
	if err != nil {
		return nil, err
	}
	switch FrameType(t) {
	case FrameTypeData:
		return dataFrame{Length: length}, nil
	case FrameTypeHeaders:
		return headersFrame{Length: length}, nil
	case FrameTypePushPromise:
		pushID, err := quicvarint.Read(p.vr)
		if err != nil {
			return nil, err
		}
		consumed := varintLen(pushID)
		if length < consumed {
			return nil, fmt.Errorf("http3: PUSH_PROMISE frame too short for push ID")
		}
		return pushPromiseFrame{PushID: pushID, Length: length - consumed}, nil
	case FrameTypeSettings:
		return p.parseSettings(length)
	case FrameTypeGoaway:
		id, err := quicvarint.Read(p.vr)
		if err != nil {
			return nil, err
		}
		return goawayFrame{StreamID: id}, nil
	case FrameTypeCancelPush:
		id, err := quicvarint.Read(p.vr)
		if err != nil {
			return nil, err
		}
		return cancelPushFrame{PushID: id}, nil
	case FrameTypeMaxPushID:
		id, err := quicvarint.Read(p.vr)
		if err != nil {
			return nil, err
		}
		return maxPushIDFrame{ID: id}, nil
	default:
		return unknownFrame{Type: FrameType(t), Length: length}, nil
	}
}

func (p *frameParser) parseSettings(length uint64) (Frame, error) {
	if length > maxControlFrameSize {
		return nil, fmt.Errorf("http3: SETTINGS frame too large: %d bytes", length)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(p.r, buf); err != nil {
		return nil, err
	}
	return parseSettingsPayload(buf)
}

// appendVarintFrameHeader writes a frame's type and length prefix.
func appendVarintFrameHeader(b []byte, t FrameType, length uint64) []byte {
	b = quicvarint.Append(b, uint64(t))
	b = quicvarint.Append(b, length)
	return b
}

// varintLen reports how many bytes v would occupy as a QUIC variable-length
// integer, without depending on quicvarint exposing that directly.
func varintLen(v uint64) uint64 {
	return uint64(len(quicvarint.Append(nil, v)))
}
