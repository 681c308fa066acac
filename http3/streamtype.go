package http3

import "fmt"

// StreamType is the varint that leads every unidirectional HTTP/3 stream,
// identifying the purpose of the stream that follows it.
type StreamType uint64

const (
	StreamTypeControl      StreamType = 0x00
	StreamTypePush         StreamType = 0x01
	StreamTypeQPACKEncoder StreamType = 0x02
	StreamTypeQPACKDecoder StreamType = 0x03
)

func (t StreamType) String() string {
	switch t {
	case StreamTypeControl:
		return "control stream"
	case StreamTypePush:
		return "push stream"
	case StreamTypeQPACKEncoder:
		return "QPACK encoder stream"
	case StreamTypeQPACKDecoder:
		return "QPACK decoder stream"
	default:
		return fmt.Sprintf("unidirectional stream type %#x", uint64(t))
	}
}

// known reports whether t is one of the four stream types HTTP/3 assigns
// meaning to. Anything else is a reserved or grease type.
func (t StreamType) known() bool {
	return t <= StreamTypeQPACKDecoder
}
