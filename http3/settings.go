package http3

import (
	"fmt"

	"github.com/quic-go/quic-go/quicvarint"
)

// settingID is a SETTINGS frame key, defined by RFC 9114 section 7.2.4.1
// and the QPACK RFC for the two QPACK-table parameters.
type settingID uint64

const (
	settingMaxFieldSectionSize settingID = 0x06
	settingQPACKMaxTableCap    settingID = 0x01
	settingQPACKBlockedStreams settingID = 0x07
)

// settingsFrame is the decoded payload of a SETTINGS frame. Unknown
// identifiers are preserved rather than dropped, matching RFC 9114's
// instruction that receivers "MUST ignore" unknown settings on read but
// are not required to forget them.
type settingsFrame struct {
	values map[settingID]uint64
}

func (*settingsFrame) frameType() FrameType { return FrameTypeSettings }

func newSettingsFrame(maxFieldSectionSize uint64) *settingsFrame {
	return &settingsFrame{values: map[settingID]uint64{
		settingMaxFieldSectionSize: maxFieldSectionSize,
	}}
}

func (s *settingsFrame) maxFieldSectionSize() (uint64, bool) {
	v, ok := s.values[settingMaxFieldSectionSize]
	return v, ok
}

// append writes the frame's type, length, and key/value pairs.
func (s *settingsFrame) append(b []byte) []byte {
	var payload []byte
	for id, v := range s.values {
		payload = quicvarint.Append(payload, uint64(id))
		payload = quicvarint.Append(payload, v)
	}
	b = appendVarintFrameHeader(b, FrameTypeSettings, uint64(len(payload)))
	return append(b, payload...)
}

func parseSettingsPayload(buf []byte) (*settingsFrame, error) {
	s := &settingsFrame{values: make(map[settingID]uint64)}
	br := byteSliceReader(buf)
	r := quicvarint.NewReader(&br)
	remaining := len(buf)
	for remaining > 0 {
		id, err := quicvarint.Read(r)
		if err != nil {
			return nil, fmt.Errorf("http3: malformed SETTINGS: %w", err)
		}
		val, err := quicvarint.Read(r)
		if err != nil {
			return nil, fmt.Errorf("http3: malformed SETTINGS: %w", err)
		}
		remaining -= int(varintLen(id) + varintLen(val))
		if _, dup := s.values[settingID(id)]; dup {
			return nil, &Error{Kind: KindProtocol, Code: CodeSettingsError, Reason: "duplicate SETTINGS identifier"}
		}
		s.values[settingID(id)] = val
	}
	return s, nil
}

// byteSliceReader adapts a byte slice to io.Reader for quicvarint.NewReader,
// since SETTINGS payloads are fully buffered before decoding.
type byteSliceReader []byte

func (r *byteSliceReader) Read(p []byte) (int, error) {
	if len(*r) == 0 {
		return 0, fmt.Errorf("http3: read past end of SETTINGS payload")
	}
	n := copy(p, *r)
	*r = (*r)[n:]
	return n, nil
}
