package http3

import (
	"io"
	"net/http"
)

// RequestStream is a per-exchange state machine wrapping one QUIC bidi
// stream: a typed frame sequence on the receive side, and raw
// DATA/HEADERS framing on the send side. The exchange sequence
// observed by the caller is response HEADERS, zero or more DATA
// chunks, an optional trailer HEADERS, then EOF; this type enforces
// that order.
type RequestStream struct {
	stream   Stream
	parser   *frameParser
	shared   *sharedState
	recorder EventRecorder

	localMaxFieldSectionSize uint64

	// bytesRemainingInFrame tracks mid-DATA-frame position: > 0 means
	// the next RecvData call resumes reading body bytes rather than
	// pulling a new frame.
	bytesRemainingInFrame uint64

	// pendingTrailers buffers an encoded trailer block observed by
	// RecvData before the body was exhausted, per the single-slot
	// design spec section 4.4 describes.
	pendingTrailers []byte

	gotResponseHead bool
}

func newRequestStream(stream Stream, shared *sharedState, localMaxFieldSectionSize uint64, recorder EventRecorder) *RequestStream {
	return &RequestStream{
		stream:                   stream,
		parser:                   newFrameParser(stream),
		shared:                   shared,
		localMaxFieldSectionSize: localMaxFieldSectionSize,
		recorder:                 recorder,
	}
}

// ReadResponse waits for the first frame on the stream, which must be
// HEADERS, decodes it statelessly, and rebuilds an HTTP response head.
func (rs *RequestStream) ReadResponse() (*ResponseHead, error) {
	f, err := rs.parser.Next()
	if err != nil {
		if err == io.EOF {
			return nil, rs.shared.maybeConnErr(ErrProtocol(CodeGeneralProtocolError, "stream ended before response headers"))
		}
		return nil, rs.shared.maybeConnErr(ErrTransport(err))
	}
	hf, ok := f.(headersFrame)
	if !ok {
		frameErr := &FrameTypeError{Want: FrameTypeHeaders, Type: f.frameType()}
		err := &Error{Kind: KindProtocol, Code: CodeFrameUnexpected, Reason: frameErr.Error(), Cause: frameErr}
		return nil, rs.shared.maybeConnErr(err)
	}

	encoded := make([]byte, hf.Length)
	if _, err := io.ReadFull(rs.stream, encoded); err != nil {
		return nil, rs.shared.maybeConnErr(ErrTransport(err))
	}

	fields, estimatedSize, err := decodeStateless(encoded)
	if err != nil {
		return nil, rs.shared.maybeConnErr(err)
	}
	if estimatedSize > rs.localMaxFieldSectionSize {
		rs.stream.CancelRead(CodeRequestRejected)
		return nil, rs.shared.maybeConnErr(ErrHeaderTooBig(estimatedSize, rs.localMaxFieldSectionSize))
	}

	head, err := buildResponseHead(fields)
	if err != nil {
		return nil, rs.shared.maybeConnErr(err)
	}
	rs.gotResponseHead = true
	return head, nil
}

// RecvData returns the next body chunk. If the stream is mid-DATA
// frame it reads from that frame; otherwise it pulls the next frame
// and classifies it.
func (rs *RequestStream) RecvData(buf []byte) (n int, err error) {
	if rs.bytesRemainingInFrame > 0 {
		return rs.readFrameBytes(buf)
	}

	f, err := rs.parser.Next()
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, rs.shared.maybeConnErr(ErrTransport(err))
	}

	switch fr := f.(type) {
	case dataFrame:
		if fr.Length == 0 {
			return 0, nil
		}
		rs.bytesRemainingInFrame = fr.Length
		return rs.readFrameBytes(buf)
	case headersFrame:
		encoded := make([]byte, fr.Length)
		if _, err := io.ReadFull(rs.stream, encoded); err != nil {
			return 0, rs.shared.maybeConnErr(ErrTransport(err))
		}
		rs.pendingTrailers = encoded
		return 0, io.EOF
	default:
		return 0, rs.shared.maybeConnErr(ErrProtocol(CodeFrameUnexpected, "unexpected frame while reading body"))
	}
}

func (rs *RequestStream) readFrameBytes(buf []byte) (int, error) {
	if uint64(len(buf)) > rs.bytesRemainingInFrame {
		buf = buf[:rs.bytesRemainingInFrame]
	}
	n, err := rs.stream.Read(buf)
	rs.bytesRemainingInFrame -= uint64(n)
	if err != nil && err != io.EOF {
		return n, rs.shared.maybeConnErr(ErrTransport(err))
	}
	return n, nil
}

// RecvTrailers decodes and returns the trailer field section, if any,
// enforcing the local field section limit symmetrically with
// ReadResponse.
func (rs *RequestStream) RecvTrailers() (http.Header, error) {
	var encoded []byte
	if rs.pendingTrailers != nil {
		encoded = rs.pendingTrailers
		rs.pendingTrailers = nil
	} else {
		f, err := rs.parser.Next()
		if err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, rs.shared.maybeConnErr(ErrTransport(err))
		}
		hf, ok := f.(headersFrame)
		if !ok {
			return nil, rs.shared.maybeConnErr(ErrProtocol(CodeFrameUnexpected, "expected HEADERS or EOF for trailers"))
		}
		encoded = make([]byte, hf.Length)
		if _, err := io.ReadFull(rs.stream, encoded); err != nil {
			return nil, rs.shared.maybeConnErr(ErrTransport(err))
		}
	}

	fields, estimatedSize, err := decodeStateless(encoded)
	if err != nil {
		return nil, rs.shared.maybeConnErr(err)
	}
	if estimatedSize > rs.localMaxFieldSectionSize {
		rs.stream.CancelRead(CodeRequestCancelled)
		return nil, rs.shared.maybeConnErr(ErrHeaderTooBig(estimatedSize, rs.localMaxFieldSectionSize))
	}

	trailers := make(http.Header, len(fields))
	for _, f := range fields {
		if len(f.Name) > 0 && f.Name[0] == ':' {
			return nil, rs.shared.maybeConnErr(ErrProtocol(CodeGeneralProtocolError, "pseudo-header in trailers"))
		}
		trailers.Add(f.Name, f.Value)
	}
	return trailers, nil
}

// StopSending is a best-effort request that the peer abandon its send
// half with the given code.
func (rs *RequestStream) StopSending(code Code) {
	rs.stream.CancelRead(code)
}

// SendData writes a DATA frame header followed by buf.
func (rs *RequestStream) SendData(buf []byte) error {
	header := appendVarintFrameHeader(nil, FrameTypeData, uint64(len(buf)))
	if _, err := rs.stream.Write(header); err != nil {
		return rs.shared.maybeConnErr(ErrTransport(err))
	}
	if _, err := rs.stream.Write(buf); err != nil {
		return rs.shared.maybeConnErr(ErrTransport(err))
	}
	return nil
}

// SendTrailers encodes the trailer field section statelessly against
// the most recently observed peer limit and writes a HEADERS frame.
func (rs *RequestStream) SendTrailers(trailers http.Header) error {
	fields, err := TrailerFields(trailers)
	if err != nil {
		return rs.shared.maybeConnErr(err)
	}
	encoded, estimatedSize, err := encodeStateless(fields)
	if err != nil {
		return rs.shared.maybeConnErr(err)
	}
	if peerLimit := rs.shared.getPeerMaxFieldSectionSize(); estimatedSize > peerLimit {
		return rs.shared.maybeConnErr(ErrHeaderTooBig(estimatedSize, peerLimit))
	}
	if err := writeHeadersFrame(rs.stream, encoded); err != nil {
		return rs.shared.maybeConnErr(ErrTransport(err))
	}
	return nil
}

// Finish closes the local send half.
func (rs *RequestStream) Finish() error {
	if err := rs.stream.Finish(); err != nil {
		return rs.shared.maybeConnErr(ErrTransport(err))
	}
	return nil
}
