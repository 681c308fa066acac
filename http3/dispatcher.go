package http3

import (
	"context"
	"io"
	"net/http"
)

// Dispatcher opens new bidirectional streams and emits request headers
// on them. It owns the stream opener exclusively: nothing else in this
// package originates outbound request streams.
type Dispatcher struct {
	opener                   OpenStreams
	shared                   *sharedState
	localMaxFieldSectionSize uint64
	recorder                 EventRecorder
}

func newDispatcher(opener OpenStreams, shared *sharedState, localMaxFieldSectionSize uint64, recorder EventRecorder) *Dispatcher {
	return &Dispatcher{
		opener:                   opener,
		shared:                   shared,
		localMaxFieldSectionSize: localMaxFieldSectionSize,
		recorder:                 recorder,
	}
}

// SendRequest implements the send_request operation: snapshot the
// peer's budget, open a bidirectional stream, build and encode the
// request head, and write the HEADERS frame. The stream is opened
// before the size check: an oversize head cancels the freshly-opened
// stream rather than gating whether it gets opened at all.
func (d *Dispatcher) SendRequest(ctx context.Context, req *http.Request) (*RequestStream, error) {
	peerLimit := d.shared.getPeerMaxFieldSectionSize()

	str, err := d.opener.OpenStream(ctx)
	if err != nil {
		return nil, d.shared.maybeConnErr(&Error{Kind: KindProtocol, Code: CodeStreamCreationError, Reason: err.Error()})
	}

	fields, err := RequestHeaders(req)
	if err != nil {
		str.CancelRead(CodeRequestRejected)
		return nil, err
	}

	encoded, estimatedSize, err := encodeStateless(fields)
	if err != nil {
		str.CancelRead(CodeRequestRejected)
		return nil, err
	}
	if estimatedSize > peerLimit {
		str.CancelRead(CodeRequestRejected)
		return nil, ErrHeaderTooBig(estimatedSize, peerLimit)
	}

	if err := writeHeadersFrame(str, encoded); err != nil {
		return nil, d.shared.maybeConnErr(ErrTransport(err))
	}

	recordEvent(d.recorder, Event{Kind: EventRequestStreamOpened, StreamID: str.StreamID()})

	return newRequestStream(str, d.shared, d.localMaxFieldSectionSize, d.recorder), nil
}

// writeHeadersFrame writes a HEADERS frame header followed by the
// already-encoded QPACK field section.
func writeHeadersFrame(w io.Writer, encoded []byte) error {
	buf := appendVarintFrameHeader(nil, FrameTypeHeaders, uint64(len(encoded)))
	buf = append(buf, encoded...)
	_, err := w.Write(buf)
	return err
}
