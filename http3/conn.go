package http3

import (
	"context"
	"fmt"
	"io"

	"github.com/quic-go/quic-go/quicvarint"
	"golang.org/x/sync/errgroup"
)

// Conn is the connection driver: it owns the QUIC connection handle,
// the outbound control stream, and classification of every inbound
// unidirectional stream, and drives the control-frame state machine
// from spec section 4.2 until the connection ends.
type Conn struct {
	transport Connection
	shared    *sharedState
	recorder  EventRecorder

	controlSend              SendStream
	localMaxFieldSectionSize uint64

	peerControl peerControlState
}

// peerControlState tracks invariant 2: the peer's control stream is
// set at most once.
type peerControlState struct {
	set  bool
	strm ReceiveStream
}

func newConn(ctx context.Context, transport Connection, localMaxFieldSectionSize uint64, recorder EventRecorder) (*Conn, error) {
	c := &Conn{
		transport:                transport,
		shared:                   newSharedState(),
		recorder:                 recorder,
		localMaxFieldSectionSize: localMaxFieldSectionSize,
	}
	if err := c.openControlStream(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// openControlStream implements the initialization contract: open one
// unidirectional send-stream, write the CONTROL type marker, then a
// SETTINGS frame carrying the local field section limit.
func (c *Conn) openControlStream(ctx context.Context) error {
	str, err := c.transport.OpenUniStream(ctx)
	if err != nil {
		return &Error{Kind: KindProtocol, Code: CodeStreamCreationError, Reason: err.Error()}
	}
	recordEvent(c.recorder, Event{Kind: EventControlStreamOpened})

	buf := quicvarint.Append(nil, uint64(StreamTypeControl))
	if _, err := str.Write(buf); err != nil {
		return &Error{Kind: KindProtocol, Code: CodeStreamCreationError, Reason: err.Error()}
	}

	settings := newSettingsFrame(c.localMaxFieldSectionSize).append(nil)
	if _, err := str.Write(settings); err != nil {
		return &Error{Kind: KindInternal, Cause: err}
	}
	recordEvent(c.recorder, Event{Kind: EventSettingsSent, Detail: fmt.Sprintf("max_field_section_size=%d", c.localMaxFieldSectionSize)})

	c.controlSend = str
	return nil
}

// Run drives the connection until a terminal condition is reached:
// either a protocol violation, a transport failure, or ctx being
// done. It composes two background loops (inbound unidirectional
// stream acceptance and inbound-bidi rejection) into a single
// cancelable unit, the Go rendering of the cooperative "progress"
// operation the driver exposes. Each accepted unidirectional stream,
// including the peer's control stream, is handled on its own
// goroutine; a control-stream violation found there is recorded in
// shared state and closes the transport, and Run then returns that
// recorded error rather than the accept failure that follows it.
func (c *Conn) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.acceptUniStreams(ctx) })
	g.Go(func() error { return c.rejectInboundBidiStreams(ctx) })

	err := c.shared.maybeConnErr(g.Wait())
	if err != nil {
		c.shared.setConnError(err)
		var herr *Error
		code := CodeInternalError
		if asError(err, &herr) && herr.Kind == KindProtocol {
			code = herr.Code
		}
		_ = c.transport.CloseWithError(code, err.Error())
		recordEvent(c.recorder, Event{Kind: EventConnectionClosed, HasCode: true, ErrorCode: code})
	}
	return err
}

// acceptUniStreams accepts and classifies inbound unidirectional
// streams, spawning a sub-loop over control frames once the peer's
// control stream is identified.
func (c *Conn) acceptUniStreams(ctx context.Context) error {
	for {
		str, err := c.transport.AcceptUniStream(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return ErrTransport(err)
		}
		go c.handleUniStream(ctx, str)
	}
}

func (c *Conn) handleUniStream(ctx context.Context, str ReceiveStream) {
	t, err := readStreamType(str)
	if err != nil {
		str.CancelRead(CodeStreamCreationError)
		return
	}

	recordEvent(c.recorder, Event{Kind: EventStreamClassified, StreamID: str.StreamID(), Detail: t.String()})

	switch t {
	case StreamTypeControl:
		if err := c.claimPeerControlStream(str); err != nil {
			c.shared.setConnError(err)
			_ = c.transport.CloseWithError(CodeStreamCreationError, err.Error())
			return
		}
		if err := c.runControlLoop(str); err != nil {
			c.shared.setConnError(err)
			var herr *Error
			code := CodeInternalError
			if asError(err, &herr) && herr.Kind == KindProtocol {
				code = herr.Code
			}
			_ = c.transport.CloseWithError(code, err.Error())
		}
	case StreamTypePush, StreamTypeQPACKEncoder, StreamTypeQPACKDecoder:
		// Valid but inert for this core: no server push handling, no
		// QPACK dynamic table.
	default:
		str.CancelRead(CodeStreamCreationError)
	}
}

func (c *Conn) claimPeerControlStream(str ReceiveStream) error {
	if c.peerControl.set {
		return ErrProtocol(CodeStreamCreationError, "more than one peer control stream")
	}
	c.peerControl.set = true
	c.peerControl.strm = str
	return nil
}

// runControlLoop implements the control-frame state machine of spec
// section 4.2: the first frame must be SETTINGS, and every subsequent
// frame is restricted to the known, inert control frame types.
func (c *Conn) runControlLoop(str ReceiveStream) error {
	p := newFrameParser(str)

	first, err := p.Next()
	if err != nil {
		if err == io.EOF {
			return ErrProtocol(CodeClosedCriticalStream, "control stream closed")
		}
		return ErrTransport(err)
	}
	settings, ok := first.(*settingsFrame)
	if !ok {
		return ErrProtocol(CodeMissingSettings, fmt.Sprintf("first control frame was %s, not SETTINGS", first.frameType()))
	}
	if max, ok := settings.maxFieldSectionSize(); ok {
		c.shared.setPeerSettings(max)
	} else {
		c.shared.setPeerSettings(maxVarInt)
	}
	recordEvent(c.recorder, Event{Kind: EventSettingsReceived})

	for {
		f, err := p.Next()
		if err != nil {
			if err == io.EOF {
				return ErrProtocol(CodeClosedCriticalStream, "control stream closed")
			}
			return ErrTransport(err)
		}
		switch fr := f.(type) {
		case *settingsFrame:
			return ErrProtocol(CodeFrameUnexpected, "duplicate SETTINGS frame")
		case goawayFrame:
			recordEvent(c.recorder, Event{Kind: EventGoawayReceived, Detail: fmt.Sprintf("stream_id=%d", fr.StreamID)})
			// Accepted and logged, never acted on: this core does not
			// refuse new request streams after GOAWAY.
		case cancelPushFrame, maxPushIDFrame:
			// Valid but inert: no server push support.
		default:
			return ErrProtocol(CodeFrameUnexpected, fmt.Sprintf("unexpected control frame %s", f.frameType()))
		}
	}
}

// rejectInboundBidiStreams implements the client request-acceptance
// policy: observing any inbound bidirectional stream is a protocol
// violation.
func (c *Conn) rejectInboundBidiStreams(ctx context.Context) error {
	str, err := c.transport.AcceptStream(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return ErrTransport(err)
	}
	str.CancelRead(CodeStreamCreationError)
	return ErrProtocol(CodeStreamCreationError, fmt.Sprintf("client rejects inbound bidirectional stream %d", str.StreamID()))
}

// Close records the terminal error in shared state, forwards the close
// to the transport, and returns the same error for the caller to
// propagate.
func (c *Conn) Close(code Code, reason string) error {
	err := ErrProtocol(code, reason)
	c.shared.setConnError(err)
	_ = c.transport.CloseWithError(code, reason)
	return err
}

func readStreamType(r ReceiveStream) (StreamType, error) {
	v, err := quicvarint.Read(quicvarint.NewReader(r))
	if err != nil {
		return 0, err
	}
	return StreamType(v), nil
}
