package http3

import (
	"context"

	"github.com/quic-go/quic-go"
)

// connAdapter makes a real *quic.Conn satisfy Connection. Go's interface
// rules require exact method signatures, and quic-go's own types use its
// own numeric code types rather than this package's Code, so every
// method here is a thin signature bridge, not a reimplementation.
type connAdapter struct {
	conn *quic.Conn
}

// WrapConnection adapts a QUIC connection, established and TLS-negotiated
// by the caller, to the contract this core consumes. Connection setup,
// TLS negotiation, 0-RTT and migration are the caller's responsibility.
func WrapConnection(conn *quic.Conn) Connection {
	return &connAdapter{conn: conn}
}

func (c *connAdapter) OpenStream(ctx context.Context) (Stream, error) {
	s, err := c.conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &streamAdapter{Stream: s}, nil
}

func (c *connAdapter) OpenUniStream(ctx context.Context) (SendStream, error) {
	s, err := c.conn.OpenUniStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &sendStreamAdapter{SendStream: s}, nil
}

func (c *connAdapter) AcceptStream(ctx context.Context) (Stream, error) {
	s, err := c.conn.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &streamAdapter{Stream: s}, nil
}

func (c *connAdapter) AcceptUniStream(ctx context.Context) (ReceiveStream, error) {
	s, err := c.conn.AcceptUniStream(ctx)
	if err != nil {
		return nil, err
	}
	return &receiveStreamAdapter{ReceiveStream: s}, nil
}

func (c *connAdapter) CloseWithError(code Code, reason string) error {
	return c.conn.CloseWithError(code.ApplicationErrorCode(), reason)
}

type sendStreamAdapter struct {
	*quic.SendStream
}

func (s *sendStreamAdapter) Finish() error {
	return s.SendStream.Close()
}

type receiveStreamAdapter struct {
	*quic.ReceiveStream
}

func (s *receiveStreamAdapter) StreamID() int64 {
	return int64(s.ReceiveStream.StreamID())
}

func (s *receiveStreamAdapter) CancelRead(code Code) {
	s.ReceiveStream.CancelRead(code.StreamErrorCode())
}

type streamAdapter struct {
	*quic.Stream
}

func (s *streamAdapter) Finish() error {
	return s.Stream.Close()
}

func (s *streamAdapter) StreamID() int64 {
	return int64(s.Stream.StreamID())
}

func (s *streamAdapter) CancelRead(code Code) {
	s.Stream.CancelRead(code.StreamErrorCode())
}

var (
	_ Connection    = (*connAdapter)(nil)
	_ SendStream    = (*sendStreamAdapter)(nil)
	_ ReceiveStream = (*receiveStreamAdapter)(nil)
	_ Stream        = (*streamAdapter)(nil)
)
