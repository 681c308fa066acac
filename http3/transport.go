package http3

import (
	"context"
	"io"
)

// Connection is the QUIC transport contract this core consumes. It is
// satisfied by an adapter wrapping a real *quic.Conn (see adapter.go);
// nothing in this package reimplements QUIC itself.
type Connection interface {
	OpenStreams

	// AcceptStream blocks until the peer opens a new bidirectional
	// stream, or ctx is done.
	AcceptStream(ctx context.Context) (Stream, error)

	// AcceptUniStream blocks until the peer opens a new unidirectional
	// receive-stream, or ctx is done.
	AcceptUniStream(ctx context.Context) (ReceiveStream, error)

	// CloseWithError tears down the connection with a numeric
	// application error code and a human-readable reason.
	CloseWithError(code Code, reason string) error
}

// OpenStreams is the subset of Connection the request dispatcher holds
// exclusively: the ability to originate streams.
type OpenStreams interface {
	OpenStream(ctx context.Context) (Stream, error)
	OpenUniStream(ctx context.Context) (SendStream, error)
}

// Stream is a bidirectional QUIC stream.
type Stream interface {
	SendStream
	ReceiveStream
}

// SendStream is the send half of a QUIC stream.
type SendStream interface {
	io.Writer

	// Finish closes the send half, signaling EOF to the peer.
	Finish() error
}

// ReceiveStream is the receive half of a QUIC stream.
type ReceiveStream interface {
	io.Reader

	// StreamID identifies this stream on the connection.
	StreamID() int64

	// CancelRead requests the peer stop sending on this stream with
	// the given numeric application error code.
	CancelRead(code Code)
}
