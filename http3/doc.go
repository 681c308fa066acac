// Package http3 implements the client-side core of an HTTP/3 endpoint
// layered over a QUIC transport: the connection driver that classifies
// unidirectional streams and drives the control-frame state machine,
// the request dispatcher that opens bidirectional streams and emits
// request headers, and the per-request stream state machine for
// sending and receiving bodies and trailers.
//
// The QUIC transport and the QPACK field-compression codec are
// external collaborators, consumed through the Connection/Stream
// interfaces in transport.go and through github.com/quic-go/qpack
// respectively; this package does not reimplement either.
package http3
