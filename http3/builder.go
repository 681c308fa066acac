package http3

import "context"

// Builder constructs a driver and dispatcher pair sharing one
// connection's state, configured with a single knob: the local field
// section size limit advertised to the peer and enforced on inbound
// headers.
type Builder struct {
	// MaxFieldSectionSize is the largest QPACK-estimated header block
	// this side will accept. Zero means the default, the varint
	// maximum.
	MaxFieldSectionSize uint64

	// Recorder receives structured events for the lifetime of the
	// connection it builds. May be left nil.
	Recorder EventRecorder
}

// Build takes an established QUIC connection, performs the control
// stream initialization contract (open stream, write CONTROL marker,
// write SETTINGS), and returns the resulting driver and dispatcher.
// The caller is responsible for calling Conn.Run to drive the
// connection once the dispatcher starts issuing requests.
func (b Builder) Build(ctx context.Context, transport Connection) (*Conn, *Dispatcher, error) {
	limit := b.MaxFieldSectionSize
	if limit == 0 {
		limit = maxVarInt
	}

	conn, err := newConn(ctx, transport, limit, b.Recorder)
	if err != nil {
		return nil, nil, err
	}

	dispatcher := newDispatcher(transport, conn.shared, limit, b.Recorder)
	return conn, dispatcher, nil
}
