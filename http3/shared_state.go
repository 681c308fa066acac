package http3

import (
	"sync"
)

// maxVarInt is the largest value a QUIC variable-length integer can
// encode, used as the default field-section-size limit before either
// side has negotiated a tighter one.
const maxVarInt uint64 = (1 << 62) - 1

// sharedState is the single cross-task mutable resource in a
// connection: the peer's advertised field section budget and a sticky
// terminal error, both readable from the driver and every request
// stream it hands out. Writes are confined to two single-shot events
// (first peer SETTINGS, terminal error) so the RWMutex sees reads far
// more often than writes.
type sharedState struct {
	mu sync.RWMutex

	peerMaxFieldSectionSize uint64
	gotPeerSettings         bool

	err error
}

func newSharedState() *sharedState {
	return &sharedState{peerMaxFieldSectionSize: maxVarInt}
}

// setPeerSettings records the peer's field section limit. Only the
// first call has any effect; invariant 3 guarantees the driver only
// calls this once, but the guard keeps the state single-shot even if
// that invariant is ever violated upstream.
func (s *sharedState) setPeerSettings(maxFieldSectionSize uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gotPeerSettings {
		return
	}
	s.peerMaxFieldSectionSize = maxFieldSectionSize
	s.gotPeerSettings = true
}

func (s *sharedState) getPeerMaxFieldSectionSize() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.peerMaxFieldSectionSize
}

// setConnError records the connection's terminal error, if one is not
// already set. The error is sticky: invariant 4 forbids ever clearing
// or replacing it.
func (s *sharedState) setConnError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *sharedState) connError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// maybeConnErr promotes a per-stream error to the connection's sticky
// terminal error when one has already been recorded, mirroring the
// h3 crate's Connection::maybe_conn_err: once a connection is dead,
// every stream reports the same cause rather than its own.
func (s *sharedState) maybeConnErr(local error) error {
	if local == nil {
		return nil
	}
	if connErr := s.connError(); connErr != nil {
		return connErr
	}
	return local
}
