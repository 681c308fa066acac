package http3

import (
	"github.com/francoispqt/gojay"
)

// EventRecorder receives one structured event per protocol-relevant
// occurrence. A nil recorder disables event emission: recordEvent
// checks for nil and drops the event. The Event value, including any
// formatted Detail string, is still built at the call site first.
type EventRecorder interface {
	RecordEvent(Event)
}

// EventKind names the occurrences this core reports.
type EventKind string

const (
	EventControlStreamOpened EventKind = "control_stream_opened"
	EventSettingsSent        EventKind = "settings_sent"
	EventSettingsReceived    EventKind = "settings_received"
	EventStreamClassified    EventKind = "stream_classified"
	EventRequestStreamOpened EventKind = "request_stream_opened"
	EventConnectionClosed    EventKind = "connection_closed"
	EventGoawayReceived      EventKind = "goaway_received"
)

// Event is a single occurrence, encoded with gojay rather than
// encoding/json: the driver's control-frame loop and per-stream
// operations sit on the hot path, and reflection-based marshaling is
// the cost quic-go's own qlog subsystem built gojay support to avoid.
type Event struct {
	Kind      EventKind
	StreamID  int64
	Detail    string
	ErrorCode Code
	HasCode   bool
}

var _ gojay.MarshalerJSONObject = Event{}

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (e Event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("kind", string(e.Kind))
	if e.StreamID != 0 {
		enc.Int64Key("stream_id", e.StreamID)
	}
	if e.Detail != "" {
		enc.StringKey("detail", e.Detail)
	}
	if e.HasCode {
		enc.StringKey("error_code", e.ErrorCode.String())
	}
}

// IsNil implements gojay.MarshalerJSONObject.
func (e Event) IsNil() bool { return false }

// Encode renders the event as a single JSON object line, the format an
// EventRecorder backed by a line-oriented sink (a file, a channel
// consumer) would write out.
func (e Event) Encode() ([]byte, error) {
	return gojay.MarshalJSONObject(e)
}

// recordEvent is a nil-safe call-site helper used throughout the
// connection driver and request dispatcher.
func recordEvent(rec EventRecorder, e Event) {
	if rec == nil {
		return
	}
	rec.RecordEvent(e)
}
