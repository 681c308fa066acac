package http3

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/quic-go/qpack"
	"golang.org/x/net/http/httpguts"
)

// fieldOverheadBytes is the per-field accounting overhead QPACK (and
// HPACK before it) uses when computing a field section's estimated
// size: 32 bytes plus the length of the name and the value. This is a
// budget metric enforced against peer_max_field_section_size, not a
// property of the wire encoding.
const fieldOverheadBytes = 32

// estimatedFieldSectionSize sums the HPACK/QPACK field-size accounting
// across a list of header fields.
func estimatedFieldSectionSize(fields []qpack.HeaderField) uint64 {
	var size uint64
	for _, f := range fields {
		size += uint64(len(f.Name)) + uint64(len(f.Value)) + fieldOverheadBytes
	}
	return size
}

// RequestHeaders builds the QPACK field list for an outbound request:
// the four standard request pseudo-headers, in order, followed by the
// regular header fields. req.Header is a map, so the order of the
// regular header names among themselves is not defined; the values of
// one name keep their order.
func RequestHeaders(req *http.Request) ([]qpack.HeaderField, error) {
	if req.Method == "" {
		return nil, ErrProtocol(CodeGeneralProtocolError, "request method is empty")
	}
	if req.URL == nil || req.URL.Scheme == "" || req.URL.Host == "" || req.URL.Path == "" {
		return nil, ErrProtocol(CodeGeneralProtocolError, "request URL is not a valid pseudo-header set")
	}

	fields := make([]qpack.HeaderField, 0, 4+len(req.Header))
	fields = append(fields,
		qpack.HeaderField{Name: ":method", Value: req.Method},
		qpack.HeaderField{Name: ":scheme", Value: req.URL.Scheme},
		qpack.HeaderField{Name: ":authority", Value: req.URL.Host},
		qpack.HeaderField{Name: ":path", Value: req.URL.RequestURI()},
	)

	for name, values := range req.Header {
		lower := strings.ToLower(name)
		if !httpguts.ValidHeaderFieldName(lower) {
			return nil, ErrProtocol(CodeGeneralProtocolError, fmt.Sprintf("invalid header field name %q", name))
		}
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, ErrProtocol(CodeGeneralProtocolError, fmt.Sprintf("invalid header field value for %q", name))
			}
			fields = append(fields, qpack.HeaderField{Name: lower, Value: v})
		}
	}
	return fields, nil
}

// TrailerFields converts a trailer map to a QPACK field list. Pseudo-
// headers are never valid in trailers.
func TrailerFields(trailers http.Header) ([]qpack.HeaderField, error) {
	fields := make([]qpack.HeaderField, 0, len(trailers))
	for name, values := range trailers {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, ":") {
			return nil, ErrProtocol(CodeGeneralProtocolError, "pseudo-header not allowed in trailers")
		}
		if !httpguts.ValidHeaderFieldName(lower) {
			return nil, ErrProtocol(CodeGeneralProtocolError, fmt.Sprintf("invalid trailer field name %q", name))
		}
		for _, v := range values {
			fields = append(fields, qpack.HeaderField{Name: lower, Value: v})
		}
	}
	return fields, nil
}

// encodeStateless runs fields through a fresh, dynamic-table-free QPACK
// encoder and reports the wire bytes alongside the estimated field
// section size used for peer budget checks.
func encodeStateless(fields []qpack.HeaderField) (encoded []byte, estimatedSize uint64, err error) {
	var buf strings.Builder
	enc := qpack.NewEncoder(&buf)
	for _, f := range fields {
		if err := enc.WriteField(f); err != nil {
			return nil, 0, ErrInternal(err)
		}
	}
	return []byte(buf.String()), estimatedFieldSectionSize(fields), nil
}

// decodeStateless decodes a single field section with a fresh decoder,
// returning the same estimated size accounting the sender used.
func decodeStateless(encoded []byte) ([]qpack.HeaderField, uint64, error) {
	dec := qpack.NewDecoder(nil)
	fields, err := dec.DecodeFull(encoded)
	if err != nil {
		return nil, 0, ErrProtocol(CodeGeneralProtocolError, "malformed QPACK field section")
	}
	return fields, estimatedFieldSectionSize(fields), nil
}

// ResponseHead is the rebuilt response head recv_response hands back:
// status plus the regular header map, with protocol version fixed to
// HTTP/3.
type ResponseHead struct {
	StatusCode int
	Header     http.Header
	Proto      string
	ProtoMajor int
	ProtoMinor int
}

// buildResponseHead reconstructs a response head from a decoded field
// list, rejecting trailing/duplicate/malformed pseudo-headers the way
// the corresponding request-side construction does in reverse.
func buildResponseHead(fields []qpack.HeaderField) (*ResponseHead, error) {
	if len(fields) == 0 || fields[0].Name != ":status" {
		return nil, ErrProtocol(CodeGeneralProtocolError, "response field section missing :status")
	}
	status, err := strconv.Atoi(fields[0].Value)
	if err != nil {
		return nil, ErrProtocol(CodeGeneralProtocolError, "malformed :status value")
	}

	header := make(http.Header, len(fields)-1)
	for _, f := range fields[1:] {
		if strings.HasPrefix(f.Name, ":") {
			return nil, ErrProtocol(CodeGeneralProtocolError, "pseudo-header after regular headers")
		}
		header.Add(f.Name, f.Value)
	}

	return &ResponseHead{
		StatusCode: status,
		Header:     header,
		Proto:      "HTTP/3.0",
		ProtoMajor: 3,
		ProtoMinor: 0,
	}, nil
}
