package http3

import (
	"bytes"

	"github.com/quic-go/quic-go/quicvarint"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("frame parsing", func() {
	It("parses a DATA frame header without consuming the payload", func() {
		var buf bytes.Buffer
		buf.Write(appendVarintFrameHeader(nil, FrameTypeData, 5))
		buf.WriteString("hello")

		p := newFrameParser(&buf)
		f, err := p.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(dataFrame{Length: 5}))
		Expect(buf.String()).To(Equal("hello"))
	})

	It("parses a HEADERS frame header without consuming the payload", func() {
		var buf bytes.Buffer
		buf.Write(appendVarintFrameHeader(nil, FrameTypeHeaders, 3))
		buf.WriteString("abc")

		p := newFrameParser(&buf)
		f, err := p.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(headersFrame{Length: 3}))
	})

	It("fully parses a GOAWAY frame", func() {
		var buf bytes.Buffer
		payload := quicvarint.Append(nil, 42)
		buf.Write(appendVarintFrameHeader(nil, FrameTypeGoaway, uint64(len(payload))))
		buf.Write(payload)

		p := newFrameParser(&buf)
		f, err := p.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(goawayFrame{StreamID: 42}))
	})

	It("surfaces reserved frame types as unknownFrame rather than skipping them", func() {
		var buf bytes.Buffer
		buf.Write(appendVarintFrameHeader(nil, FrameType(0x21), 2))
		buf.WriteString("xx")

		p := newFrameParser(&buf)
		f, err := p.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(unknownFrame{Type: FrameType(0x21), Length: 2}))
	})

	It("rejects a SETTINGS frame exceeding the control frame size guard", func() {
		var buf bytes.Buffer
		buf.Write(appendVarintFrameHeader(nil, FrameTypeSettings, maxControlFrameSize+1))

		p := newFrameParser(&buf)
		_, err := p.Next()
		Expect(err).To(HaveOccurred())
	})
})
