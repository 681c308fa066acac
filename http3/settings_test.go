package http3

import (
	"bytes"

	"github.com/quic-go/quic-go/quicvarint"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SETTINGS frame", func() {
	It("round-trips MAX_HEADER_LIST_SIZE through append and parse", func() {
		var buf bytes.Buffer
		buf.Write(newSettingsFrame(16384).append(nil))

		p := newFrameParser(&buf)
		f, err := p.Next()
		Expect(err).ToNot(HaveOccurred())

		sf, ok := f.(*settingsFrame)
		Expect(ok).To(BeTrue())
		size, ok := sf.maxFieldSectionSize()
		Expect(ok).To(BeTrue())
		Expect(size).To(Equal(uint64(16384)))
	})

	It("rejects a duplicate identifier within one SETTINGS payload", func() {
		var payload []byte
		payload = quicvarint.Append(payload, uint64(settingMaxFieldSectionSize))
		payload = quicvarint.Append(payload, 16384)
		payload = quicvarint.Append(payload, uint64(settingMaxFieldSectionSize))
		payload = quicvarint.Append(payload, 32768)

		_, err := parseSettingsPayload(payload)
		Expect(err).To(HaveOccurred())
	})
})
