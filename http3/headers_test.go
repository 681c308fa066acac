package http3

import (
	"net/http"

	"github.com/quic-go/qpack"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("request and response headers", func() {
	It("builds the four standard pseudo-headers in order, then regular headers", func() {
		req, err := http.NewRequest(http.MethodGet, "https://example.test/", nil)
		Expect(err).ToNot(HaveOccurred())
		req.Header.Set("Accept", "text/plain")

		fields, err := RequestHeaders(req)
		Expect(err).ToNot(HaveOccurred())
		Expect(fields[0].Name).To(Equal(":method"))
		Expect(fields[0].Value).To(Equal("GET"))
		Expect(fields[1].Name).To(Equal(":scheme"))
		Expect(fields[1].Value).To(Equal("https"))
		Expect(fields[2].Name).To(Equal(":authority"))
		Expect(fields[2].Value).To(Equal("example.test"))
		Expect(fields[3].Name).To(Equal(":path"))
		Expect(fields[3].Value).To(Equal("/"))
		Expect(fields[4].Name).To(Equal("accept"))
		Expect(fields[4].Value).To(Equal("text/plain"))
	})

	It("round-trips an encoded field section through encodeStateless/decodeStateless", func() {
		req, err := http.NewRequest(http.MethodGet, "https://example.test/", nil)
		Expect(err).ToNot(HaveOccurred())

		fields, err := RequestHeaders(req)
		Expect(err).ToNot(HaveOccurred())

		encoded, estimatedSize, err := encodeStateless(fields)
		Expect(err).ToNot(HaveOccurred())
		Expect(estimatedSize).To(BeNumerically(">", 0))

		decoded, decodedSize, err := decodeStateless(encoded)
		Expect(err).ToNot(HaveOccurred())
		Expect(decodedSize).To(Equal(estimatedSize))
		Expect(decoded).To(Equal(fields))
	})

	It("rejects trailers carrying a pseudo-header", func() {
		trailers := http.Header{":status": []string{"200"}}
		_, err := TrailerFields(trailers)
		Expect(err).To(HaveOccurred())
	})

	It("reconstructs a response head with status and regular headers", func() {
		fields := []qpack.HeaderField{
			{Name: ":status", Value: "200"},
			{Name: "content-type", Value: "text/plain"},
		}
		encoded, _, err := encodeStateless(fields)
		Expect(err).ToNot(HaveOccurred())

		decoded, _, err := decodeStateless(encoded)
		Expect(err).ToNot(HaveOccurred())

		head, err := buildResponseHead(decoded)
		Expect(err).ToNot(HaveOccurred())
		Expect(head.StatusCode).To(Equal(200))
		Expect(head.Proto).To(Equal("HTTP/3.0"))
		Expect(head.Header.Get("Content-Type")).To(Equal("text/plain"))
	})
})
