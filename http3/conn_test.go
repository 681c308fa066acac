package http3

import (
	"context"
	"io"

	"github.com/golang/mock/gomock"
	"github.com/saitolume/h3/internal/mocks"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Conn", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("opens the control stream, writes the CONTROL marker and SETTINGS on build", func() {
		transport := mocks.NewMockConnection(ctrl)
		controlSend := mocks.NewMockSendStream(ctrl)

		var written []byte
		controlSend.EXPECT().Write(gomock.Any()).DoAndReturn(func(b []byte) (int, error) {
			written = append(written, b...)
			return len(b), nil
		}).Times(2)

		transport.EXPECT().OpenUniStream(gomock.Any()).Return(controlSend, nil)

		conn, err := newConn(context.Background(), transport, 16384, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(conn).ToNot(BeNil())

		Expect(written[0]).To(Equal(byte(StreamTypeControl)))

		p := newFrameParser(sliceReaderFrom(written[1:]))
		f, err := p.Next()
		Expect(err).ToNot(HaveOccurred())
		sf, ok := f.(*settingsFrame)
		Expect(ok).To(BeTrue())
		size, _ := sf.maxFieldSectionSize()
		Expect(size).To(Equal(uint64(16384)))
	})

	It("fails missing-settings when the peer's first control frame isn't SETTINGS", func() {
		transport := mocks.NewMockConnection(ctrl)
		controlSend := mocks.NewMockSendStream(ctrl)
		controlSend.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
		transport.EXPECT().OpenUniStream(gomock.Any()).Return(controlSend, nil)

		conn, err := newConn(context.Background(), transport, maxVarInt, nil)
		Expect(err).ToNot(HaveOccurred())

		var goawayWire []byte
		goawayWire = appendVarintFrameHeader(goawayWire, FrameTypeGoaway, 1)
		goawayWire = append(goawayWire, 0x00)

		errFromControlLoop := conn.runControlLoop(bytesReceiveStream(goawayWire))
		Expect(errFromControlLoop).To(HaveOccurred())

		var herr *Error
		Expect(asError(errFromControlLoop, &herr)).To(BeTrue())
		Expect(herr.Code).To(Equal(CodeMissingSettings))
	})

	It("fails H3_CLOSED_CRITICAL_STREAM when the control stream closes before SETTINGS arrives", func() {
		transport := mocks.NewMockConnection(ctrl)
		controlSend := mocks.NewMockSendStream(ctrl)
		controlSend.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
		transport.EXPECT().OpenUniStream(gomock.Any()).Return(controlSend, nil)

		conn, err := newConn(context.Background(), transport, maxVarInt, nil)
		Expect(err).ToNot(HaveOccurred())

		errFromControlLoop := conn.runControlLoop(bytesReceiveStream(nil))
		Expect(errFromControlLoop).To(HaveOccurred())

		var herr *Error
		Expect(asError(errFromControlLoop, &herr)).To(BeTrue())
		Expect(herr.Code).To(Equal(CodeClosedCriticalStream))
	})

	It("fails H3_CLOSED_CRITICAL_STREAM when the control stream closes after SETTINGS", func() {
		transport := mocks.NewMockConnection(ctrl)
		controlSend := mocks.NewMockSendStream(ctrl)
		controlSend.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
		transport.EXPECT().OpenUniStream(gomock.Any()).Return(controlSend, nil)

		conn, err := newConn(context.Background(), transport, maxVarInt, nil)
		Expect(err).ToNot(HaveOccurred())

		settingsWire := newSettingsFrame(4096).append(nil)

		errFromControlLoop := conn.runControlLoop(bytesReceiveStream(settingsWire))
		Expect(errFromControlLoop).To(HaveOccurred())

		var herr *Error
		Expect(asError(errFromControlLoop, &herr)).To(BeTrue())
		Expect(herr.Code).To(Equal(CodeClosedCriticalStream))
	})

	It("rejects an inbound bidirectional stream with H3_STREAM_CREATION_ERROR", func() {
		transport := mocks.NewMockConnection(ctrl)
		controlSend := mocks.NewMockSendStream(ctrl)
		controlSend.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
		transport.EXPECT().OpenUniStream(gomock.Any()).Return(controlSend, nil)

		conn, err := newConn(context.Background(), transport, maxVarInt, nil)
		Expect(err).ToNot(HaveOccurred())

		inbound := mocks.NewMockStream(ctrl)
		inbound.EXPECT().StreamID().Return(int64(0)).AnyTimes()
		inbound.EXPECT().CancelRead(CodeStreamCreationError)
		transport.EXPECT().AcceptStream(gomock.Any()).Return(inbound, nil)

		err = conn.rejectInboundBidiStreams(context.Background())
		Expect(err).To(HaveOccurred())

		var herr *Error
		Expect(asError(err, &herr)).To(BeTrue())
		Expect(herr.Code).To(Equal(CodeStreamCreationError))
	})

	It("Close records the terminal error, forwards it to the transport, and returns it", func() {
		transport := mocks.NewMockConnection(ctrl)
		controlSend := mocks.NewMockSendStream(ctrl)
		controlSend.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
		transport.EXPECT().OpenUniStream(gomock.Any()).Return(controlSend, nil)
		transport.EXPECT().CloseWithError(CodeNoError, "done").Return(nil)

		conn, err := newConn(context.Background(), transport, maxVarInt, nil)
		Expect(err).ToNot(HaveOccurred())

		closeErr := conn.Close(CodeNoError, "done")
		Expect(closeErr).To(HaveOccurred())

		var herr *Error
		Expect(asError(closeErr, &herr)).To(BeTrue())
		Expect(herr.Code).To(Equal(CodeNoError))
		Expect(herr.Reason).To(Equal("done"))
		Expect(conn.shared.connError()).To(Equal(closeErr))
	})
})

// bytesReceiveStreamImpl adapts a byte slice to a ReceiveStream for
// feeding runControlLoop pre-built wire bytes directly.
type bytesReceiveStreamImpl struct {
	r io.Reader
}

func bytesReceiveStream(b []byte) ReceiveStream {
	return &bytesReceiveStreamImpl{r: sliceReaderFrom(b)}
}

func (s *bytesReceiveStreamImpl) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *bytesReceiveStreamImpl) StreamID() int64             { return 2 }
func (s *bytesReceiveStreamImpl) CancelRead(Code)             {}

func sliceReaderFrom(b []byte) io.Reader {
	return &sliceReader{b: b}
}

type sliceReader struct{ b []byte }

func (r *sliceReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}
