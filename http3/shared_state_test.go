package http3

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("shared connection state", func() {
	It("defaults peerMaxFieldSectionSize to the varint maximum", func() {
		s := newSharedState()
		Expect(s.getPeerMaxFieldSectionSize()).To(Equal(maxVarInt))
	})

	It("is single-shot for peer settings", func() {
		s := newSharedState()
		s.setPeerSettings(1000)
		s.setPeerSettings(2000)
		Expect(s.getPeerMaxFieldSectionSize()).To(Equal(uint64(1000)))
	})

	It("is sticky for the terminal error", func() {
		s := newSharedState()
		first := errors.New("first")
		second := errors.New("second")
		s.setConnError(first)
		s.setConnError(second)
		Expect(s.connError()).To(Equal(first))
	})

	It("promotes a local error to the sticky connection error once set", func() {
		s := newSharedState()
		connErr := errors.New("connection is dead")
		s.setConnError(connErr)

		localErr := errors.New("local stream error")
		Expect(s.maybeConnErr(localErr)).To(Equal(connErr))
	})

	It("returns the local error unchanged when no connection error is set", func() {
		s := newSharedState()
		localErr := errors.New("local stream error")
		Expect(s.maybeConnErr(localErr)).To(Equal(localErr))
	})
})
