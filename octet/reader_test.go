package octet_test

import (
	"bytes"
	"errors"
	"io"
	"testing/iotest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/artemijrodionov/sim8086/inst"
	"github.com/artemijrodionov/sim8086/octet"
)

var _ = Describe("Reader", func() {
	var r *octet.Reader

	BeforeEach(func() {
		r = octet.New(bytes.NewReader([]byte{0x89, 0xd9, 0xb1, 0x0c, 0xf4}))
	})

	It("should return bytes in stream order and then io.EOF", func() {
		var got []byte
		for {
			b, err := r.ReadByte()
			if err == io.EOF {
				break
			}
			Expect(err).NotTo(HaveOccurred())
			got = append(got, b)
		}

		Expect(got).To(Equal([]byte{0x89, 0xd9, 0xb1, 0x0c, 0xf4}))
		Expect(r.Offset()).To(Equal(5))
	})

	It("should hand out the bytes of each instruction boundary", func() {
		_, err := inst.Decode(r)
		Expect(err).NotTo(HaveOccurred())
		offset, raw := r.Consume()
		Expect(offset).To(Equal(0))
		Expect(raw).To(Equal([]byte{0x89, 0xd9}))

		_, err = inst.Decode(r)
		Expect(err).NotTo(HaveOccurred())
		offset, raw = r.Consume()
		Expect(offset).To(Equal(2))
		Expect(raw).To(Equal([]byte{0xb1, 0x0c}))

		_, err = inst.Decode(r)
		Expect(err).To(MatchError(inst.ErrUnsupportedOpcode))
		offset, raw = r.Consume()
		Expect(offset).To(Equal(4))
		Expect(raw).To(Equal([]byte{0xf4}))

		_, err = inst.Decode(r)
		Expect(err).To(Equal(io.EOF))
	})

	It("should not share the returned bytes with later reads", func() {
		r.ReadByte()
		_, raw := r.Consume()
		r.ReadByte()

		Expect(raw).To(Equal([]byte{0x89}))
	})

	It("should return nothing for an empty boundary", func() {
		offset, raw := r.Consume()

		Expect(offset).To(Equal(0))
		Expect(raw).To(BeEmpty())
	})

	It("should pass through errors of the underlying reader", func() {
		failure := errors.New("disk on fire")
		r = octet.New(iotest.ErrReader(failure))

		_, err := r.ReadByte()

		Expect(err).To(MatchError(failure))
		Expect(r.Offset()).To(BeZero())
	})
})
