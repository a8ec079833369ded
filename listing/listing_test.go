package listing_test

import (
	"bytes"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/artemijrodionov/sim8086/inst"
	"github.com/artemijrodionov/sim8086/listing"
)

func decoded(offset int, raw ...byte) listing.Entry {
	i, err := inst.Decode(bytes.NewReader(raw))
	Expect(err).NotTo(HaveOccurred())
	return listing.Entry{Offset: offset, Raw: raw, Inst: i}
}

func failed(offset int, raw ...byte) listing.Entry {
	_, err := inst.Decode(bytes.NewReader(raw))
	Expect(err).To(HaveOccurred())
	return listing.Entry{Offset: offset, Raw: raw[:1], Err: err}
}

var _ = Describe("Text", func() {
	var (
		out     *bytes.Buffer
		printer listing.Printer
	)

	BeforeEach(func() {
		out = new(bytes.Buffer)
		printer = listing.NewText(out)
	})

	It("should print one line per instruction", func() {
		Expect(printer.Print(decoded(0, 0x89, 0xd9))).To(Succeed())
		Expect(printer.Print(decoded(2, 0xb0, 0x2a))).To(Succeed())
		Expect(printer.Flush()).To(Succeed())

		Expect(out.String()).To(Equal("mov cx, bx\nmov al, 42\n"))
	})

	It("should print failures as comments", func() {
		Expect(printer.Print(failed(4, 0xf4))).To(Succeed())

		Expect(out.String()).To(Equal(
			"; error at 0x0004: unsupported instruction: opcode 11110100\n"))
	})
})

var _ = Describe("Table", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = new(bytes.Buffer)
	})

	It("should render offsets, bytes and instructions", func() {
		printer := listing.NewTable(out, listing.StylePlain)

		Expect(printer.Print(decoded(0, 0x8b, 0x1e, 0x34, 0x12))).To(Succeed())
		Expect(printer.Print(failed(4, 0xf4))).To(Succeed())
		Expect(out.Len()).To(BeZero())
		Expect(printer.Flush()).To(Succeed())

		text := out.String()
		Expect(text).To(ContainSubstring("0000"))
		Expect(text).To(ContainSubstring("8b 1e 34 12"))
		Expect(text).To(ContainSubstring("mov bx, [4660]"))
		Expect(text).To(ContainSubstring("0004"))
		Expect(text).To(ContainSubstring("unsupported instruction"))
	})

	It("should count decoded and failed entries", func() {
		printer := listing.NewTable(out, listing.StyleColored)

		for n := 0; n < 3; n++ {
			Expect(printer.Print(decoded(2*n, 0x89, 0xd9))).To(Succeed())
		}
		Expect(printer.Print(failed(6, 0x00))).To(Succeed())
		Expect(printer.Flush()).To(Succeed())

		Expect(out.String()).To(MatchRegexp(fmt.Sprintf("(?i)decoded %d", 3)))
		Expect(out.String()).To(MatchRegexp(fmt.Sprintf("(?i)failed %d", 1)))
	})
})
