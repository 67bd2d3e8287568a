package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestImaging(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Imaging Suite")
}

var _ = Describe("Binarize", func() {
	It("should split pixels strictly above the threshold from the rest", func() {
		src := image.NewGray(image.Rect(0, 0, 3, 1))
		src.SetGray(0, 0, color.Gray{Y: 169})
		src.SetGray(1, 0, color.Gray{Y: 170})
		src.SetGray(2, 0, color.Gray{Y: 171})

		out := Binarize(src, 170)

		Expect(out.GrayAt(0, 0).Y).To(Equal(uint8(0)))
		Expect(out.GrayAt(1, 0).Y).To(Equal(uint8(0)))
		Expect(out.GrayAt(2, 0).Y).To(Equal(uint8(255)))
	})

	It("should leave the source untouched", func() {
		src := image.NewGray(image.Rect(0, 0, 1, 1))
		src.SetGray(0, 0, color.Gray{Y: 200})

		_ = Binarize(src, 170)

		Expect(src.GrayAt(0, 0).Y).To(Equal(uint8(200)))
	})
})

var _ = Describe("Grayscale", func() {
	It("should map white to white and black to black", func() {
		src := image.NewRGBA(image.Rect(0, 0, 2, 1))
		src.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		src.Set(1, 0, color.RGBA{A: 255})

		gray := Grayscale(src)

		Expect(gray.GrayAt(0, 0).Y).To(Equal(uint8(255)))
		Expect(gray.GrayAt(1, 0).Y).To(Equal(uint8(0)))
	})
})

var _ = Describe("PrepareForOCR", func() {
	It("should produce a pure black and white image", func() {
		src := image.NewRGBA(image.Rect(0, 0, 2, 1))
		src.Set(0, 0, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		src.Set(1, 0, color.RGBA{R: 100, G: 100, B: 100, A: 255})

		out := PrepareForOCR(src)

		Expect(out.GrayAt(0, 0).Y).To(Equal(uint8(255)))
		Expect(out.GrayAt(1, 0).Y).To(Equal(uint8(0)))
	})
})

var _ = Describe("Decode", func() {
	var (
		data   []byte
		img    image.Image
		format string
		err    error
	)

	JustBeforeEach(func() {
		img, format, err = Decode(data)
	})

	When("the payload is a PNG", func() {
		BeforeEach(func() {
			var buf bytes.Buffer
			src := image.NewGray(image.Rect(0, 0, 4, 4))
			Expect(png.Encode(&buf, src)).To(Succeed())
			data = buf.Bytes()
		})

		It("should decode it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal("png"))
			Expect(img.Bounds().Dx()).To(Equal(4))
		})
	})

	When("the payload is a JPEG", func() {
		BeforeEach(func() {
			var buf bytes.Buffer
			src := image.NewGray(image.Rect(0, 0, 4, 4))
			Expect(jpeg.Encode(&buf, src, nil)).To(Succeed())
			data = buf.Bytes()
		})

		It("should decode it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal("jpeg"))
		})
	})

	When("the payload is not an image at all", func() {
		BeforeEach(func() {
			data = []byte("definitely not pixels")
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("format sniffing", func() {
	It("should recognize the PDF header", func() {
		Expect(isPDF([]byte("%PDF-1.7\n..."))).To(BeTrue())
		Expect(isPDF([]byte("plain text"))).To(BeFalse())
	})

	It("should recognize HEIC ftyp brands", func() {
		header := []byte{0, 0, 0, 24}
		header = append(header, []byte("ftypheic")...)
		header = append(header, make([]byte, 8)...)
		Expect(isHEIC(header)).To(BeTrue())
	})

	It("should reject non-HEIC ftyp brands and short payloads", func() {
		header := []byte{0, 0, 0, 24}
		header = append(header, []byte("ftypisom")...)
		header = append(header, make([]byte, 8)...)
		Expect(isHEIC(header)).To(BeFalse())
		Expect(isHEIC([]byte("tiny"))).To(BeFalse())
	})
})
