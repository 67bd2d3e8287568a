package artifact

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/constants"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
)

func TestArtifact(t *testing.T) {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	RegisterFailHandler(Fail)
	RunSpecs(t, "Artifact Suite")
}

var _ = Describe("Render", func() {
	When("the receipt has a warranty date and products", func() {
		It("should lay out every section in fixed order", func() {
			res := entity.ReceiptResult{
				Category:     constants.Grocery,
				RawText:      "Grocery Store\nMilk 3.50 Bread 2.25",
				WarrantyDate: "01/01/2099",
				LineItems: []entity.LineItem{
					{Name: "Milk", Price: "3.50"},
					{Name: "Bread", Price: "2.25"},
				},
			}

			Expect(Render(res)).To(Equal("Category: grocery\n" +
				"\n" +
				"Extracted Text:\n" +
				"Grocery Store\nMilk 3.50 Bread 2.25\n" +
				"\n" +
				"Warranty Date: 01/01/2099\n" +
				"Products:\n" +
				"Milk: 3.50\n" +
				"Bread: 2.25\n"))
		})
	})

	When("no warranty date was detected", func() {
		It("should omit the warranty line entirely", func() {
			res := entity.ReceiptResult{
				Category: constants.Other,
				RawText:  "corner shop",
			}

			rendered := Render(res)
			Expect(rendered).NotTo(ContainSubstring("Warranty Date:"))
			Expect(rendered).To(Equal("Category: other\n" +
				"\n" +
				"Extracted Text:\n" +
				"corner shop\n" +
				"\n" +
				"Products:\n"))
		})
	})
})

var _ = Describe("FSStore", func() {
	var (
		root   string
		logBuf *bytes.Buffer
		store  *FSStore
		res    entity.ReceiptResult

		path string
		err  error
	)

	BeforeEach(func() {
		root = filepath.Join(GinkgoT().TempDir(), "out")
		logBuf = &bytes.Buffer{}
		store = NewFSStore(root, slog.New(slog.NewTextHandler(logBuf, nil)))
		res = entity.ReceiptResult{
			Source:   "/in/receipt1.jpg",
			Filename: "receipt1.jpg",
			Category: constants.Grocery,
			RawText:  "Grocery Store",
		}
	})

	JustBeforeEach(func() {
		path, err = store.Write(res)
	})

	When("writing succeeds", func() {
		It("should place the artifact under the category directory", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(root, "grocery", "receipt1.txt")))
			Expect(path).To(BeAnExistingFile())
		})

		It("should write the rendered layout", func() {
			data, readErr := os.ReadFile(path)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(Render(res)))
		})
	})

	When("two sources share a stem and category", func() {
		JustBeforeEach(func() {
			second := res
			second.Source = "/elsewhere/receipt1.jpg"
			second.RawText = "second write"
			path, err = store.Write(second)
		})

		It("should overwrite and flag the collision", func() {
			Expect(err).NotTo(HaveOccurred())
			data, readErr := os.ReadFile(path)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("second write"))
			Expect(logBuf.String()).To(ContainSubstring("collision"))
		})
	})

	When("the same stem lands in different categories", func() {
		JustBeforeEach(func() {
			other := res
			other.Category = constants.Electronics
			_, err = store.Write(other)
		})

		It("should not flag a collision", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(logBuf.String()).NotTo(ContainSubstring("collision"))
		})
	})

	When("the root cannot be created", func() {
		BeforeEach(func() {
			blocker := filepath.Join(GinkgoT().TempDir(), "blocker")
			Expect(os.WriteFile(blocker, []byte("x"), 0644)).To(Succeed())
			store = NewFSStore(filepath.Join(blocker, "nested"), slog.New(slog.NewTextHandler(io.Discard, nil)))
		})

		It("should return the write failure", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("creating category directory"))
		})
	})
})
