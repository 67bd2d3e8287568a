package ingest

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
)

func TestIngest(t *testing.T) {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	RegisterFailHandler(Fail)
	RunSpecs(t, "Ingest Suite")
}

var _ = Describe("ListDir", func() {
	var (
		dir   string
		files []entity.SourceFile
		stats Stats
		err   error
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	JustBeforeEach(func() {
		files, stats, err = ListDir(dir)
	})

	When("the directory mixes receipts with other entries", func() {
		BeforeEach(func() {
			for _, name := range []string{"receipt1.jpg", "photo.PNG", "notes.txt", "doc.pdf", "img.heic"} {
				Expect(os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644)).To(Succeed())
			}
			Expect(os.Mkdir(filepath.Join(dir, "sub"), 0755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "sub", "nested.jpg"), []byte("x"), 0644)).To(Succeed())
		})

		It("should keep only recognized extensions, non-recursively", func() {
			Expect(err).NotTo(HaveOccurred())
			names := make([]string, len(files))
			for i, f := range files {
				names[i] = f.Name
			}
			Expect(names).To(Equal([]string{"doc.pdf", "img.heic", "photo.PNG", "receipt1.jpg"}))
		})

		It("should match extensions case-insensitively and normalize them", func() {
			for _, f := range files {
				if f.Name == "photo.PNG" {
					Expect(f.Ext).To(Equal("png"))
				}
			}
		})

		It("should count scanned files and matches", func() {
			Expect(stats.Scanned).To(Equal(uint32(5)))
			Expect(stats.Matched).To(Equal(uint32(4)))
		})

		It("should return full paths", func() {
			Expect(files[0].Path).To(Equal(filepath.Join(dir, "doc.pdf")))
		})
	})

	When("the directory is empty", func() {
		It("should return nothing without error", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(BeEmpty())
			Expect(stats).To(Equal(Stats{}))
		})
	})

	When("the directory does not exist", func() {
		BeforeEach(func() {
			dir = filepath.Join(dir, "missing")
		})

		It("should surface a not-exist error", func() {
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
		})
	})
})
