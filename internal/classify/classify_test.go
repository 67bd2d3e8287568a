package classify

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/constants"
)

func TestClassify(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Classify Suite")
}

var _ = Describe("Categorize", func() {
	var (
		text     string
		category constants.Category
	)

	JustBeforeEach(func() {
		category = Categorize(text)
	})

	When("the text names a restaurant", func() {
		BeforeEach(func() {
			text = "Joe's Diner\nTable 4\nBurger 9.99"
		})

		It("should pick restaurant", func() {
			Expect(category).To(Equal(constants.Restaurant))
		})
	})

	When("the text names a grocery chain in uppercase", func() {
		BeforeEach(func() {
			text = "WALMART SUPERCENTER #42"
		})

		It("should match case-insensitively", func() {
			Expect(category).To(Equal(constants.Grocery))
		})
	})

	When("the text mentions gadgets", func() {
		BeforeEach(func() {
			text = "gadget world electronics outlet"
		})

		It("should pick electronics", func() {
			Expect(category).To(Equal(constants.Electronics))
		})
	})

	When("the text only talks about coverage", func() {
		BeforeEach(func() {
			text = "item is valid until next year"
		})

		It("should pick warranty", func() {
			Expect(category).To(Equal(constants.Warranty))
		})
	})

	When("the text uses the common warranty misspelling", func() {
		BeforeEach(func() {
			text = "WARRENTY CLAIM FORM"
		})

		It("should still pick warranty", func() {
			Expect(category).To(Equal(constants.Warranty))
		})
	})

	When("no keyword appears", func() {
		BeforeEach(func() {
			text = "pharmacy of the north, aspirin 4.20"
		})

		It("should fall through to other", func() {
			Expect(category).To(Equal(constants.Other))
		})
	})

	When("the text is empty", func() {
		BeforeEach(func() {
			text = ""
		})

		It("should fall through to other", func() {
			Expect(category).To(Equal(constants.Other))
		})
	})

	When("keywords from two categories appear", func() {
		BeforeEach(func() {
			text = "grocery purchase, warranty expiry inside"
		})

		It("should pick the category listed earlier", func() {
			Expect(category).To(Equal(constants.Grocery))
		})
	})

	When("a later category's keyword appears first in the text", func() {
		BeforeEach(func() {
			text = "technology superstore cafe corner"
		})

		// Position in the text never matters, only table order.
		It("should still pick the earlier category", func() {
			Expect(category).To(Equal(constants.Restaurant))
		})
	})

	DescribeTable("always lands in the fixed label set",
		func(input string) {
			Expect(constants.AllCategories()).To(ContainElement(Categorize(input)))
		},
		Entry("restaurant text", "cafe latte 4.50"),
		Entry("grocery text", "supermarket food run"),
		Entry("electronics text", "technology fair"),
		Entry("warranty text", "expiry notice"),
		Entry("unmatched text", "zzz qqq 123"),
		Entry("empty text", ""),
	)
})
