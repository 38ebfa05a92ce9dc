package stim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Word", func() {
	It("should split into fixed-length syllables", func() {
		Expect(Word("tupiro").Syllables()).To(Equal([]string{"tu", "pi", "ro"}))
		Expect(Word("go").Syllables()).To(Equal([]string{"go"}))
	})

	It("should put the remainder into the final syllable", func() {
		Expect(Word("tupir").Syllables()).To(Equal([]string{"tu", "pi", "r"}))
		Expect(Word("tup").Syllables()).To(Equal([]string{"tup"}))
	})

	It("should split the empty word into nothing", func() {
		Expect(Word("").Syllables()).To(BeEmpty())
	})
})

var _ = Describe("Set", func() {
	It("should list learning words before test words", func() {
		s := Set{
			Learning: []Word{"tupiro", "golabu"},
			Test:     []Word{"golabu", "dapiku"},
		}

		Expect(s.All()).To(Equal(
			[]Word{"tupiro", "golabu", "golabu", "dapiku"}))
	})

	It("should handle empty collections", func() {
		Expect(Set{}.All()).To(BeEmpty())
	})
})
