package stim

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StreamGenerator", func() {
	vocabulary := []Word{"tupiro", "golabu", "bidaku", "padoti"}

	// splitWords recovers the drawn word sequence from a stream built over a
	// fixed-length vocabulary.
	splitWords := func(text string) []Word {
		var words []Word
		for i := 0; i < len(text); i += 6 {
			words = append(words, Word(text[i:i+6]))
		}
		return words
	}

	It("should draw the requested number of words", func() {
		g := NewStreamGenerator(rand.New(rand.NewSource(1)))

		stream := g.Generate(vocabulary, 45)

		Expect(stream.Text()).To(HaveLen(45 * 6))
	})

	It("should only draw vocabulary words", func() {
		g := NewStreamGenerator(rand.New(rand.NewSource(2)))

		for _, word := range splitWords(g.Generate(vocabulary, 45).Text()) {
			Expect(vocabulary).To(ContainElement(word))
		}
	})

	It("should never repeat a word back to back", func() {
		for seed := int64(0); seed < 20; seed++ {
			g := NewStreamGenerator(rand.New(rand.NewSource(seed)))

			words := splitWords(g.Generate(vocabulary, 45).Text())
			for i := 1; i < len(words); i++ {
				Expect(words[i]).NotTo(Equal(words[i-1]))
			}
		}
	})

	It("should keep the first and last words distinct", func() {
		for seed := int64(0); seed < 20; seed++ {
			g := NewStreamGenerator(rand.New(rand.NewSource(seed)))

			words := splitWords(g.Generate(vocabulary, 45).Text())
			Expect(words[len(words)-1]).NotTo(Equal(words[0]))
		}
	})

	It("should reproduce the same stream from the same seed", func() {
		g1 := NewStreamGenerator(rand.New(rand.NewSource(7)))
		g2 := NewStreamGenerator(rand.New(rand.NewSource(7)))

		Expect(g1.Generate(vocabulary, 45).Text()).
			To(Equal(g2.Generate(vocabulary, 45).Text()))
	})

	It("should reject a vocabulary without two distinct words", func() {
		g := NewStreamGenerator(rand.New(rand.NewSource(1)))

		Expect(func() {
			g.Generate([]Word{"tupiro", "tupiro"}, 5)
		}).To(Panic())
	})

	It("should require a random source", func() {
		Expect(func() {
			NewStreamGenerator(nil)
		}).To(Panic())
	})
})

var _ = Describe("Stream", func() {
	It("should read syllables in order and wrap around", func() {
		s := &Stream{text: "tupiro"}

		Expect(s.NextSyllable()).To(Equal("tu"))
		Expect(s.NextSyllable()).To(Equal("pi"))
		Expect(s.NextSyllable()).To(Equal("ro"))
		Expect(s.NextSyllable()).To(Equal("tu"))
	})

	It("should put the remainder into the final read", func() {
		s := &Stream{text: "tupir"}

		Expect(s.NextSyllable()).To(Equal("tu"))
		Expect(s.NextSyllable()).To(Equal("pi"))
		Expect(s.NextSyllable()).To(Equal("r"))
		Expect(s.NextSyllable()).To(Equal("tu"))
	})
})
