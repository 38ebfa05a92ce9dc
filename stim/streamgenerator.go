package stim

import (
	"log"
	"math/rand"
)

// DefaultStreamWords is the number of words drawn into one learning stream.
const DefaultStreamWords = 45

// A StreamGenerator builds constrained-random speech streams from a
// vocabulary. It owns its random source so that runs are reproducible when
// seeded and independent runs never share generator state.
type StreamGenerator struct {
	rng *rand.Rand
}

// NewStreamGenerator creates a StreamGenerator around the given random
// source.
func NewStreamGenerator(rng *rand.Rand) *StreamGenerator {
	if rng == nil {
		log.Panic("stream generator requires a random source")
	}

	return &StreamGenerator{rng: rng}
}

// Generate draws n words uniformly, with replacement, from the vocabulary and
// concatenates them into one Stream. Two constraints hold on every stream:
// no word is drawn twice in succession, and the first and last draws differ
// because the stream is replayed cyclically during the learning phase.
//
// Candidates violating a constraint are redrawn. The rejection loop has no
// retry bound; with a vocabulary of two or more distinct words it terminates
// with probability one, but a vocabulary of fewer than two distinct words
// stalls it, so that is rejected up front.
func (g *StreamGenerator) Generate(vocabulary []Word, n int) *Stream {
	if countDistinct(vocabulary) < 2 {
		log.Panic("stream generation requires at least two distinct words")
	}

	var text string
	var first, prev Word

	for i := 0; i < n; i++ {
		word := vocabulary[g.rng.Intn(len(vocabulary))]
		for word == prev || (i == n-1 && word == first) {
			word = vocabulary[g.rng.Intn(len(vocabulary))]
		}

		if i == 0 {
			first = word
		}

		text += string(word)
		prev = word
	}

	return &Stream{text: text}
}

func countDistinct(vocabulary []Word) int {
	seen := make(map[Word]bool)
	for _, w := range vocabulary {
		seen[w] = true
	}
	return len(seen)
}

// A Stream is a generated speech stream, consumed syllable by syllable. The
// stream is cyclic: when the text is exhausted the read position wraps back
// to the start.
type Stream struct {
	text string
	pos  int
}

// Text returns the full concatenated stream.
func (s *Stream) Text() string {
	return s.text
}

// NextSyllable returns the next fixed-length slice of the stream. The final
// slice takes the remainder of the text, after which the position wraps to
// the beginning.
func (s *Stream) NextSyllable() string {
	if s.pos+SyllableLen >= len(s.text) {
		syllable := s.text[s.pos:]
		s.pos = 0
		return syllable
	}

	syllable := s.text[s.pos : s.pos+SyllableLen]
	s.pos += SyllableLen
	return syllable
}
