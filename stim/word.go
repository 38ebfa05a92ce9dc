// Package stim defines the word stimuli presented to a participant and the
// generator that turns a vocabulary into a continuous speech stream.
package stim

// SyllableLen is the number of characters per syllable.
const SyllableLen = 2

// A Word is an artificial-language word, a concatenation of fixed-length
// syllables. Words are immutable.
type Word string

// Syllables splits the word into its syllables, oldest-first. The final
// syllable takes the remainder when the word length is not a multiple of
// SyllableLen, so it may be shorter than the others.
func (w Word) Syllables() []string {
	if len(w) == 0 {
		return nil
	}

	var syllables []string
	for i := 0; ; {
		if i+SyllableLen >= len(w) {
			syllables = append(syllables, string(w[i:]))
			return syllables
		}

		syllables = append(syllables, string(w[i:i+SyllableLen]))
		i += SyllableLen
	}
}
