package stim

// A Set pairs the two word collections that define one experiment run: the
// learning set builds the familiarisation stream and the test set is
// presented, in order, during the test phase. A Set is fixed for the lifetime
// of a run.
type Set struct {
	Learning []Word
	Test     []Word
}

// All returns the learning words followed by the test words. Words that
// appear in both collections appear twice.
func (s Set) All() []Word {
	all := make([]Word, 0, len(s.Learning)+len(s.Test))
	all = append(all, s.Learning...)
	all = append(all, s.Test...)
	return all
}
