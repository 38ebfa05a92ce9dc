package runner

import "github.com/cogsimlab/saffran/stim"

// Word sets from the replicated study. Each experiment has its own test
// quadruple. Within an experiment, condition A participants are
// familiarised with the first two test words plus two fillers, condition B
// participants with the last two test words plus two fillers, so each test
// word is familiar to one condition and novel to the other.
var (
	testWords = [2][]stim.Word{
		{"tupiro", "golabu", "dapiku", "tilado"},
		{"pabiku", "tibudo", "tudaro", "pigola"},
	}

	conditionALearningWords = [2][]stim.Word{
		{"tupiro", "golabu", "bidaku", "padoti"},
		{"pabiku", "tibudo", "golatu", "daropi"},
	}

	conditionBLearningWords = [2][]stim.Word{
		{"dapiku", "tilado", "burobi", "pagotu"},
		{"tudaro", "pigola", "bikuti", "budopa"},
	}
)

// TestWords returns the test quadruple of the given experiment (1 or 2).
func TestWords(experiment int) []stim.Word {
	return testWords[experiment-1]
}
