package runner

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/cogsimlab/saffran/chrest"
	"github.com/cogsimlab/saffran/protocol"
	"github.com/cogsimlab/saffran/stim"
)

const (
	// DefaultRepeats is how often each participant type's experiment pair is
	// repeated.
	DefaultRepeats = 50

	// DefaultParticipants is the number of participants per experiment,
	// split evenly between conditions A and B.
	DefaultParticipants = 24

	experimentsPerRepeat = 2
)

// A ParticipantResult is the outcome of one protocol run: the latencies of
// the run's two familiar and two novel test words, in seconds.
type ParticipantResult struct {
	Type        ParticipantType
	Repeat      int // 1-based
	Experiment  int // 1 or 2
	Participant int // 1-based
	Familiar    [2]float64
	Novel       [2]float64
}

// Config controls a sweep.
type Config struct {
	// Types lists the participant types to sweep. When empty, the full
	// parameter grid from ParticipantTypes is used.
	Types []ParticipantType

	// Repeats and Participants default to DefaultRepeats and
	// DefaultParticipants when zero.
	Repeats      int
	Participants int

	// Workers bounds the number of concurrent protocol runs. Zero means one
	// worker per CPU.
	Workers int

	// Seed makes the sweep reproducible: every run derives its own random
	// source from it. Zero seeds from the wall clock.
	Seed int64

	// NewParticipant builds the cognitive model for a run. When nil, the
	// default chunking model is used with the type's parameters.
	NewParticipant func(t ParticipantType) chrest.Participant

	// Progress, when set, receives a line after every completed run.
	Progress io.Writer

	// OnRunComplete, when set, is called after every completed run.
	OnRunComplete func()
}

// A Sweep executes the configured population of protocol runs. Runs share no
// mutable state, so they fan out over a bounded worker pool.
type Sweep struct {
	cfg  Config
	seed int64
}

// NewSweep creates a sweep, applying configuration defaults.
func NewSweep(cfg Config) *Sweep {
	if len(cfg.Types) == 0 {
		cfg.Types = ParticipantTypes()
	}

	if cfg.Repeats == 0 {
		cfg.Repeats = DefaultRepeats
	}

	if cfg.Participants == 0 {
		cfg.Participants = DefaultParticipants
	}

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if cfg.NewParticipant == nil {
		cfg.NewParticipant = func(t ParticipantType) chrest.Participant {
			return chrest.NewModel(t.DiscriminationTime, t.FamiliarisationTime)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Sweep{cfg: cfg, seed: seed}
}

// TotalRuns returns the number of protocol runs the sweep performs.
func (s *Sweep) TotalRuns() int {
	return len(s.cfg.Types) * s.cfg.Repeats *
		experimentsPerRepeat * s.cfg.Participants
}

type runSpec struct {
	index       int
	ptype       ParticipantType
	repeat      int
	experiment  int
	participant int
}

// Run executes all runs and returns their results, ordered by type, repeat,
// experiment and participant regardless of worker scheduling.
func (s *Sweep) Run() []ParticipantResult {
	specs := s.buildSpecs()
	results := make([]ParticipantResult, len(specs))

	jobs := make(chan runSpec)
	var wg sync.WaitGroup
	var completed int64
	var progressLock sync.Mutex

	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for spec := range jobs {
				results[spec.index] = s.perform(spec)

				progressLock.Lock()
				completed++
				if s.cfg.Progress != nil {
					fmt.Fprintf(s.cfg.Progress,
						"run %d/%d complete (type %v, repeat %d, "+
							"experiment %d, participant %d)\n",
						completed, len(specs), spec.ptype, spec.repeat,
						spec.experiment, spec.participant)
				}
				progressLock.Unlock()

				if s.cfg.OnRunComplete != nil {
					s.cfg.OnRunComplete()
				}
			}
		}()
	}

	for _, spec := range specs {
		jobs <- spec
	}
	close(jobs)

	wg.Wait()

	return results
}

func (s *Sweep) buildSpecs() []runSpec {
	var specs []runSpec

	for _, ptype := range s.cfg.Types {
		for repeat := 1; repeat <= s.cfg.Repeats; repeat++ {
			for experiment := 1; experiment <= experimentsPerRepeat; experiment++ {
				for participant := 1; participant <= s.cfg.Participants; participant++ {
					specs = append(specs, runSpec{
						index:       len(specs),
						ptype:       ptype,
						repeat:      repeat,
						experiment:  experiment,
						participant: participant,
					})
				}
			}
		}
	}

	return specs
}

// perform executes one protocol run. Each run gets a fresh participant,
// word set and random source.
func (s *Sweep) perform(spec runSpec) ParticipantResult {
	expIdx := spec.experiment - 1
	conditionA := spec.participant <= s.cfg.Participants/2

	learning := conditionBLearningWords[expIdx]
	if conditionA {
		learning = conditionALearningWords[expIdx]
	}
	test := testWords[expIdx]

	experiment := protocol.New(protocol.Config{
		Words:       stim.Set{Learning: learning, Test: test},
		TraceDecay:  spec.ptype.TraceDecay,
		Participant: s.cfg.NewParticipant(spec.ptype),
		Rand:        rand.New(rand.NewSource(s.seed + int64(spec.index))),
	})

	latencies := experiment.Run()

	result := ParticipantResult{
		Type:        spec.ptype,
		Repeat:      spec.repeat,
		Experiment:  spec.experiment,
		Participant: spec.participant,
	}

	// The two test words a participant was familiarised with depend on the
	// participant's condition; the other two are novel.
	if conditionA {
		result.Familiar = [2]float64{latencies[test[0]], latencies[test[1]]}
		result.Novel = [2]float64{latencies[test[2]], latencies[test[3]]}
	} else {
		result.Familiar = [2]float64{latencies[test[2]], latencies[test[3]]}
		result.Novel = [2]float64{latencies[test[0]], latencies[test[1]]}
	}

	return result
}
