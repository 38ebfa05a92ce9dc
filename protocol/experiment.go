// Package protocol implements the timed stimulus-presentation protocol: a
// millisecond-resolution loop that feeds a decaying phonological store from a
// generated speech stream and offers the store's contents to a participant,
// first during a fixed-length learning phase and then during per-word test
// presentations that measure recognition latency.
package protocol

import (
	"log"
	"math/rand"
	"time"

	"github.com/cogsimlab/saffran/chrest"
	"github.com/cogsimlab/saffran/hooking"
	"github.com/cogsimlab/saffran/phonstore"
	"github.com/cogsimlab/saffran/stim"
	"github.com/cogsimlab/saffran/timing"
)

const (
	// UtteranceInterval is the gap between consecutive syllable utterances.
	UtteranceInterval timing.Tick = 222

	// WordBoundaryPause is the extra gap inserted after each complete test
	// word.
	WordBoundaryPause timing.Tick = 500

	// LearningDuration is the fixed length of the learning phase.
	LearningDuration timing.Tick = 120000

	// TestCeiling is the longest a test word is presented for.
	TestCeiling timing.Tick = 15000

	syllablesPerTestWord = 3
)

// HookPosUtterance marks when a syllable enters the phonological store.
var HookPosUtterance = &hooking.HookPos{Name: "Utterance"}

// HookPosRecognition marks when a test word is recognised.
var HookPosRecognition = &hooking.HookPos{Name: "Recognition"}

// A Result maps each test word to its presentation time in seconds. The
// value is at most TestCeiling converted to seconds, the ceiling recorded
// when a word is never recognised.
type Result map[stim.Word]float64

// Config collects the construction-time inputs of one experiment run.
type Config struct {
	// Words supplies the learning and test vocabularies.
	Words stim.Set

	// TraceDecay is the lifetime, in ticks, of a syllable in the
	// phonological store.
	TraceDecay timing.Tick

	// Participant is the cognitive model listening to the presentation.
	Participant chrest.Participant

	// Rand drives stream generation. When nil, a time-seeded source is
	// created, so supply one for reproducible runs.
	Rand *rand.Rand

	// StreamWords is the number of words drawn into the learning stream.
	// When zero, stim.DefaultStreamWords is used.
	StreamWords int
}

// An Experiment drives one two-phase presentation run. Each run owns a fresh
// store, clock and stream generator, so independent runs can execute in
// parallel with no coordination.
type Experiment struct {
	hooking.HookableBase

	words       stim.Set
	store       phonstore.Store
	participant chrest.Participant
	gen         *stim.StreamGenerator
	streamWords int
	clock       *timing.Clock
}

// New creates an Experiment from the given configuration.
func New(cfg Config) *Experiment {
	if cfg.Participant == nil {
		log.Panic("experiment requires a participant")
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	streamWords := cfg.StreamWords
	if streamWords == 0 {
		streamWords = stim.DefaultStreamWords
	}

	return &Experiment{
		words:       cfg.Words,
		store:       phonstore.New(cfg.TraceDecay),
		participant: cfg.Participant,
		gen:         stim.NewStreamGenerator(rng),
		streamWords: streamWords,
		clock:       timing.NewClock(),
	}
}

// Store exposes the experiment's phonological store for hook registration.
func (e *Experiment) Store() phonstore.Store {
	return e.store
}

// Clock returns the experiment clock.
func (e *Experiment) Clock() *timing.Clock {
	return e.clock
}

// Run performs the full protocol and returns the per-test-word presentation
// times. The phases always execute in order: syllable seeding, the learning
// phase, then one test presentation per test word.
func (e *Experiment) Run() Result {
	e.seedSyllables()
	e.learningPhase()
	return e.testPhase()
}

// seedSyllables commits every syllable of every experiment word to the
// participant's long-term memory before the experiment proper begins. Each
// syllable is presented once per tick until it is reported back from
// short-term memory. Listeners are assumed to know the sub-word units of
// their native language already; an empty long-term memory would be
// implausible.
func (e *Experiment) seedSyllables() {
	for _, word := range e.words.All() {
		for _, syllable := range word.Syllables() {
			target := chrest.MakePattern(syllable)

			for learned := false; !learned; {
				now := e.clock.Now()
				e.participant.RecogniseAndLearn(target, now)

				for _, chunk := range e.participant.STMContents(now) {
					if chunk.Image(now).Equals(target) {
						learned = true
					}
				}

				e.clock.Advance(1)
			}
		}
	}

	e.resync()
}

// learningPhase plays a generated word stream for exactly LearningDuration
// ticks. A syllable is uttered every UtteranceInterval ticks, and on every
// tick the store's contents are offered for learning. The phase never exits
// early; no recognition check occurs here.
func (e *Experiment) learningPhase() {
	stream := e.gen.Generate(e.words.Learning, e.streamWords)
	start := e.clock.Now()

	for local := timing.Tick(1); local <= LearningDuration; local++ {
		now := start + local

		e.store.EvictExpired(now)

		if local%UtteranceInterval == 0 {
			e.utter(stream.NextSyllable(), now)
		}

		e.offerStore(now)
	}

	e.resync()
}

func (e *Experiment) testPhase() Result {
	result := make(Result, len(e.words.Test))

	for _, word := range e.words.Test {
		result[word] = e.presentTestWord(word).Seconds()
	}

	return result
}

// presentTestWord plays one test word until it is recognised or TestCeiling
// ticks have elapsed, and returns the elapsed presentation time. Within a
// tick the order is fixed: evict expired syllables, utter a scheduled
// syllable, check short-term memory for the target, and only when the target
// is absent offer the store for learning and advance. A syllable uttered at
// tick T is therefore visible to the recognition check from tick T onwards.
func (e *Experiment) presentTestWord(word stim.Word) timing.Tick {
	e.store.Clear()

	syllables := word.Syllables()
	target := chrest.MakePattern(syllables...)
	start := e.clock.Now()

	nextUtterance := UtteranceInterval
	syllableIdx := 0
	utteredInWord := 0

	presentationTime := timing.Tick(0)
	recognised := false

	for presentationTime < TestCeiling && !recognised {
		now := start + presentationTime

		e.store.EvictExpired(now)

		if presentationTime == nextUtterance {
			e.utter(syllables[syllableIdx], now)
			syllableIdx = (syllableIdx + 1) % len(syllables)
			utteredInWord++

			if utteredInWord == syllablesPerTestWord {
				nextUtterance += WordBoundaryPause
				utteredInWord = 0
			} else {
				nextUtterance = presentationTime + UtteranceInterval
			}
		}

		for _, chunk := range e.participant.STMContents(now) {
			if chunk.Image(now).Equals(target) {
				recognised = true
			}
		}

		if !recognised {
			e.offerStore(now)
			presentationTime++
		}
	}

	if recognised && e.NumHooks() > 0 {
		e.InvokeHook(hooking.HookCtx{
			Domain: e,
			Pos:    HookPosRecognition,
			Item:   word,
			Detail: presentationTime,
		})
	}

	e.resync(presentationTime)

	return presentationTime
}

func (e *Experiment) utter(syllable string, now timing.Tick) {
	e.store.Push(syllable, now)

	if e.NumHooks() > 0 {
		e.InvokeHook(hooking.HookCtx{
			Domain: e,
			Pos:    HookPosUtterance,
			Item:   syllable,
			Detail: now,
		})
	}
}

// offerStore presents the store's full ordered contents as one pattern. An
// empty store is a no-op tick.
func (e *Experiment) offerStore(now timing.Tick) {
	snapshot := e.store.Snapshot()
	if len(snapshot) == 0 {
		return
	}

	e.participant.RecogniseAndLearn(chrest.MakePattern(snapshot...), now)
}

// resync waits out the participant's internal scheduling: the clock moves to
// the largest of the participant's busy clocks and any extra ticks, never
// backwards.
func (e *Experiment) resync(extra ...timing.Tick) {
	ticks := append(
		[]timing.Tick{
			e.participant.AttentionClock(),
			e.participant.CognitionClock(),
		},
		extra...,
	)
	e.clock.SyncTo(ticks...)
}
