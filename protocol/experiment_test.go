package protocol

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/cogsimlab/saffran/chrest"
	"github.com/cogsimlab/saffran/hooking"
	"github.com/cogsimlab/saffran/stim"
	"github.com/cogsimlab/saffran/timing"
)

type fakeChunk struct {
	image chrest.Pattern
}

func (c fakeChunk) Image(now timing.Tick) chrest.Pattern {
	return c.image
}

type utteranceCollector struct {
	ticks *[]timing.Tick
}

func (c utteranceCollector) Func(ctx hooking.HookCtx) {
	if ctx.Pos == HookPosUtterance {
		*c.ticks = append(*c.ticks, ctx.Detail.(timing.Tick))
	}
}

// twoOfferParticipant recognises any pattern once it has been offered twice,
// holding the four most recent recognitions in short-term memory.
func twoOfferParticipant(ctrl *gomock.Controller) *MockParticipant {
	mp := NewMockParticipant(ctrl)

	offers := make(map[string]int)
	var stm []chrest.Chunk

	mp.EXPECT().RecogniseAndLearn(gomock.Any(), gomock.Any()).AnyTimes().
		Do(func(p chrest.Pattern, now timing.Tick) {
			offers[p.String()]++
			if offers[p.String()] >= 2 {
				stm = append([]chrest.Chunk{fakeChunk{image: p}}, stm...)
				if len(stm) > 4 {
					stm = stm[:4]
				}
			}
		})
	mp.EXPECT().STMContents(gomock.Any()).AnyTimes().
		DoAndReturn(func(now timing.Tick) []chrest.Chunk {
			return stm
		})
	mp.EXPECT().AttentionClock().AnyTimes().Return(timing.Tick(0))
	mp.EXPECT().CognitionClock().AnyTimes().Return(timing.Tick(0))

	return mp
}

// syllableEchoParticipant recognises single-syllable patterns immediately
// but never multi-syllable ones, so seeding terminates while test words are
// never recognised. When recogniseAt is positive, the target pattern also
// appears in short-term memory from that absolute tick onwards.
func syllableEchoParticipant(
	ctrl *gomock.Controller,
	target chrest.Pattern,
	recogniseAt timing.Tick,
) *MockParticipant {
	mp := NewMockParticipant(ctrl)

	var last chrest.Pattern

	mp.EXPECT().RecogniseAndLearn(gomock.Any(), gomock.Any()).AnyTimes().
		Do(func(p chrest.Pattern, now timing.Tick) {
			if len(p) == 1 {
				last = p
			}
		})
	mp.EXPECT().STMContents(gomock.Any()).AnyTimes().
		DoAndReturn(func(now timing.Tick) []chrest.Chunk {
			var chunks []chrest.Chunk
			if last != nil {
				chunks = append(chunks, fakeChunk{image: last})
			}
			if recogniseAt > 0 && now >= recogniseAt {
				chunks = append(chunks, fakeChunk{image: target})
			}
			return chunks
		})
	mp.EXPECT().AttentionClock().AnyTimes().Return(timing.Tick(0))
	mp.EXPECT().CognitionClock().AnyTimes().Return(timing.Tick(0))

	return mp
}

var _ = Describe("Experiment", func() {
	var mockCtrl *gomock.Controller

	words := stim.Set{
		Learning: []stim.Word{"tupiro", "golabu", "bidaku", "padoti"},
		Test:     []stim.Word{"tupiro", "golabu", "dapiku", "tilado"},
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	It("returns one latency per test word and terminates", func() {
		exp := New(Config{
			Words:       words,
			TraceDecay:  800,
			Participant: twoOfferParticipant(mockCtrl),
			Rand:        rand.New(rand.NewSource(1)),
		})

		result := exp.Run()

		Expect(result).To(HaveLen(4))
		for _, word := range words.Test {
			Expect(result[word]).To(BeNumerically(">=", 0.0))
			Expect(result[word]).To(BeNumerically("<", 15.0))
		}
	})

	It("plays the learning phase for its full fixed duration", func() {
		exp := New(Config{
			Words:       words,
			TraceDecay:  800,
			Participant: twoOfferParticipant(mockCtrl),
			Rand:        rand.New(rand.NewSource(1)),
		})

		var ticks []timing.Tick
		exp.AcceptHook(utteranceCollector{ticks: &ticks})

		exp.Run()

		// One utterance every 222nd tick of the 120,000-tick phase, before
		// any test-phase utterance.
		learningUtterances := int(LearningDuration / UtteranceInterval)
		Expect(len(ticks)).To(BeNumerically(">=", learningUtterances))
		for i := 1; i < learningUtterances; i++ {
			Expect(ticks[i] - ticks[i-1]).To(Equal(UtteranceInterval))
		}
	})

	It("freezes the latency at the first recognising tick", func() {
		target := chrest.MakePattern("da", "pi", "ku")
		smallSet := stim.Set{
			Learning: []stim.Word{"tupiro", "golabu"},
			Test:     []stim.Word{"dapiku"},
		}

		// Seeding takes one tick per syllable of the nine experiment-word
		// syllables, so the test phase starts at tick 9 and the target
		// surfaces at presentation time 700.
		exp := New(Config{
			Words:      smallSet,
			TraceDecay: 800,
			Participant: syllableEchoParticipant(
				mockCtrl, target, timing.Tick(9+700)),
			Rand: rand.New(rand.NewSource(1)),
		})

		result := exp.Run()

		Expect(result["dapiku"]).To(BeNumerically("~", 0.700, 1e-9))
	})

	It("records the ceiling when a word is never recognised", func() {
		smallSet := stim.Set{
			Learning: []stim.Word{"tupiro", "golabu"},
			Test:     []stim.Word{"dapiku"},
		}

		exp := New(Config{
			Words:       smallSet,
			TraceDecay:  800,
			Participant: syllableEchoParticipant(mockCtrl, nil, 0),
			Rand:        rand.New(rand.NewSource(1)),
		})

		var ticks []timing.Tick
		exp.AcceptHook(utteranceCollector{ticks: &ticks})

		result := exp.Run()

		Expect(result["dapiku"]).To(Equal(15.0))

		// Test utterances follow the seeded clock (tick 9): three syllables
		// 222 apart, then a 500-tick pause after each complete word.
		learningUtterances := int(LearningDuration / UtteranceInterval)
		testTicks := ticks[learningUtterances:]
		expected := []timing.Tick{
			222, 444, 666, 1166, 1388, 1610, 2110, 2332, 2554,
		}
		Expect(len(testTicks)).To(BeNumerically(">=", len(expected)))
		for i, offset := range expected {
			Expect(testTicks[i] - 9).To(Equal(offset))
		}
	})

	It("advances the clock past the participant's busy horizons", func() {
		mp := NewMockParticipant(mockCtrl)

		var last chrest.Pattern
		mp.EXPECT().RecogniseAndLearn(gomock.Any(), gomock.Any()).AnyTimes().
			Do(func(p chrest.Pattern, now timing.Tick) {
				if len(p) == 1 {
					last = p
				}
			})
		mp.EXPECT().STMContents(gomock.Any()).AnyTimes().
			DoAndReturn(func(now timing.Tick) []chrest.Chunk {
				if last == nil {
					return nil
				}
				return []chrest.Chunk{fakeChunk{image: last}}
			})
		mp.EXPECT().AttentionClock().AnyTimes().Return(timing.Tick(300000))
		mp.EXPECT().CognitionClock().AnyTimes().Return(timing.Tick(250000))

		exp := New(Config{
			Words: stim.Set{
				Learning: []stim.Word{"tupiro", "golabu"},
				Test:     []stim.Word{"dapiku"},
			},
			TraceDecay:  800,
			Participant: mp,
			Rand:        rand.New(rand.NewSource(1)),
		})

		exp.Run()

		Expect(exp.Clock().Now()).To(Equal(timing.Tick(300000)))
	})

	It("runs the default chunking model end to end", func() {
		exp := New(Config{
			Words:       words,
			TraceDecay:  800,
			Participant: chrest.NewModel(8000, 1000),
			Rand:        rand.New(rand.NewSource(42)),
		})

		result := exp.Run()

		Expect(result).To(HaveLen(4))
		for _, word := range words.Test {
			Expect(result[word]).To(BeNumerically(">=", 0.0))
			Expect(result[word]).To(BeNumerically("<=", 15.0))
		}
	})

	It("panics without a participant", func() {
		Expect(func() {
			New(Config{Words: words, TraceDecay: 800})
		}).To(Panic())
	})
})
