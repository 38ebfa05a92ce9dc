package chrest

import (
	"log"

	"github.com/cogsimlab/saffran/timing"
)

const (
	// stmCapacity is the number of chunks verbal short-term memory holds.
	stmCapacity = 4

	// stmUpdateTime is how long attention is committed when a recognised
	// chunk is placed into short-term memory.
	stmUpdateTime timing.Tick = 50
)

// Model is a minimal chunking-network participant. It recognises a pattern
// by retrieving the learned chunk with the longest matching prefix, and it
// grows its network one primitive at a time: unfamiliar input discriminates
// a new single-primitive chunk, while input extending a known chunk
// familiarises a longer one. Both operations commit the cognition clock;
// placing a retrieved chunk into short-term memory commits the attention
// clock. Input arriving while the relevant clock is busy is lost, which is
// why callers present a pattern repeatedly rather than once.
type Model struct {
	discriminationTime  timing.Tick
	familiarisationTime timing.Tick

	nodes map[string]*node
	stm   []*node

	attentionClock timing.Tick
	cognitionClock timing.Tick
}

type node struct {
	image Pattern
}

// Image returns the pattern the chunk stands for.
func (n *node) Image(now timing.Tick) Pattern {
	return n.image
}

// NewModel creates a participant with the given learning-time parameters,
// both in ticks.
func NewModel(discriminationTime, familiarisationTime timing.Tick) *Model {
	if discriminationTime <= 0 || familiarisationTime <= 0 {
		log.Panic("learning times must be positive")
	}

	return &Model{
		discriminationTime:  discriminationTime,
		familiarisationTime: familiarisationTime,
		nodes:               make(map[string]*node),
	}
}

// RecogniseAndLearn presents a pattern at the given tick.
func (m *Model) RecogniseAndLearn(p Pattern, now timing.Tick) {
	if len(p) == 0 {
		return
	}

	recognised := m.retrieve(p)

	if recognised != nil && now >= m.attentionClock {
		m.placeInSTM(recognised)
		m.attentionClock = now + stmUpdateTime
	}

	if now < m.cognitionClock {
		return
	}

	switch {
	case recognised == nil:
		m.addNode(MakePattern(p[0]))
		m.cognitionClock = now + m.discriminationTime
	case len(recognised.image) < len(p):
		m.addNode(recognised.image.Extend(p[len(recognised.image)]))
		m.cognitionClock = now + m.familiarisationTime
	}
}

// STMContents returns the chunks in short-term memory, most recently
// recognised first.
func (m *Model) STMContents(now timing.Tick) []Chunk {
	contents := make([]Chunk, len(m.stm))
	for i, n := range m.stm {
		contents[i] = n
	}
	return contents
}

// AttentionClock returns the tick until which attention is committed.
func (m *Model) AttentionClock() timing.Tick {
	return m.attentionClock
}

// CognitionClock returns the tick until which learning is committed.
func (m *Model) CognitionClock() timing.Tick {
	return m.cognitionClock
}

// retrieve returns the learned chunk with the longest image that is a prefix
// of p, or nil if not even the first primitive is known.
func (m *Model) retrieve(p Pattern) *node {
	for l := len(p); l >= 1; l-- {
		if n, ok := m.nodes[Pattern(p[:l]).String()]; ok {
			return n
		}
	}
	return nil
}

func (m *Model) addNode(image Pattern) {
	key := image.String()
	if _, ok := m.nodes[key]; ok {
		return
	}
	m.nodes[key] = &node{image: image}
}

func (m *Model) placeInSTM(n *node) {
	stm := []*node{n}
	for _, held := range m.stm {
		if held != n {
			stm = append(stm, held)
		}
	}

	if len(stm) > stmCapacity {
		stm = stm[:stmCapacity]
	}

	m.stm = stm
}
