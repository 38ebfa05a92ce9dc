package chrest

import "github.com/cogsimlab/saffran/timing"

// A Chunk is a unit retrievable from a participant's short-term memory. Its
// image is the pattern the chunk stands for, comparable for equality against
// a presented pattern.
type Chunk interface {
	Image(now timing.Tick) Pattern
}

// Participant is what the presentation protocol requires of a cognitive
// model. The protocol never inspects a model beyond these four operations,
// so any implementation, including a test double, is substitutable.
type Participant interface {
	// RecogniseAndLearn presents a pattern for recognition and learning at
	// the given tick. All side effects are internal to the participant.
	RecogniseAndLearn(p Pattern, now timing.Tick)

	// STMContents returns the chunks currently held in the participant's
	// verbal short-term memory.
	STMContents(now timing.Tick) []Chunk

	// AttentionClock returns the tick until which the participant's
	// attention resource is committed.
	AttentionClock() timing.Tick

	// CognitionClock returns the tick until which the participant's
	// long-term-memory machinery is committed.
	CognitionClock() timing.Tick
}
