// Package phonstore implements the phonological store: a bounded-lifetime
// FIFO of uttered syllables. Each entry carries an absolute expiry tick and
// is evicted exactly on that tick.
package phonstore

import (
	"log"

	"github.com/cogsimlab/saffran/hooking"
	"github.com/cogsimlab/saffran/timing"
)

// HookPosPush marks when a syllable is pushed into the store.
var HookPosPush = &hooking.HookPos{Name: "PhonStore Push"}

// HookPosEvict marks when an expired syllable is removed from the store.
var HookPosEvict = &hooking.HookPos{Name: "PhonStore Evict"}

// A Store holds the syllables a participant has heard but not yet lost to
// trace decay.
type Store interface {
	hooking.Hookable

	// Push appends a syllable heard at the given tick. The entry expires at
	// now plus the store's decay offset.
	Push(syllable string, now timing.Tick)

	// EvictExpired removes front entries whose expiry equals the given tick.
	// It must run before any learn or recognise attempt on a tick so that
	// stale content is never offered.
	EvictExpired(now timing.Tick)

	// Clear empties the store and its expiry schedule.
	Clear()

	// Snapshot returns the held syllables, oldest first.
	Snapshot() []string

	// Size returns the number of held syllables.
	Size() int
}

// New creates a Store whose entries live for decay ticks after being pushed.
func New(decay timing.Tick) Store {
	if decay <= 0 {
		log.Panic("trace decay must be positive")
	}

	return &storeImpl{decay: decay}
}

type entry struct {
	syllable string
	expiry   timing.Tick
}

type storeImpl struct {
	hooking.HookableBase

	decay   timing.Tick
	entries []entry
}

func (s *storeImpl) Push(syllable string, now timing.Tick) {
	e := entry{syllable: syllable, expiry: now + s.decay}
	s.entries = append(s.entries, e)

	if s.NumHooks() > 0 {
		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosPush,
			Item:   syllable,
			Detail: e.expiry,
		})
	}
}

// EvictExpired compares for equality with the expiry tick, not order. Entries
// are appended with monotonically non-decreasing expiries, so checking the
// front entry is sufficient, and an entry is removed exactly once, on the
// tick it expires.
func (s *storeImpl) EvictExpired(now timing.Tick) {
	for len(s.entries) > 0 && s.entries[0].expiry == now {
		e := s.entries[0]
		s.entries = s.entries[1:]

		if s.NumHooks() > 0 {
			s.InvokeHook(hooking.HookCtx{
				Domain: s,
				Pos:    HookPosEvict,
				Item:   e.syllable,
				Detail: now,
			})
		}
	}
}

func (s *storeImpl) Clear() {
	s.entries = nil
}

func (s *storeImpl) Snapshot() []string {
	syllables := make([]string, len(s.entries))
	for i, e := range s.entries {
		syllables[i] = e.syllable
	}
	return syllables
}

func (s *storeImpl) Size() int {
	return len(s.entries)
}
