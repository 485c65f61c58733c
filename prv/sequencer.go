package prv

import "github.com/arloliu/prvkit/internal/hash"

// Sequencer tracks the per-entity running message index stamped into record
// headers.
//
// Entities are keyed by the (Program, PTT) pair, hashed to a 64-bit ID for
// compact map keys. Because two distinct pairs could in principle hash to
// the same ID, the sequencer remembers the composite key seen for each hash
// and diverts colliding pairs to a string-keyed side map, so numbering stays
// correct even across a collision.
//
// A Sequencer is created empty at the start of a conversion run and
// discarded (or Reset) afterwards. Not safe for concurrent use; the encoder
// consumes rows strictly in input order.
type Sequencer struct {
	counts   map[uint64]int    // hash → running count
	keys     map[uint64]string // hash → composite key that claimed it
	collided map[string]int    // composite key → count, collision fallback
}

// NewSequencer creates an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{
		counts: make(map[uint64]int),
		keys:   make(map[uint64]string),
	}
}

// Next returns the 1-based message index for the next row of the given
// entity: 1 for the first row of a (program, ptt) pair, incrementing by one
// for every further row sharing that pair.
func (s *Sequencer) Next(program, ptt string) int {
	key := hash.EntityKey(program, ptt)
	id := hash.ID(key)

	claimed, seen := s.keys[id]
	if !seen {
		s.keys[id] = key
		s.counts[id] = 1

		return 1
	}

	if claimed == key {
		s.counts[id]++

		return s.counts[id]
	}

	// Hash collision: a different pair already owns this ID.
	if s.collided == nil {
		s.collided = make(map[string]int)
	}
	s.collided[key]++

	return s.collided[key]
}

// Entities returns the number of distinct entity keys seen so far.
func (s *Sequencer) Entities() int {
	return len(s.keys) + len(s.collided)
}

// Reset clears all sequencing state so the sequencer can serve a new
// conversion run.
func (s *Sequencer) Reset() {
	clear(s.counts)
	clear(s.keys)
	s.collided = nil
}
