package game

import "math/rand/v2"

// Supply hands out pieces and keeps a one-slot preview of the next one.
type Supply struct {
	rng      *rand.Rand
	sequence []Kind
	cursor   int
	next     Kind
}

// NewSupply draws kinds uniformly at random from a seeded PCG source.
func NewSupply(seed uint64) *Supply {
	s := &Supply{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.Refill()
	return s
}

// NewSequenceSupply cycles through kinds in order. It panics on an empty list.
func NewSequenceSupply(kinds ...Kind) *Supply {
	if len(kinds) == 0 {
		panic("game: sequence supply needs at least one kind")
	}
	s := &Supply{sequence: append([]Kind(nil), kinds...)}
	s.Refill()
	return s
}

// Peek returns the previewed kind.
func (s *Supply) Peek() Kind {
	return s.next
}

// Take returns the previewed kind and refills the slot.
func (s *Supply) Take() Kind {
	kind := s.next
	s.Refill()
	return kind
}

// Refill replaces the previewed kind with a fresh draw.
func (s *Supply) Refill() {
	if len(s.sequence) > 0 {
		s.next = s.sequence[s.cursor%len(s.sequence)]
		s.cursor++
		return
	}
	s.next = Kind(s.rng.IntN(NumKinds))
}

// Restart rewinds a sequence supply and draws a new preview.
func (s *Supply) Restart() {
	s.cursor = 0
	s.Refill()
}
