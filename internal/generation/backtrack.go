package generation

import "slices"

type outcome uint8

const (
	solved     outcome = iota
	exhausted          // every combination was tried
	overBudget         // maxSteps reached
)

func (o outcome) String() string {
	switch o {
	case solved:
		return "solved"
	case exhausted:
		return "exhausted"
	default:
		return "step limit reached"
	}
}

// search assigns one value from pool to each of slots positions, depth
// first. place checks whether v may go into slot and, if so, records it;
// undo reverses a successful place. Equal values are only tried once per
// slot.
type search[V comparable] struct {
	pool     []V
	slots    int
	place    func(slot int, v V) bool
	undo     func(slot int, v V)
	maxSteps int
	steps    int
}

func (s *search[V]) run() outcome {
	if len(s.pool) < s.slots {
		return exhausted
	}
	return s.fill(0)
}

// fill leaves pool in the order it found it unless it returns solved.
func (s *search[V]) fill(slot int) outcome {
	if slot == s.slots {
		return solved
	}

	tried := make([]V, 0, 8)
	for i := slot; i < len(s.pool); i++ {
		v := s.pool[i]
		if slices.Contains(tried, v) {
			continue
		}
		tried = append(tried, v)

		s.steps++
		if s.maxSteps > 0 && s.steps > s.maxSteps {
			return overBudget
		}

		s.pool[slot], s.pool[i] = s.pool[i], s.pool[slot]
		res := exhausted
		if s.place(slot, v) {
			res = s.fill(slot + 1)
			if res == solved {
				return solved
			}
			s.undo(slot, v)
		}
		s.pool[slot], s.pool[i] = s.pool[i], s.pool[slot]

		if res == overBudget {
			return overBudget
		}
	}
	return exhausted
}
