package policy

// Predicate is a pure test over an adjacent pair of items
type Predicate func(current, previous Descriptor) bool

// Verdict is the outcome of checking an adjacent pair
type Verdict int

const (
	InOrder Verdict = iota
	Exempt
	Violation
)

func (v Verdict) String() string {
	switch v {
	case InOrder:
		return "in-order"
	case Exempt:
		return "exempt"
	case Violation:
		return "violation"
	}
	return "unknown"
}

// Chain evaluates exit predicates, then violation predicates. Both lists
// stop at the first predicate that holds.
type Chain struct {
	Exit      []Predicate
	Violation []Predicate
}

// Check classifies the pair (previous, current)
func (c Chain) Check(current, previous Descriptor) Verdict {
	for _, exit := range c.Exit {
		if exit(current, previous) {
			return Exempt
		}
	}
	for _, violation := range c.Violation {
		if violation(current, previous) {
			return Violation
		}
	}
	return InOrder
}
