package qmitigate

import "fmt"

// SelectionPolicy controls which non-Clifford rotations keep their
// original angle when projecting a circuit near the Clifford group.
type SelectionPolicy int

const (
	SelectRandom SelectionPolicy = iota
	SelectProbabilistic
)

func (p SelectionPolicy) String() string {
	switch p {
	case SelectRandom:
		return "random"
	case SelectProbabilistic:
		return "probabilistic"
	}
	return fmt.Sprintf("SelectionPolicy(%d)", int(p))
}

// ParseSelectionPolicy resolves a policy name, failing fast on
// unrecognized values.
func ParseSelectionPolicy(name string) (SelectionPolicy, error) {
	switch name {
	case "random":
		return SelectRandom, nil
	case "probabilistic":
		return SelectProbabilistic, nil
	}
	return 0, fmt.Errorf("unknown selection policy %q", name)
}

// ReplacementPolicy controls how a selected rotation angle is projected
// onto the Clifford group.
type ReplacementPolicy int

const (
	ReplaceClosest ReplacementPolicy = iota
	ReplaceRandom
	ReplaceProbabilistic
)

func (p ReplacementPolicy) String() string {
	switch p {
	case ReplaceClosest:
		return "closest"
	case ReplaceRandom:
		return "random"
	case ReplaceProbabilistic:
		return "probabilistic"
	}
	return fmt.Sprintf("ReplacementPolicy(%d)", int(p))
}

// ParseReplacementPolicy resolves a policy name, failing fast on
// unrecognized values.
func ParseReplacementPolicy(name string) (ReplacementPolicy, error) {
	switch name {
	case "closest":
		return ReplaceClosest, nil
	case "random":
		return ReplaceRandom, nil
	case "probabilistic":
		return ReplaceProbabilistic, nil
	}
	return 0, fmt.Errorf("unknown replacement policy %q", name)
}
