package recurrence

import "fmt"

// Standardization selects the normalization of the polynomial sequence that
// evaluators derive from a coefficient source.
type Standardization int

const (
	// Monic selects the monic sequence produced by the recurrence itself.
	Monic Standardization = iota
	// Classical selects the textbook normalization of each family, obtained
	// by scaling the monic polynomial of degree k with Scale(k).
	Classical
	// Orthonormal selects the sequence with unit norm against the weight
	// function of the family.
	Orthonormal
	// Probabilist selects the orthonormal sequence for the Hermite weight
	// exp(-x^2/2) and is only accepted by that family.
	Probabilist
	// Physicist selects the orthonormal sequence for the Hermite weight
	// exp(-x^2) and is only accepted by that family.
	Physicist
)

func (s Standardization) String() string {
	switch s {
	case Monic:
		return "monic"
	case Classical:
		return "classical"
	case Orthonormal:
		return "orthonormal"
	case Probabilist:
		return "probabilist"
	case Physicist:
		return "physicist"
	default:
		return fmt.Sprintf("Standardization(%d)", int(s))
	}
}

// IsNormalized reports whether s selects a unit-norm sequence.
func (s Standardization) IsNormalized() bool {
	return s == Orthonormal || s == Probabilist || s == Physicist
}

func checkStandardization(std Standardization, allowed ...Standardization) error {
	for _, a := range allowed {
		if std == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownStandardization, std)
}
