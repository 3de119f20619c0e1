package discovery

// Outcome indicates how many project files a search produced.
type Outcome int

const (
	// NoMatch indicates no project file was found.
	NoMatch Outcome = iota

	// UniqueMatch indicates exactly one project file was found.
	UniqueMatch

	// AmbiguousMatch indicates two or more project files were found.
	AmbiguousMatch
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "NoMatch"
	case UniqueMatch:
		return "UniqueMatch"
	case AmbiguousMatch:
		return "AmbiguousMatch"
	default:
		return "Unknown"
	}
}

// Selection is the result of applying the selection policy to a set of
// candidates.
type Selection struct {
	// Outcome is the zero/one/many classification.
	Outcome Outcome

	// Candidates holds every candidate in discovery order.
	Candidates []string
}

// Select classifies candidates.
func Select(candidates []string) Selection {
	s := Selection{Candidates: candidates}
	switch len(candidates) {
	case 0:
		s.Outcome = NoMatch
	case 1:
		s.Outcome = UniqueMatch
	default:
		s.Outcome = AmbiguousMatch
	}
	return s
}

// Project returns the single project path for a UniqueMatch, or an error
// describing why there is not exactly one.
func (s Selection) Project(root string) (string, error) {
	switch s.Outcome {
	case UniqueMatch:
		return s.Candidates[0], nil
	case AmbiguousMatch:
		return "", &MultipleProjectsFoundError{Paths: s.Candidates}
	default:
		return "", &NoProjectsFoundError{Root: root}
	}
}

// ErrorPolicy decides what happens to entries the walk could not read.
type ErrorPolicy int

const (
	// BestEffort skips unreadable entries silently.
	BestEffort ErrorPolicy = iota

	// Strict fails the search with an *AccessError if any entry was skipped.
	Strict
)

// String returns a human-readable representation of the policy.
func (p ErrorPolicy) String() string {
	switch p {
	case BestEffort:
		return "best-effort"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}
