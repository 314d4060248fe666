package planner

// Tuning collects every planner threshold in one place. The defaults are
// deliberately conservative field tuning; none of them is known to be
// optimal.
type Tuning struct {
	// MaxBranchesPerBrand bounds the candidate branches kept per chain brand.
	MaxBranchesPerBrand int
	// MaxRadiusMeters discards branches further than this from home.
	MaxRadiusMeters float64
	// CombinationThreshold triggers a second-pass narrowing when the
	// Cartesian product of branch choices exceeds it.
	CombinationThreshold int
	// NarrowedBranchLimit is the per-brand truncation applied by narrowing.
	NarrowedBranchLimit int
	// EvaluationCap bounds how many combinations are evaluated downstream,
	// regardless of how many were generated.
	EvaluationCap int
	// TopN is the size of each ranked output list.
	TopN int
	// TimeWeight and DistanceWeight blend minutes and kilometers into the
	// composite pre-selection score.
	TimeWeight     float64
	DistanceWeight float64
}

func DefaultTuning() Tuning {
	return Tuning{
		MaxBranchesPerBrand:  8,
		MaxRadiusMeters:      15000,
		CombinationThreshold: 200,
		NarrowedBranchLimit:  5,
		EvaluationCap:        50,
		TopN:                 5,
		TimeWeight:           0.7,
		DistanceWeight:       0.3,
	}
}
