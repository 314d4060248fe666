package domain

// ShopKind distinguishes chain brands (resolved to branches before routing)
// from private shops with a single concrete location.
type ShopKind string

const (
	ShopKindChain   ShopKind = "chain"
	ShopKindPrivate ShopKind = "private"
)

// ShopToVisit is a user intent to visit a place. ResolvedPlace and
// CandidateBranches are populated lazily when a route is requested.
type ShopToVisit struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Kind                ShopKind `json:"kind"`
	StayDurationMinutes int      `json:"stay_duration_minutes"`
	ResolvedPlace       *Place   `json:"resolved_place,omitempty"`
	CandidateBranches   []Place  `json:"candidate_branches,omitempty"`
}

// BrandGroup holds the candidate branches of one detected chain brand.
// It exists only transiently during route computation.
type BrandGroup struct {
	BrandName string  `json:"brand_name"`
	Branches  []Place `json:"branches"`
}
