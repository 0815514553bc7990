package resources

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/abhisek/certplan/internal/certification"
)

// Scoring weights.
const (
	scoreCertification = 50
	scoreProvider      = 20
	scoreKind          = 15
	scorePerRating     = 5
	scoreFree          = 10
)

// Preferences narrow and rank recommendations.
type Preferences struct {
	Kinds      []Kind  // preferred kinds; empty prefers none
	MaxCostUSD float64 // negative means no limit
	FreeOnly   bool
}

// DefaultPreferences has no kind preference and no budget limit.
func DefaultPreferences() Preferences {
	return Preferences{MaxCostUSD: -1}
}

// Recommendation is a scored resource.
type Recommendation struct {
	Resource Resource `json:"resource"`
	Score    float64  `json:"score"`
}

// Library is an immutable set of resources.
type Library struct {
	resources []Resource
}

var defaultLibrary = sync.OnceValue(func() *Library {
	l, err := NewLibrary(seedResources())
	if err != nil {
		panic(fmt.Sprintf("resources: invalid built-in library: %v", err))
	}
	return l
})

// DefaultLibrary returns the built-in resource library.
func DefaultLibrary() *Library {
	return defaultLibrary()
}

// NewLibrary validates resources and wraps them in a Library.
func NewLibrary(resources []Resource) (*Library, error) {
	if err := validateResources(resources); err != nil {
		return nil, err
	}
	return &Library{resources: append([]Resource(nil), resources...)}, nil
}

// All returns every resource in the library.
func (l *Library) All() []Resource {
	return append([]Resource(nil), l.resources...)
}

// Recommend returns up to limit resources for cert, best first. A limit of
// zero or less returns every match.
func (l *Library) Recommend(cert certification.Certification, prefs Preferences, limit int) []Recommendation {
	affordable := lo.Filter(l.resources, func(r Resource, _ int) bool {
		return withinBudget(r, prefs)
	})

	var recs []Recommendation
	for _, r := range affordable {
		score := Score(r, cert, prefs)
		if score <= 0 && !r.Targets(cert.ID) {
			continue
		}
		recs = append(recs, Recommendation{Resource: r, Score: score})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Resource.ID < recs[j].Resource.ID
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// Recommend ranks resources from the built-in library.
func Recommend(cert certification.Certification, prefs Preferences, limit int) []Recommendation {
	return DefaultLibrary().Recommend(cert, prefs, limit)
}

// Score rates how well r fits cert under prefs.
func Score(r Resource, cert certification.Certification, prefs Preferences) float64 {
	var score float64
	if r.Targets(cert.ID) {
		score += scoreCertification
	}
	if r.Provider == cert.Provider {
		score += scoreProvider
	}
	if lo.Contains(prefs.Kinds, r.Kind) {
		score += scoreKind
	}
	score += r.Rating * scorePerRating
	if r.Free() {
		score += scoreFree
	}
	return score
}

func withinBudget(r Resource, prefs Preferences) bool {
	if prefs.FreeOnly && !r.Free() {
		return false
	}
	return prefs.MaxCostUSD < 0 || r.CostUSD <= prefs.MaxCostUSD
}
