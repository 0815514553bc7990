package roadmap

import (
	"errors"
	"fmt"

	"github.com/abhisek/certplan/internal/certification"
)

// Domain is a technical area covered by the skills assessment.
type Domain string

const (
	DomainCompute    Domain = "compute"
	DomainNetworking Domain = "networking"
	DomainStorage    Domain = "storage"
	DomainSecurity   Domain = "security"
	DomainDatabases  Domain = "databases"
	DomainDevOps     Domain = "devops"
)

// AllDomains returns the assessed domains in display order.
func AllDomains() []Domain {
	return []Domain{
		DomainCompute,
		DomainNetworking,
		DomainStorage,
		DomainSecurity,
		DomainDatabases,
		DomainDevOps,
	}
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainCompute:
		return "Compute"
	case DomainNetworking:
		return "Networking"
	case DomainStorage:
		return "Storage"
	case DomainSecurity:
		return "Security"
	case DomainDatabases:
		return "Databases"
	case DomainDevOps:
		return "DevOps & automation"
	default:
		return string(d)
	}
}

// MaxRating is the highest self-assessment score for a domain.
const MaxRating = 3

// RatingLabels names each rating from 0 to MaxRating.
var RatingLabels = [MaxRating + 1]string{"None", "Beginner", "Working knowledge", "Expert"}

// Experience is the overall level derived from an assessment.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Label returns the display label for an experience level.
func (e Experience) Label() string {
	switch e {
	case ExperienceBeginner:
		return "Beginner"
	case ExperienceIntermediate:
		return "Intermediate"
	case ExperienceAdvanced:
		return "Advanced"
	default:
		return string(e)
	}
}

// Experience thresholds on the mean domain rating.
const (
	advancedThreshold     = 2.25
	intermediateThreshold = 1.25
)

var (
	ErrInvalidRating   = errors.New("invalid domain rating")
	ErrUnknownDomain   = errors.New("unknown assessment domain")
	ErrUnknownProvider = errors.New("unknown provider")
)

// Assessment captures a learner's self-rated skills and constraints.
type Assessment struct {
	Ratings            map[Domain]int         `json:"ratings"`
	HeldCertifications []string               `json:"heldCertifications,omitempty"`
	PreferredProvider  certification.Provider `json:"preferredProvider,omitempty"` // empty means any
	WeeklyHours        float64                `json:"weeklyHours"`
}

// Validate checks ratings and the preferred provider.
func (a Assessment) Validate() error {
	known := make(map[Domain]bool, len(AllDomains()))
	for _, d := range AllDomains() {
		known[d] = true
	}
	for d, r := range a.Ratings {
		if !known[d] {
			return fmt.Errorf("%w: %q", ErrUnknownDomain, d)
		}
		if r < 0 || r > MaxRating {
			return fmt.Errorf("%w: %s rated %d, want 0-%d", ErrInvalidRating, d, r, MaxRating)
		}
	}
	if a.PreferredProvider != "" && !knownProvider(a.PreferredProvider) {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, a.PreferredProvider)
	}
	return nil
}

// MeanRating averages the ratings across all domains. Unrated domains
// count as zero.
func (a Assessment) MeanRating() float64 {
	var sum int
	for _, d := range AllDomains() {
		sum += a.Ratings[d]
	}
	return float64(sum) / float64(len(AllDomains()))
}

// ExperienceLevel classifies an assessment by its mean rating.
func ExperienceLevel(a Assessment) Experience {
	mean := a.MeanRating()
	switch {
	case mean >= advancedThreshold:
		return ExperienceAdvanced
	case mean >= intermediateThreshold:
		return ExperienceIntermediate
	default:
		return ExperienceBeginner
	}
}

func knownProvider(p certification.Provider) bool {
	for _, known := range certification.AllProviders() {
		if p == known {
			return true
		}
	}
	return false
}
