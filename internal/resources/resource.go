// Package resources recommends study material for a certification.
package resources

import (
	"errors"
	"fmt"

	"github.com/abhisek/certplan/internal/certification"
)

// Kind is the format of a study resource.
type Kind string

const (
	KindCourse       Kind = "course"
	KindPracticeExam Kind = "practice-exam"
	KindDocs         Kind = "docs"
	KindLabs         Kind = "labs"
	KindBook         Kind = "book"
	KindVideo        Kind = "video"
)

// AllKinds returns all resource kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindCourse, KindPracticeExam, KindDocs, KindLabs, KindBook, KindVideo}
}

// Label returns the display label for a kind.
func (k Kind) Label() string {
	switch k {
	case KindCourse:
		return "Course"
	case KindPracticeExam:
		return "Practice exam"
	case KindDocs:
		return "Documentation"
	case KindLabs:
		return "Hands-on labs"
	case KindBook:
		return "Book"
	case KindVideo:
		return "Video series"
	default:
		return string(k)
	}
}

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MaxRating is the top of the resource rating scale.
const MaxRating = 5.0

var (
	ErrUnknownKind     = errors.New("unknown resource kind")
	ErrInvalidResource = errors.New("invalid resource")
)

// Resource is one piece of study material.
type Resource struct {
	ID               string                 `json:"id" yaml:"id"`
	Title            string                 `json:"title" yaml:"title"`
	Kind             Kind                   `json:"kind" yaml:"kind"`
	Provider         certification.Provider `json:"provider" yaml:"provider"`
	CertificationIDs []string               `json:"certificationIds,omitempty" yaml:"certificationIds,omitempty"`
	CostUSD          float64                `json:"costUsd" yaml:"costUsd"`
	Rating           float64                `json:"rating" yaml:"rating"` // 0-5
	Hours            float64                `json:"hours,omitempty" yaml:"hours,omitempty"`
	Level            certification.Level    `json:"level,omitempty" yaml:"level,omitempty"`
	URL              string                 `json:"url,omitempty" yaml:"url,omitempty"`
}

// Free reports whether the resource costs nothing.
func (r Resource) Free() bool {
	return r.CostUSD == 0
}

// Targets reports whether the resource is written for certID.
func (r Resource) Targets(certID string) bool {
	for _, id := range r.CertificationIDs {
		if id == certID {
			return true
		}
	}
	return false
}

func validateResources(resources []Resource) error {
	seen := make(map[string]bool, len(resources))
	for _, r := range resources {
		switch {
		case r.ID == "":
			return fmt.Errorf("%w: empty ID", ErrInvalidResource)
		case seen[r.ID]:
			return fmt.Errorf("%w: duplicate ID %q", ErrInvalidResource, r.ID)
		case r.Title == "":
			return fmt.Errorf("%w: %s: empty title", ErrInvalidResource, r.ID)
		case r.CostUSD < 0:
			return fmt.Errorf("%w: %s: negative cost", ErrInvalidResource, r.ID)
		case r.Rating < 0 || r.Rating > MaxRating:
			return fmt.Errorf("%w: %s: rating %g outside [0, %g]", ErrInvalidResource, r.ID, r.Rating, MaxRating)
		}
		if _, err := ParseKind(string(r.Kind)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidResource, r.ID, err)
		}
		seen[r.ID] = true
	}
	return nil
}
