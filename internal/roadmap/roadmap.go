// Package roadmap turns a skills assessment and a career goal into an
// ordered sequence of certifications with time estimates.
package roadmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/studyplan"
)

// ErrUnknownRole means the career goal names a role the catalog does not
// know.
var ErrUnknownRole = errors.New("unknown career role")

// defaultProviders are the tracks considered when no provider is preferred.
var defaultProviders = []certification.Provider{
	certification.ProviderAWS,
	certification.ProviderAzure,
	certification.ProviderGCP,
}

// Catalog is what the roadmap builder needs from a certification catalog.
type Catalog interface {
	certification.Lookup
	ByRole(r certification.Role) []certification.Certification
	PrerequisiteChain(id string) ([]certification.Certification, error)
}

// CareerGoal is the role a learner is working towards and how soon.
type CareerGoal struct {
	Role         certification.Role `json:"role"`
	TargetMonths int                `json:"targetMonths"` // 0 means no deadline
}

// Step is one certification on the roadmap.
type Step struct {
	Certification certification.Certification `json:"certification"`
	Target        bool                        `json:"target"`
	Reason        string                      `json:"reason"`
	Hours         float64                     `json:"hours"`
	Weeks         int                         `json:"weeks"`
	StartWeek     int                         `json:"startWeek"`
	EndWeek       int                         `json:"endWeek"`
}

// Skip records a certification left off the roadmap and why.
type Skip struct {
	CertificationID string `json:"certificationId"`
	Reason          string `json:"reason"`
}

// Roadmap is the ordered certification path for a career goal.
type Roadmap struct {
	Goal        CareerGoal `json:"goal"`
	Experience  Experience `json:"experience"`
	Steps       []Step     `json:"steps"`
	Skipped     []Skip     `json:"skipped,omitempty"`
	TotalHours  float64    `json:"totalHours"`
	TotalWeeks  int        `json:"totalWeeks"`
	TargetWeeks int        `json:"targetWeeks"`
	FitsTarget  bool       `json:"fitsTarget"`
}

// TargetIDs returns the IDs of the goal certifications on the roadmap.
func (r Roadmap) TargetIDs() []string {
	return lo.FilterMap(r.Steps, func(s Step, _ int) (string, bool) {
		return s.Certification.ID, s.Target
	})
}

// CertificationIDs returns every step's certification ID in order.
func (r Roadmap) CertificationIDs() []string {
	return lo.Map(r.Steps, func(s Step, _ int) string { return s.Certification.ID })
}

// Generate builds a roadmap for goal from the learner's assessment.
//
// For each considered provider the highest-level certification that
// supports the role becomes a target. Targets are expanded with their
// prerequisite chains; certifications the learner holds (and everything
// they imply) are removed, as are foundational certifications for
// advanced learners. Steps are laid back to back using the study plan
// scheduler at the assessment's weekly hours.
func Generate(catalog Catalog, a Assessment, goal CareerGoal) (Roadmap, error) {
	if !certification.IsKnownRole(goal.Role) {
		return Roadmap{}, fmt.Errorf("%w: %q", ErrUnknownRole, goal.Role)
	}
	if a.WeeklyHours <= 0 || math.IsNaN(a.WeeklyHours) {
		return Roadmap{}, studyplan.ErrInvalidWeeklyHours
	}
	if err := a.Validate(); err != nil {
		return Roadmap{}, err
	}

	rm := Roadmap{
		Goal:       goal,
		Experience: ExperienceLevel(a),
	}

	held, err := heldClosure(catalog, a.HeldCertifications)
	if err != nil {
		return Roadmap{}, err
	}

	seen := make(map[string]bool)
	for _, target := range pickTargets(catalog, goal.Role, a.PreferredProvider) {
		chain, err := catalog.PrerequisiteChain(target.ID)
		if err != nil {
			return Roadmap{}, err
		}
		chain = append(chain, target)

		for _, cert := range chain {
			if seen[cert.ID] {
				continue
			}
			seen[cert.ID] = true

			if reason, skip := skipReason(cert, held, rm.Experience); skip {
				rm.Skipped = append(rm.Skipped, Skip{CertificationID: cert.ID, Reason: reason})
				continue
			}

			step, err := estimateStep(cert, a.WeeklyHours)
			if err != nil {
				return Roadmap{}, err
			}
			step.Target = cert.ID == target.ID
			if step.Target {
				step.Reason = fmt.Sprintf("%s target for %s on %s",
					cert.Level.Label(), certification.RoleDisplayName(goal.Role),
					certification.ProviderDisplayName(cert.Provider))
			} else {
				step.Reason = fmt.Sprintf("Prerequisite for %s", target.Name)
			}
			rm.Steps = append(rm.Steps, step)
		}
	}

	layout(&rm)
	if goal.TargetMonths > 0 {
		rm.TargetWeeks = targetWeeks(goal.TargetMonths)
		rm.FitsTarget = rm.TotalWeeks <= rm.TargetWeeks
	} else {
		rm.FitsTarget = true
	}
	return rm, nil
}

// pickTargets selects the highest-level role certification per provider.
func pickTargets(catalog Catalog, role certification.Role, preferred certification.Provider) []certification.Certification {
	providers := defaultProviders
	if preferred != "" {
		providers = []certification.Provider{preferred}
	}

	byProvider := lo.GroupBy(catalog.ByRole(role), func(c certification.Certification) certification.Provider {
		return c.Provider
	})

	var targets []certification.Certification
	for _, p := range providers {
		certs := byProvider[p]
		if len(certs) == 0 {
			continue
		}
		targets = append(targets, lo.MaxBy(certs, func(a, b certification.Certification) bool {
			return a.Level.Rank() > b.Level.Rank()
		}))
	}
	return targets
}

// heldClosure expands held certifications with everything they imply.
// Unknown IDs are ignored.
func heldClosure(catalog Catalog, held []string) (map[string]bool, error) {
	closure := make(map[string]bool)
	for _, id := range held {
		if _, ok := catalog.Lookup(id); !ok {
			continue
		}
		closure[id] = true
		chain, err := catalog.PrerequisiteChain(id)
		if err != nil {
			return nil, err
		}
		for _, c := range chain {
			closure[c.ID] = true
		}
	}
	return closure, nil
}

func skipReason(cert certification.Certification, held map[string]bool, exp Experience) (string, bool) {
	switch {
	case held[cert.ID]:
		return "Already held or implied by a held certification", true
	case exp == ExperienceAdvanced && cert.Level == certification.LevelFoundational:
		return "Foundational level skipped for advanced experience", true
	}
	return "", false
}

func estimateStep(cert certification.Certification, weeklyHours float64) (Step, error) {
	topics := studyplan.EstimateTopics(cert.ID, cert.ExamTopics, cert.Difficulty)
	sched, err := studyplan.BuildSchedule(topics, weeklyHours)
	if err != nil {
		return Step{}, err
	}
	return Step{
		Certification: cert,
		Hours:         lo.SumBy(topics, func(t studyplan.Topic) float64 { return t.DurationHours }),
		Weeks:         sched.TotalWeeks,
	}, nil
}

// layout places steps back to back starting at week 1.
func layout(rm *Roadmap) {
	week := 1
	for i := range rm.Steps {
		s := &rm.Steps[i]
		s.StartWeek = week
		s.EndWeek = week + max(s.Weeks, 1) - 1
		week = s.EndWeek + 1
		rm.TotalHours += s.Hours
	}
	rm.TotalWeeks = week - 1
}

// targetWeeks converts months to weeks at 52 weeks a year, rounded up.
func targetWeeks(months int) int {
	return int(math.Ceil(float64(months*52) / 12))
}
