package studyplan

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/certplan/internal/certification"
)

// Request describes the plan a learner asked for.
type Request struct {
	CertificationIDs []string
	WeeklyHours      float64
	StartDate        time.Time // zero means today
	Name             string    // empty derives a name from the certifications
}

// Generator builds study plans from catalog data.
type Generator struct {
	Catalog certification.Lookup
	Now     func() time.Time
}

// NewGenerator creates a Generator backed by catalog.
func NewGenerator(catalog certification.Lookup) *Generator {
	return &Generator{Catalog: catalog, Now: time.Now}
}

// Generate estimates, schedules and milestones a new plan. Topics from
// several certifications are scheduled back to back in request order.
func (g *Generator) Generate(req Request) (*StudyPlan, error) {
	if len(req.CertificationIDs) == 0 {
		return nil, ErrNoCertifications
	}
	if req.WeeklyHours <= 0 {
		return nil, ErrInvalidWeeklyHours
	}

	var (
		topics []Topic
		names  []string
	)
	for _, id := range req.CertificationIDs {
		cert, ok := g.Catalog.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrCertificationNotFound, id)
		}
		topics = append(topics, EstimateTopics(cert.ID, cert.ExamTopics, cert.Difficulty)...)
		names = append(names, cert.Name)
	}

	sched, err := BuildSchedule(topics, req.WeeklyHours)
	if err != nil {
		return nil, err
	}

	now := g.now()
	start := req.StartDate
	if start.IsZero() {
		start = now
	}
	start = truncateToDay(start)

	certName := strings.Join(names, " + ")
	name := req.Name
	if name == "" {
		name = certName + " Study Plan"
	}

	plan := &StudyPlan{
		Name:             name,
		CertificationIDs: append([]string(nil), req.CertificationIDs...),
		WeeklyHours:      req.WeeklyHours,
		StartDate:        start,
		TargetEndDate:    start.AddDate(0, 0, sched.TotalWeeks*7),
		TotalWeeks:       sched.TotalWeeks,
		Topics:           sched.Topics,
		Schedule:         sched.Entries,
		Milestones:       GenerateMilestones(sched.TotalWeeks, certName),
		Progress:         ComputeProgress(sched.Topics),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return plan, nil
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
