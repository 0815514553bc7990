package studyplan

import (
	"fmt"
	"time"
)

// Status is a topic's position in the study lifecycle.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus converts a user-supplied string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Topic is a study unit derived from one weighted exam topic.
type Topic struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	CertificationID string   `json:"certificationId"`
	DurationHours   float64  `json:"durationHours"`
	Status          Status   `json:"status"`
	Progress        int      `json:"progress"` // percent, 0-100
	StartWeek       int      `json:"startWeek"`
	EndWeek         int      `json:"endWeek"`
	Subtopics       []string `json:"subtopics,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// Milestone is a fixed checkpoint within the schedule.
type Milestone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Week        int    `json:"week"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Progress aggregates topic progress across a plan.
type Progress struct {
	CompletedTopics int     `json:"completedTopics"`
	TotalTopics     int     `json:"totalTopics"`
	CompletedHours  float64 `json:"completedHours"`
	TotalHours      float64 `json:"totalHours"`
	Percentage      int     `json:"percentage"`
}

// StudyPlan is a scheduled set of topics and milestones for one or more
// certifications. Plans are plain values: every mutation returns a new plan.
type StudyPlan struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	CertificationIDs []string    `json:"certificationIds"`
	WeeklyHours      float64     `json:"weeklyHours"`
	StartDate        time.Time   `json:"startDate"`
	TargetEndDate    time.Time   `json:"targetEndDate"`
	TotalWeeks       int         `json:"totalWeeks"`
	Topics           []Topic     `json:"topics"`
	Schedule         []Entry     `json:"schedule"`
	Milestones       []Milestone `json:"milestones"`
	Progress         Progress    `json:"progress"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// Topic returns the topic with the given ID.
func (p StudyPlan) Topic(id string) (Topic, bool) {
	for _, t := range p.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// CurrentWeek returns the 1-based plan week containing now, clamped to
// [1, TotalWeeks]. Returns 0 for an empty plan.
func (p StudyPlan) CurrentWeek(now time.Time) int {
	if p.TotalWeeks == 0 {
		return 0
	}
	if now.Before(p.StartDate) {
		return 1
	}
	week := int(now.Sub(p.StartDate).Hours()/(24*7)) + 1
	if week > p.TotalWeeks {
		return p.TotalWeeks
	}
	return week
}

// NextMilestone returns the earliest milestone that is not completed.
func (p StudyPlan) NextMilestone() (Milestone, bool) {
	for _, m := range p.Milestones {
		if !m.Completed {
			return m, true
		}
	}
	return Milestone{}, false
}

// EntriesForWeek returns the schedule entries allocated to week.
func (p StudyPlan) EntriesForWeek(week int) []Entry {
	var entries []Entry
	for _, e := range p.Schedule {
		if e.Week == week {
			entries = append(entries, e)
		}
	}
	return entries
}

// clone returns a copy of p whose slices can be mutated independently.
func (p StudyPlan) clone() StudyPlan {
	c := p
	c.CertificationIDs = append([]string(nil), p.CertificationIDs...)
	c.Topics = append([]Topic(nil), p.Topics...)
	c.Schedule = append([]Entry(nil), p.Schedule...)
	c.Milestones = append([]Milestone(nil), p.Milestones...)
	return c
}
