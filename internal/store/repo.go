package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/certplan/internal/studyplan"
)

// ErrPlanNotFound is returned when a plan ID does not exist.
var ErrPlanNotFound = errors.New("plan not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// PlanSummary is the listing view of a stored plan.
type PlanSummary struct {
	ID               string
	Name             string
	CertificationIDs []string
	TotalWeeks       int
	Percentage       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PlanRepo persists study plans.
type PlanRepo interface {
	// Save inserts or replaces a plan. An empty ID is assigned a new UUID.
	// UpdatedAt is set to the save time.
	Save(ctx context.Context, plan *studyplan.StudyPlan) error

	// Get returns the plan with the given ID, or ErrPlanNotFound.
	Get(ctx context.Context, id string) (*studyplan.StudyPlan, error)

	// Latest returns the most recently saved plan, or nil if none exist.
	Latest(ctx context.Context) (*studyplan.StudyPlan, error)

	// List returns summaries of all plans, most recently updated first.
	List(ctx context.Context) ([]PlanSummary, error)

	// Delete removes a plan and its events.
	Delete(ctx context.Context, id string) error
}

// Event actions.
const (
	ActionCreated   = "created"
	ActionProgress  = "progress"
	ActionMilestone = "milestone"
)

// ProgressEventData captures one change to a plan.
type ProgressEventData struct {
	PlanID      string
	Action      string
	TopicID     string
	MilestoneID string
	Progress    int
	Status      studyplan.Status
	Completed   bool // milestone state after the change
	Percentage  int  // plan percentage after the change
	Notes       string
}

// ProgressEvent is a stored ProgressEventData with ordering metadata.
type ProgressEvent struct {
	ProgressEventData
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to plan history.
type EventRepo interface {
	// AppendProgressEvent records a plan change.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// QueryProgressEvents returns a plan's events in sequence order.
	QueryProgressEvents(ctx context.Context, planID string, opts QueryOpts) ([]ProgressEvent, error)
}
