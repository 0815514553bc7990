// Package tracker ties plan generation, persistence and progress history
// together for the CLI and the TUI.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/store"
)

// ErrNoPlan is returned when an operation needs a plan and none is stored.
var ErrNoPlan = errors.New("no study plan yet")

// Service creates plans and records progress against them.
type Service struct {
	generator *studyplan.Generator
	plans     store.PlanRepo
	events    store.EventRepo
	log       *zap.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(generator *studyplan.Generator, plans store.PlanRepo, events store.EventRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		generator: generator,
		plans:     plans,
		events:    events,
		log:       log.Named("tracker"),
	}
}

// Create generates a plan for req, stores it and records a created event.
func (s *Service) Create(ctx context.Context, req studyplan.Request) (*studyplan.StudyPlan, error) {
	plan, err := s.generator.Generate(req)
	if err != nil {
		return nil, err
	}
	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	s.log.Info("plan created",
		zap.String("plan", plan.ID),
		zap.Strings("certifications", plan.CertificationIDs),
		zap.Int("weeks", plan.TotalWeeks),
		zap.Float64("weeklyHours", plan.WeeklyHours))

	s.record(ctx, store.ProgressEventData{
		PlanID:     plan.ID,
		Action:     store.ActionCreated,
		Percentage: plan.Progress.Percentage,
	})
	return plan, nil
}

// Get returns the plan with id, or the most recent plan when id is empty.
func (s *Service) Get(ctx context.Context, id string) (*studyplan.StudyPlan, error) {
	if id != "" {
		return s.plans.Get(ctx, id)
	}
	plan, err := s.plans.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNoPlan
	}
	return plan, nil
}

// List returns summaries of every stored plan.
func (s *Service) List(ctx context.Context) ([]store.PlanSummary, error) {
	return s.plans.List(ctx)
}

// Delete removes a plan and its history.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.plans.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("plan deleted", zap.String("plan", id))
	return nil
}

// RecordProgress updates one topic of the plan identified by planID (the
// latest plan when empty) and stores the result.
func (s *Service) RecordProgress(ctx context.Context, planID, topicID string, progress int, status studyplan.Status, notes string) (*studyplan.StudyPlan, error) {
	plan, err := s.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	updated, err := studyplan.UpdateProgress(*plan, topicID, progress, status, notes)
	if err != nil {
		return nil, err
	}
	if err := s.plans.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	topic, _ := updated.Topic(topicID)
	s.log.Debug("progress recorded",
		zap.String("plan", updated.ID),
		zap.String("topic", topicID),
		zap.Int("progress", topic.Progress),
		zap.String("status", string(topic.Status)),
		zap.Int("percentage", updated.Progress.Percentage))

	s.record(ctx, store.ProgressEventData{
		PlanID:     updated.ID,
		Action:     store.ActionProgress,
		TopicID:    topicID,
		Progress:   topic.Progress,
		Status:     topic.Status,
		Percentage: updated.Progress.Percentage,
		Notes:      notes,
	})
	return &updated, nil
}

// ToggleMilestone flips a milestone on the plan identified by planID (the
// latest plan when empty) and stores the result.
func (s *Service) ToggleMilestone(ctx context.Context, planID, milestoneID string) (*studyplan.StudyPlan, error) {
	plan, err := s.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	updated, err := studyplan.ToggleMilestone(*plan, milestoneID)
	if err != nil {
		return nil, err
	}
	if err := s.plans.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	var completed bool
	for _, m := range updated.Milestones {
		if m.ID == milestoneID {
			completed = m.Completed
		}
	}
	s.record(ctx, store.ProgressEventData{
		PlanID:      updated.ID,
		Action:      store.ActionMilestone,
		MilestoneID: milestoneID,
		Completed:   completed,
		Percentage:  updated.Progress.Percentage,
	})
	return &updated, nil
}

// History returns the recorded events of a plan in order.
func (s *Service) History(ctx context.Context, planID string, opts store.QueryOpts) ([]store.ProgressEvent, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events.QueryProgressEvents(ctx, planID, opts)
}

// record appends a history event. Failures are logged, not returned.
func (s *Service) record(ctx context.Context, data store.ProgressEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendProgressEvent(ctx, data); err != nil {
		s.log.Warn("append progress event",
			zap.String("plan", data.PlanID),
			zap.String("action", data.Action),
			zap.Error(err))
	}
}
