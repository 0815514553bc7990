package studyplan

import (
	"fmt"
	"math"
)

// ComputeProgress aggregates topic progress into plan-level totals.
func ComputeProgress(topics []Topic) Progress {
	p := Progress{TotalTopics: len(topics)}
	for _, t := range topics {
		if t.Status == StatusCompleted {
			p.CompletedTopics++
		}
		p.TotalHours += t.DurationHours
		p.CompletedHours += t.DurationHours * float64(t.Progress) / 100
	}
	p.CompletedHours = trimNoise(p.CompletedHours)
	if p.TotalHours > 0 {
		p.Percentage = int(math.Round(p.CompletedHours / p.TotalHours * 100))
	}
	return p
}

// reconcileStatus applies the automatic status transitions implied by a
// topic's progress percentage.
func reconcileStatus(progress int, status Status) Status {
	switch {
	case progress == 100 && status != StatusCompleted:
		return StatusCompleted
	case progress > 0 && progress < 100 && status == StatusNotStarted:
		return StatusInProgress
	case progress == 0 && status == StatusCompleted:
		return StatusInProgress
	}
	return status
}

// UpdateProgress records progress for one topic and returns the updated
// plan with recomputed totals. An empty status keeps the topic's current
// status; empty notes keep the existing notes. The input plan is not
// modified.
func UpdateProgress(plan StudyPlan, topicID string, progress int, status Status, notes string) (StudyPlan, error) {
	if progress < 0 || progress > 100 {
		return plan, fmt.Errorf("%w: got %d", ErrInvalidProgress, progress)
	}
	if status != "" {
		if _, err := ParseStatus(string(status)); err != nil {
			return plan, err
		}
	}

	idx := -1
	for i, t := range plan.Topics {
		if t.ID == topicID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return plan, fmt.Errorf("%w: %q", ErrTopicNotFound, topicID)
	}

	updated := plan.clone()
	t := &updated.Topics[idx]
	if status == "" {
		status = t.Status
	}
	t.Progress = progress
	t.Status = reconcileStatus(progress, status)
	if notes != "" {
		t.Notes = notes
	}

	updated.Progress = ComputeProgress(updated.Topics)
	return updated, nil
}

// ToggleMilestone flips a milestone's completed flag.
func ToggleMilestone(plan StudyPlan, milestoneID string) (StudyPlan, error) {
	for i, m := range plan.Milestones {
		if m.ID == milestoneID {
			updated := plan.clone()
			updated.Milestones[i].Completed = !m.Completed
			return updated, nil
		}
	}
	return plan, fmt.Errorf("%w: %q", ErrMilestoneNotFound, milestoneID)
}
