package studyplan

import "fmt"

// GenerateMilestones returns the four fixed checkpoints for a plan of
// totalWeeks weeks: start, midpoint, practice exam and final review.
//
// The practice exam lands at max(midpoint+1, totalWeeks-2) but never past
// totalWeeks, so short plans keep every milestone in range. A plan with no
// weeks gets only the start milestone.
func GenerateMilestones(totalWeeks int, certName string) []Milestone {
	start := Milestone{
		ID:          MilestoneStart,
		Name:        "Start studying",
		Week:        1,
		Description: fmt.Sprintf("Begin your %s preparation", certName),
	}
	if totalWeeks < 1 {
		return []Milestone{start}
	}

	midpoint := (totalWeeks + 1) / 2
	practice := min(max(midpoint+1, totalWeeks-2), totalWeeks)

	return []Milestone{
		start,
		{
			ID:          MilestoneMidpoint,
			Name:        "Midpoint review",
			Week:        midpoint,
			Description: fmt.Sprintf("Review the first half of the %s material and revisit weak areas", certName),
		},
		{
			ID:          MilestonePracticeExam,
			Name:        "Practice exam",
			Week:        practice,
			Description: fmt.Sprintf("Take a full-length %s practice exam under timed conditions", certName),
		},
		{
			ID:          MilestoneFinal,
			Name:        "Final review",
			Week:        totalWeeks,
			Description: fmt.Sprintf("Final review, then schedule the %s exam", certName),
		},
	}
}
