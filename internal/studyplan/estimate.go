package studyplan

import (
	"fmt"
	"math"

	"github.com/abhisek/certplan/internal/certification"
)

// EstimateHours converts an exam topic weight (percent) and a certification
// difficulty (1-5) into whole study hours:
//
//	ceil(BaseHoursPerTopic × weight/100 × difficulty/BaselineDifficulty × 10)
//
// Inputs are assumed to be validated by the catalog.
func EstimateHours(weight float64, difficulty int) float64 {
	raw := BaseHoursPerTopic * (weight / 100) * (float64(difficulty) / BaselineDifficulty) * hoursScale
	return math.Ceil(trimNoise(raw))
}

// EstimateTopics builds not-started topics for a certification's exam
// topics, preserving declaration order. IDs are <certID>-topic-<n>.
func EstimateTopics(certID string, examTopics []certification.ExamTopic, difficulty int) []Topic {
	topics := make([]Topic, 0, len(examTopics))
	for i, et := range examTopics {
		topics = append(topics, Topic{
			ID:              fmt.Sprintf("%s-topic-%d", certID, i+1),
			Name:            et.Name,
			CertificationID: certID,
			DurationHours:   EstimateHours(et.Weight, difficulty),
			Status:          StatusNotStarted,
			Subtopics:       append([]string(nil), et.Subtopics...),
		})
	}
	return topics
}

// trimNoise rounds away float residue so that exact products such as
// 30.000000000000004 are not pushed to the next integer by math.Ceil.
func trimNoise(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
