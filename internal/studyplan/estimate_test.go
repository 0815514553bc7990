package studyplan

import (
	"testing"

	"github.com/abhisek/certplan/internal/certification"
)

func TestEstimateHours(t *testing.T) {
	tests := []struct {
		weight     float64
		difficulty int
		want       float64
	}{
		{30, 3, 30},
		{25, 4, 34},
		{24, 1, 8},
		{34, 1, 12},
		{12, 1, 4},
		{20, 5, 34},
		{100, 5, 167},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := EstimateHours(tt.weight, tt.difficulty); got != tt.want {
			t.Errorf("EstimateHours(%g, %d) = %g, want %g", tt.weight, tt.difficulty, got, tt.want)
		}
	}
}

func TestEstimateTopics(t *testing.T) {
	exam := []certification.ExamTopic{
		{Name: "Networking", Weight: 30, Subtopics: []string{"VPC", "DNS"}},
		{Name: "Storage", Weight: 70},
	}
	topics := EstimateTopics("demo", exam, 3)

	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(topics))
	}
	first := topics[0]
	if first.ID != "demo-topic-1" || first.Name != "Networking" || first.CertificationID != "demo" {
		t.Errorf("unexpected first topic identity: %+v", first)
	}
	if first.DurationHours != 30 {
		t.Errorf("first topic hours = %g, want 30", first.DurationHours)
	}
	if first.Status != StatusNotStarted || first.Progress != 0 {
		t.Errorf("first topic should start untouched, got %s at %d%%", first.Status, first.Progress)
	}
	if topics[1].ID != "demo-topic-2" || topics[1].DurationHours != 70 {
		t.Errorf("unexpected second topic: %+v", topics[1])
	}

	// Subtopics are copied, not aliased.
	exam[0].Subtopics[0] = "changed"
	if first.Subtopics[0] != "VPC" {
		t.Error("EstimateTopics aliased the exam topic subtopics")
	}
}

func TestEstimateTopics_Empty(t *testing.T) {
	topics := EstimateTopics("demo", nil, 3)
	if len(topics) != 0 {
		t.Errorf("got %d topics, want 0", len(topics))
	}
}

func TestEstimateTopics_SeedCatalogTotals(t *testing.T) {
	cat := certification.Default()
	tests := []struct {
		id   string
		want float64
	}{
		{"aws-saa", 100},
		{"aws-ccp", 34},
	}
	for _, tt := range tests {
		cert, err := cat.Get(tt.id)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.id, err)
		}
		var total float64
		for _, tp := range EstimateTopics(cert.ID, cert.ExamTopics, cert.Difficulty) {
			total += tp.DurationHours
		}
		if total != tt.want {
			t.Errorf("%s total hours = %g, want %g", tt.id, total, tt.want)
		}
	}
}
