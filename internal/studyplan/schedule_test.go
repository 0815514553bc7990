package studyplan

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
)

func topicsWithHours(hours ...float64) []Topic {
	topics := make([]Topic, len(hours))
	for i, h := range hours {
		topics[i] = Topic{
			ID:            fmt.Sprintf("t%d", i+1),
			Name:          fmt.Sprintf("Topic %d", i+1),
			DurationHours: h,
			Status:        StatusNotStarted,
		}
	}
	return topics
}

func TestBuildSchedule_SplitAcrossWeeks(t *testing.T) {
	sched, err := BuildSchedule(topicsWithHours(10, 15), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Entry{
		{Topic: "Topic 1", TopicID: "t1", Week: 1, Hours: 10},
		{Topic: "Topic 2", TopicID: "t2", Week: 2, Hours: 10},
		{Topic: "Topic 2", TopicID: "t2", Week: 3, Hours: 5},
	}
	if !reflect.DeepEqual(sched.Entries, want) {
		t.Errorf("entries = %+v, want %+v", sched.Entries, want)
	}
	if sched.TotalWeeks != 3 {
		t.Errorf("TotalWeeks = %d, want 3", sched.TotalWeeks)
	}

	t1, t2 := sched.Topics[0], sched.Topics[1]
	if t1.StartWeek != 1 || t1.EndWeek != 1 {
		t.Errorf("topic 1 weeks = [%d, %d], want [1, 1]", t1.StartWeek, t1.EndWeek)
	}
	if t2.StartWeek != 2 || t2.EndWeek != 3 {
		t.Errorf("topic 2 weeks = [%d, %d], want [2, 3]", t2.StartWeek, t2.EndWeek)
	}
}

func TestBuildSchedule_SharedWeek(t *testing.T) {
	sched, err := BuildSchedule(topicsWithHours(4, 4, 4), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantWeeks := [][2]int{{1, 1}, {1, 1}, {1, 2}}
	for i, w := range wantWeeks {
		got := [2]int{sched.Topics[i].StartWeek, sched.Topics[i].EndWeek}
		if got != w {
			t.Errorf("topic %d weeks = %v, want %v", i+1, got, w)
		}
	}
	if sched.TotalWeeks != 2 {
		t.Errorf("TotalWeeks = %d, want 2", sched.TotalWeeks)
	}
}

func TestBuildSchedule_ExactBoundaryEndWeek(t *testing.T) {
	// Cumulative hours land on 10, 20 and 30: each topic must end in the
	// week it filled, not the week after.
	tests := []struct {
		name  string
		hours []float64
		want  [][2]int
	}{
		{"single full week", []float64{10}, [][2]int{{1, 1}}},
		{"multi-week exact", []float64{30}, [][2]int{{1, 3}}},
		{"two halves", []float64{5, 5, 10}, [][2]int{{1, 1}, {1, 1}, {2, 2}}},
		{"straddle then fill", []float64{15, 5, 10}, [][2]int{{1, 2}, {2, 2}, {3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := BuildSchedule(topicsWithHours(tt.hours...), 10)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, w := range tt.want {
				got := [2]int{sched.Topics[i].StartWeek, sched.Topics[i].EndWeek}
				if got != w {
					t.Errorf("topic %d weeks = %v, want %v", i+1, got, w)
				}
			}
		})
	}
}

func TestBuildSchedule_ZeroDurationTopic(t *testing.T) {
	sched, err := BuildSchedule(topicsWithHours(0), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.TotalWeeks != 0 {
		t.Errorf("TotalWeeks = %d, want 0", sched.TotalWeeks)
	}
	if len(sched.Entries) != 0 {
		t.Errorf("got %d entries, want 0", len(sched.Entries))
	}
	if sched.Topics[0].StartWeek != 1 || sched.Topics[0].EndWeek != 1 {
		t.Errorf("zero topic weeks = [%d, %d], want [1, 1]",
			sched.Topics[0].StartWeek, sched.Topics[0].EndWeek)
	}
}

func TestBuildSchedule_ZeroDurationBetweenTopics(t *testing.T) {
	sched, err := BuildSchedule(topicsWithHours(10, 0, 3), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	zero := sched.Topics[1]
	if zero.StartWeek != 2 || zero.EndWeek != 2 {
		t.Errorf("zero topic weeks = [%d, %d], want [2, 2]", zero.StartWeek, zero.EndWeek)
	}
	if sched.Topics[2].StartWeek != 2 {
		t.Errorf("topic after zero starts in week %d, want 2", sched.Topics[2].StartWeek)
	}
}

func TestBuildSchedule_Empty(t *testing.T) {
	sched, err := BuildSchedule(nil, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sched.TotalWeeks != 0 || len(sched.Entries) != 0 || len(sched.Topics) != 0 {
		t.Errorf("expected empty schedule, got %+v", sched)
	}
}

func TestBuildSchedule_InvalidWeeklyHours(t *testing.T) {
	for _, h := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := BuildSchedule(topicsWithHours(10), h)
		if !errors.Is(err, ErrInvalidWeeklyHours) {
			t.Errorf("weeklyHours=%v: got %v, want ErrInvalidWeeklyHours", h, err)
		}
	}
}

func TestBuildSchedule_DoesNotMutateInput(t *testing.T) {
	in := topicsWithHours(12, 7)
	if _, err := BuildSchedule(in, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tp := range in {
		if tp.StartWeek != 0 || tp.EndWeek != 0 {
			t.Errorf("input topic %d was mutated: [%d, %d]", i, tp.StartWeek, tp.EndWeek)
		}
	}
}

func TestBuildSchedule_Idempotent(t *testing.T) {
	in := topicsWithHours(30, 26, 24, 20)
	a, err := BuildSchedule(in, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildSchedule(in, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("BuildSchedule returned different results for identical input")
	}
}

func TestBuildSchedule_Properties(t *testing.T) {
	cases := []struct {
		hours  []float64
		weekly float64
	}{
		{[]float64{30, 26, 24, 20}, 10},
		{[]float64{30, 26, 24, 20}, 7},
		{[]float64{8, 34, 12, 10}, 6},
		{[]float64{1, 1, 1, 1, 1}, 2},
		{[]float64{167, 3}, 15},
		{[]float64{9, 0, 9}, 4.5},
		{[]float64{13, 17, 4}, 7.5},
	}
	for _, c := range cases {
		sched, err := BuildSchedule(topicsWithHours(c.hours...), c.weekly)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var total float64
		for _, h := range c.hours {
			total += h
		}
		if want := int(math.Ceil(total / c.weekly)); sched.TotalWeeks != want {
			t.Errorf("%v @ %g: TotalWeeks = %d, want %d", c.hours, c.weekly, sched.TotalWeeks, want)
		}

		byTopic := HoursByTopic(sched.Entries)
		for _, tp := range sched.Topics {
			if math.Abs(byTopic[tp.ID]-tp.DurationHours) > 1e-6 {
				t.Errorf("%v @ %g: topic %s scheduled %g hours, want %g",
					c.hours, c.weekly, tp.ID, byTopic[tp.ID], tp.DurationHours)
			}
			for _, e := range sched.Entries {
				if e.TopicID == tp.ID && (e.Week < tp.StartWeek || e.Week > tp.EndWeek) {
					t.Errorf("%v @ %g: topic %s entry in week %d outside [%d, %d]",
						c.hours, c.weekly, tp.ID, e.Week, tp.StartWeek, tp.EndWeek)
				}
			}
		}

		for week, h := range HoursByWeek(sched.Entries) {
			if h > c.weekly+1e-6 {
				t.Errorf("%v @ %g: week %d holds %g hours", c.hours, c.weekly, week, h)
			}
			if week > sched.TotalWeeks {
				t.Errorf("%v @ %g: entry in week %d beyond TotalWeeks %d", c.hours, c.weekly, week, sched.TotalWeeks)
			}
		}
	}
}

func TestTotalWeeks(t *testing.T) {
	tests := []struct {
		total, weekly float64
		want          int
	}{
		{25, 10, 3},
		{20, 10, 2},
		{0, 10, 0},
		{10, 0, 0},
		{0.3 * 3, 0.9, 1},
	}
	for _, tt := range tests {
		if got := TotalWeeks(tt.total, tt.weekly); got != tt.want {
			t.Errorf("TotalWeeks(%g, %g) = %d, want %d", tt.total, tt.weekly, got, tt.want)
		}
	}
}
