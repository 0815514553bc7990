package studyplan

import "math"

// Entry is one allocation of study hours for a topic in a given week.
type Entry struct {
	Topic   string  `json:"topic"`
	TopicID string  `json:"topicId"`
	Week    int     `json:"week"`
	Hours   float64 `json:"hours"`
}

// Schedule is the week-by-week allocation produced by BuildSchedule.
type Schedule struct {
	Entries    []Entry
	Topics     []Topic // input topics with StartWeek and EndWeek assigned
	TotalWeeks int
}

// BuildSchedule packs topics into consecutive weeks of weeklyHours each,
// greedy first-fit in the order given. A topic may span several weeks and
// a week may hold several topics. The input slice is not modified.
func BuildSchedule(topics []Topic, weeklyHours float64) (Schedule, error) {
	if weeklyHours <= 0 || math.IsNaN(weeklyHours) || math.IsInf(weeklyHours, 0) {
		return Schedule{}, ErrInvalidWeeklyHours
	}

	out := Schedule{Topics: make([]Topic, len(topics))}
	copy(out.Topics, topics)

	currentWeek := 1
	remainingInWeek := weeklyHours
	var totalHours float64

	for i := range out.Topics {
		t := &out.Topics[i]
		totalHours += math.Max(t.DurationHours, 0)

		startWeek := currentWeek
		remainingTopic := t.DurationHours
		if remainingTopic <= hoursEpsilon {
			t.StartWeek = currentWeek
			t.EndWeek = currentWeek
			continue
		}

		for remainingTopic > hoursEpsilon {
			alloc := math.Min(remainingInWeek, remainingTopic)
			out.Entries = append(out.Entries, Entry{
				Topic:   t.Name,
				TopicID: t.ID,
				Week:    currentWeek,
				Hours:   alloc,
			})
			remainingInWeek -= alloc
			remainingTopic -= alloc

			if remainingInWeek <= hoursEpsilon {
				currentWeek++
				remainingInWeek = weeklyHours
			}
		}

		t.StartWeek = startWeek
		// A topic that filled its last week exactly has already advanced
		// currentWeek; its last touched week is the previous one.
		t.EndWeek = currentWeek
		if remainingInWeek == weeklyHours {
			t.EndWeek--
		}
	}

	out.TotalWeeks = TotalWeeks(totalHours, weeklyHours)
	return out, nil
}

// TotalWeeks returns ceil(totalHours / weeklyHours), or 0 when either is
// not positive.
func TotalWeeks(totalHours, weeklyHours float64) int {
	if totalHours <= 0 || weeklyHours <= 0 {
		return 0
	}
	return int(math.Ceil(trimNoise(totalHours / weeklyHours)))
}

// HoursByTopic sums the scheduled hours per topic ID.
func HoursByTopic(entries []Entry) map[string]float64 {
	sums := make(map[string]float64)
	for _, e := range entries {
		sums[e.TopicID] += e.Hours
	}
	return sums
}

// HoursByWeek sums the scheduled hours per week.
func HoursByWeek(entries []Entry) map[int]float64 {
	sums := make(map[int]float64)
	for _, e := range entries {
		sums[e.Week] += e.Hours
	}
	return sums
}
