package studyplan

// BaseHoursPerTopic is the study time scale for a topic before weighting.
const BaseHoursPerTopic = 10

// BaselineDifficulty is the difficulty rating that leaves estimates unscaled.
const BaselineDifficulty = 3

// hoursScale converts the weighted base into hours.
const hoursScale = 10

// hoursEpsilon absorbs floating point residue when allocating fractional
// weekly budgets.
const hoursEpsilon = 1e-9

// Milestone IDs. Every plan with at least one week carries all four.
const (
	MilestoneStart        = "milestone-start"
	MilestoneMidpoint     = "milestone-midpoint"
	MilestonePracticeExam = "milestone-practice-exam"
	MilestoneFinal        = "milestone-final"
)
