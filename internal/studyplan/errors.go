package studyplan

import "errors"

var (
	// ErrInvalidWeeklyHours is a configuration error: the weekly study budget
	// must be positive. It is never retried.
	ErrInvalidWeeklyHours = errors.New("weekly hours must be greater than zero")

	// ErrCertificationNotFound means a requested certification is not in the
	// catalog.
	ErrCertificationNotFound = errors.New("certification not found")

	// ErrNoCertifications means a plan was requested without certifications.
	ErrNoCertifications = errors.New("at least one certification is required")

	ErrTopicNotFound     = errors.New("topic not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
	ErrInvalidStatus     = errors.New("invalid topic status")
)
