package assessment

import "errors"

var (
	// ErrInvalidAnswer is returned when a value is not among the current item's options.
	// The session is left unchanged.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrSequenceComplete is returned when reading or answering past the last question.
	ErrSequenceComplete = errors.New("question sequence complete")

	// ErrEmptyResponseSet is returned when aggregating zero responses.
	ErrEmptyResponseSet = errors.New("empty response set")

	// ErrNotComplete is returned when results are requested before the last answer.
	ErrNotComplete = errors.New("assessment not complete")
)
