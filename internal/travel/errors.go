package travel

import "errors"

var (
	// ErrEmptyLandmark is returned when a landmark is blank after trimming.
	ErrEmptyLandmark = errors.New("landmark is empty")
	// ErrLandmarkNotFound is returned when removing a landmark the place does not list.
	ErrLandmarkNotFound = errors.New("landmark not found")
	// ErrRatingOutOfRange indicates a rating outside 0..5.
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	// ErrMissingLocation indicates a place without a location label.
	ErrMissingLocation = errors.New("location is required")
	// ErrMissingID indicates a place or snapshot without an identifier.
	ErrMissingID = errors.New("id is required")
	// ErrInvalidDate indicates a dateVisited value that does not parse.
	ErrInvalidDate = errors.New("invalid visit date")
	// ErrInvalidPlace wraps the reason a place was refused by a Collection.
	ErrInvalidPlace = errors.New("invalid place")
	// ErrDuplicateID is reported by Restore for snapshots sharing an id.
	ErrDuplicateID = errors.New("duplicate id")
)
