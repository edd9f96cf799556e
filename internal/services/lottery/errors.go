package lottery

import "errors"

// Error is a custom error type for lottery errors. Callers match kinds with errors.Is.
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Operation errors
const (
	ErrInvalidInput         Error = "invalid input"
	ErrPrizeNotFound        Error = "prize not found"
	ErrRecordNotFound       Error = "winner record not found"
	ErrOutOfStock           Error = "prize out of stock"
	ErrAllOutOfStock        Error = "all prizes out of stock"
	ErrEmptyRoster          Error = "no personnel data"
	ErrNoCandidates         Error = "no one available to draw"
	ErrInsufficientCapacity Error = "not enough candidates or prizes"
	ErrStorageUnavailable   Error = "storage unavailable"
)

// Construction errors
const (
	ErrNilConfig        Error = "config cannot be nil"
	ErrNilRepository    Error = "tenant repository cannot be nil"
	ErrNilRandomizer    Error = "randomizer cannot be nil"
	ErrNilClock         Error = "clock cannot be nil"
	ErrNilUUIDGenerator Error = "UUID generator cannot be nil"
)

var kinds = []struct {
	err   Error
	label string
}{
	{ErrInvalidInput, "invalid_input"},
	{ErrPrizeNotFound, "prize_not_found"},
	{ErrRecordNotFound, "record_not_found"},
	{ErrOutOfStock, "out_of_stock"},
	{ErrAllOutOfStock, "all_out_of_stock"},
	{ErrEmptyRoster, "empty_roster"},
	{ErrNoCandidates, "no_candidates"},
	{ErrInsufficientCapacity, "insufficient_capacity"},
	{ErrStorageUnavailable, "storage_unavailable"},
}

// Kind returns a stable snake_case label for the kind of err, "unknown" if it
// is not a lottery error and "" for nil.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.label
		}
	}
	return "unknown"
}
