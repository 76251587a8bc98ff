package attendance

import (
	"iter"
	"time"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds a range from two dates, normalized to midnight
// UTC. Returns ErrInvalidDateRange when from is after to.
func NewDateRange(from, to time.Time) (DateRange, error) {
	r := DateRange{From: truncateToDay(from), To: truncateToDay(to)}
	if r.From.After(r.To) {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

// Days returns the days of the range in ascending order, one value per
// calendar day, both endpoints included. The sequence is lazy and can
// be ranged over more than once. An inverted range is rejected here as
// well, even though NewDateRange already checks it.
func (r DateRange) Days() (iter.Seq[time.Time], error) {
	from := truncateToDay(r.From)
	to := truncateToDay(r.To)
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}
	return func(yield func(time.Time) bool) {
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}, nil
}

// Len returns the number of days in the range, endpoints included.
func (r DateRange) Len() int {
	from := truncateToDay(r.From)
	to := truncateToDay(r.To)
	if from.After(to) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
